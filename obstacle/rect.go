package obstacle

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
)

// RotatedRect is a rectangular footprint rotated about the vertical axis, such as a wall or the
// bounding box of a piece of furniture.
type RotatedRect struct {
	// ID is the name of the rectangle.
	ID string
	// Center is the X and Z position of the middle of the rectangle.
	Center mgl32.Vec2
	// HalfWidth is half the size along the rectangle's local X axis, HalfDepth along its local Z axis.
	HalfWidth, HalfDepth float32
	// Rotation is the rotation about the vertical axis in radians.
	Rotation float32
	// Vertical is the vertical range of the rectangle.
	Vertical Extent
}

// Name ...
func (r RotatedRect) Name() string {
	return r.ID
}

// Local transforms the point into the rectangle's local frame: it is translated by the negated
// center and then rotated by the negated rotation.
func (r RotatedRect) Local(point mgl32.Vec3) mgl32.Vec2 {
	dx, dz := point.X()-r.Center.X(), point.Z()-r.Center.Y()
	sin, cos := math32.Sincos(r.Rotation)
	return mgl32.Vec2{
		dx*cos + dz*sin,
		-dx*sin + dz*cos,
	}
}

// Collides tests the point against the rectangle expanded by radius on every side. The corners of
// the expanded rectangle are square, not rounded. A point exactly on the expanded boundary does not
// collide.
func (r RotatedRect) Collides(point mgl32.Vec3, radius float32) bool {
	local := r.Local(point)
	return math32.Abs(local.X()) < r.HalfWidth+radius && math32.Abs(local.Y()) < r.HalfDepth+radius
}

// Bounds ...
func (r RotatedRect) Bounds() cube.BBox {
	sin, cos := math32.Sincos(r.Rotation)
	sin, cos = math32.Abs(sin), math32.Abs(cos)
	ex := r.HalfWidth*cos + r.HalfDepth*sin
	ez := r.HalfWidth*sin + r.HalfDepth*cos
	minY, maxY := r.Vertical.Bounds()
	return cube.Box(
		r.Center.X()-ex, minY, r.Center.Y()-ez,
		r.Center.X()+ex, maxY, r.Center.Y()+ez,
	)
}

// Extent ...
func (r RotatedRect) Extent() Extent {
	return r.Vertical
}

// Active always returns true for a rectangle.
func (r RotatedRect) Active() bool {
	return true
}

// Valid ...
func (r RotatedRect) Valid() bool {
	return game.IsFinite32(r.Center.X()) && game.IsFinite32(r.Center.Y()) &&
		game.IsFinite32(r.Rotation) &&
		game.IsFinite32(r.HalfWidth) && game.IsFinite32(r.HalfDepth) &&
		r.HalfWidth > 0 && r.HalfDepth > 0 &&
		r.Vertical.valid()
}
