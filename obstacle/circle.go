package obstacle

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
)

// Circle is a round footprint, used for pillars and columns.
type Circle struct {
	ID       string
	Center   mgl32.Vec2
	Radius   float32
	Vertical Extent
}

// Name ...
func (c Circle) Name() string {
	return c.ID
}

// Collides returns true if the planar distance between the point and the center is less than the
// sum of both radii.
func (c Circle) Collides(point mgl32.Vec3, radius float32) bool {
	return math32.Hypot(point.X()-c.Center.X(), point.Z()-c.Center.Y()) < c.Radius+radius
}

// Bounds ...
func (c Circle) Bounds() cube.BBox {
	minY, maxY := c.Vertical.Bounds()
	return cube.Box(
		c.Center.X()-c.Radius, minY, c.Center.Y()-c.Radius,
		c.Center.X()+c.Radius, maxY, c.Center.Y()+c.Radius,
	)
}

// Extent ...
func (c Circle) Extent() Extent {
	return c.Vertical
}

// Active always returns true for a circle.
func (c Circle) Active() bool {
	return true
}

// Valid ...
func (c Circle) Valid() bool {
	return game.IsFinite32(c.Center.X()) && game.IsFinite32(c.Center.Y()) &&
		game.IsFinite32(c.Radius) && c.Radius > 0 && c.Vertical.valid()
}
