package obstacle

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
)

// Obstacle is a static shape that blocks locomotion. Obstacles are tested against the viewer's
// horizontal position expanded by the viewer's collision radius.
type Obstacle interface {
	// Name returns the identifier of the obstacle. It may be empty for anonymous geometry.
	Name() string
	// Collides returns true if a viewer of the given radius standing at point overlaps the
	// obstacle's footprint. Only the X and Z components of point are used.
	Collides(point mgl32.Vec3, radius float32) bool
	// Bounds returns the axis-aligned box enclosing the obstacle.
	Bounds() cube.BBox
	// Extent returns the vertical range the obstacle occupies.
	Extent() Extent
	// Active returns false if the obstacle currently does not block movement, such as an open door.
	Active() bool
	// Valid returns false for malformed obstacles, which are never collided with.
	Valid() bool
}

// Extent is the vertical range of an obstacle. The zero Extent is floor-to-ceiling.
type Extent struct {
	MinY, MaxY float32
}

// Full returns true if the extent spans all heights.
func (e Extent) Full() bool {
	return e.MinY == 0 && e.MaxY == 0
}

// Overlaps returns true if the vertical span [minY, maxY] of a body intersects the extent. A full
// extent overlaps every span.
func (e Extent) Overlaps(minY, maxY float32) bool {
	if e.Full() {
		return true
	}
	return maxY > e.MinY && minY < e.MaxY
}

// Bounds returns the vertical bounds used for the obstacle's bounding box.
func (e Extent) Bounds() (float32, float32) {
	if e.Full() {
		return -game.Unbounded, game.Unbounded
	}
	return e.MinY, e.MaxY
}

func (e Extent) valid() bool {
	return game.IsFinite32(e.MinY) && game.IsFinite32(e.MaxY) && (e.Full() || e.MaxY > e.MinY)
}
