package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/obstacle"
)

// StairZone is a footprint in which the viewer may travel vertically between floors, such as a
// staircase or an elevator shaft.
type StairZone struct {
	Name      string
	Footprint obstacle.RotatedRect
}

// Contains returns true if the horizontal position of point lies inside the zone.
func (z StairZone) Contains(point mgl32.Vec3) bool {
	return z.Footprint.Collides(point, 0)
}
