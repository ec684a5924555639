package movement

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
)

// Pose is the placement of the viewer: the eye position and the look direction.
type Pose struct {
	Position mgl32.Vec3
	// Yaw is the rotation about the vertical axis in radians. A yaw of zero faces -Z.
	Yaw float32
	// Pitch is the rotation about the horizontal axis in radians, within [-pi/2, pi/2].
	Pitch float32
}

// Forward returns the horizontal direction the pose faces.
func (p Pose) Forward() mgl32.Vec3 {
	return game.ForwardVector(p.Yaw)
}

// Right returns the horizontal direction to the right of the pose.
func (p Pose) Right() mgl32.Vec3 {
	return game.RightVector(p.Yaw)
}

// Direction returns the look direction of the pose, including pitch.
func (p Pose) Direction() mgl32.Vec3 {
	return game.DirectionVector(p.Yaw, p.Pitch)
}

// String ...
func (p Pose) String() string {
	return fmt.Sprintf("pos=(%.3f, %.3f, %.3f) yaw=%.4f pitch=%.4f", p.Position.X(), p.Position.Y(), p.Position.Z(), p.Yaw, p.Pitch)
}
