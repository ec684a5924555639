package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ForwardVector returns the horizontal unit vector the viewer faces at the given yaw (radians). A yaw
// of zero faces -Z.
func ForwardVector(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(yaw), 0, -math32.Cos(yaw)}
}

// RightVector returns the horizontal unit vector to the viewer's right at the given yaw (radians).
func RightVector(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(yaw), 0, -math32.Sin(yaw)}
}

// DirectionVector returns the look direction for the given yaw and pitch in radians. Positive pitch
// looks up.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	m := math32.Cos(pitch)
	return mgl32.Vec3{
		-m * math32.Sin(yaw),
		math32.Sin(pitch),
		-m * math32.Cos(yaw),
	}
}

// ClampPitch clamps the pitch to [-MaxPitch, MaxPitch].
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq is Float32ApproxEq applied to every component of the vectors.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a[0], b[0]) && Float32ApproxEq(a[1], b[1]) && Float32ApproxEq(a[2], b[2])
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HzDist returns the distance between two points ignoring the Y axis.
func HzDist(a, b mgl32.Vec3) float32 {
	return math32.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// IsFinite32 returns true if v is neither NaN nor infinite.
func IsFinite32(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
