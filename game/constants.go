package game

const (
	// DefaultMoveSpeed is the horizontal distance covered per frame for each held direction.
	DefaultMoveSpeed = float32(0.2)
	// DefaultRotationSpeed converts pointer delta units to radians.
	DefaultRotationSpeed = float32(0.002)
	// DefaultEyeHeight is the distance from the floor to the viewer's eyes.
	DefaultEyeHeight = float32(1.6)
	// DefaultBodyHeight is the height of the collision cylinder of the viewer.
	DefaultBodyHeight = float32(1.7)
	// DefaultCollisionRadius is the radius of the collision cylinder of the viewer.
	DefaultCollisionRadius = float32(0.5)
	// DefaultCeilingClearance keeps the eyes this far below the topmost ceiling.
	DefaultCeilingClearance = float32(0.2)
	// DefaultInteractDistance is the maximum distance at which a door can be toggled.
	DefaultInteractDistance = float32(3)

	// MaxPitch is the largest absolute pitch; looking further would invert the view. It is the
	// largest float32 below pi/2, as float32(pi/2) rounds up past it.
	MaxPitch = float32(1.5707962)

	// Unbounded is used as the vertical extent of floor-to-ceiling obstacles.
	Unbounded = float32(1e6)
	// BroadphaseMargin is added to query boxes so the broadphase never rejects a precise hit.
	BroadphaseMargin = float32(0.01)
	// Epsilon is the tolerance used to keep positions strictly inside half-open ranges.
	Epsilon = float32(1e-4)
)
