package movement

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
)

// CollisionResponse decides what happens to a frame's horizontal displacement when the candidate
// position collides with an obstacle.
type CollisionResponse uint8

const (
	// ResponseDiscard rejects the whole displacement of the frame. This is the default.
	ResponseDiscard CollisionResponse = iota
	// ResponseSlide resolves the X and then the Z component of the displacement separately, so
	// the viewer slides along walls. This changes the default behavior and must be opted into.
	ResponseSlide
)

// String ...
func (r CollisionResponse) String() string {
	switch r {
	case ResponseDiscard:
		return "discard"
	case ResponseSlide:
		return "slide"
	}
	return fmt.Sprintf("CollisionResponse(%d)", uint8(r))
}

// ParseCollisionResponse parses "discard" or "slide". An empty string is "discard".
func ParseCollisionResponse(s string) (CollisionResponse, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "discard":
		return ResponseDiscard, nil
	case "slide":
		return ResponseSlide, nil
	}
	return 0, fmt.Errorf(game.ErrorUnknownResponse, s)
}

// Config holds the constants of the locomotion core.
type Config struct {
	// MoveSpeed is the horizontal distance moved per frame for every held direction.
	MoveSpeed float32
	// VerticalSpeed is the distance moved per frame while ascending or descending. Zero means
	// MoveSpeed.
	VerticalSpeed float32
	// RotationSpeed converts pointer movement to radians.
	RotationSpeed float32

	// EyeHeight is the height of the viewer's eyes above their feet. The pose's Y is the eye height.
	EyeHeight float32
	// BodyHeight and CollisionRadius describe the cylinder the viewer collides with.
	BodyHeight      float32
	CollisionRadius float32
	// CeilingClearance keeps the eyes this far below the top of the building.
	CeilingClearance float32

	// InteractDistance is the range at which doors can be toggled.
	InteractDistance float32
	// LookDistance is the range of LookTarget.
	LookDistance float32

	// Spawn is the initial eye position and SpawnYaw the initial yaw.
	Spawn    mgl32.Vec3
	SpawnYaw float32

	// NormalizeDiagonal caps combined forward and strafe movement to MoveSpeed. When false, diagonal
	// movement is faster than straight movement.
	NormalizeDiagonal bool
	// Response is the collision response policy.
	Response CollisionResponse
	// StairsOnly only allows vertical travel inside stair zones. When false, vertical travel is
	// allowed anywhere.
	StairsOnly bool

	// Debug enables per-frame trace logging.
	Debug bool
}

// DefaultConfig returns the configuration used by the museum walkthrough.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:        game.DefaultMoveSpeed,
		RotationSpeed:    game.DefaultRotationSpeed,
		EyeHeight:        game.DefaultEyeHeight,
		BodyHeight:       game.DefaultBodyHeight,
		CollisionRadius:  game.DefaultCollisionRadius,
		CeilingClearance: game.DefaultCeilingClearance,
		InteractDistance: game.DefaultInteractDistance,
		LookDistance:     10,
		Spawn:            mgl32.Vec3{0, game.DefaultEyeHeight, 0},
	}
}

// Validate returns an error if the configuration cannot drive a core.
func (c Config) Validate() error {
	if !(c.MoveSpeed > 0) || !game.IsFinite32(c.MoveSpeed) {
		return fmt.Errorf(game.ErrorInvalidMoveSpeed, c.MoveSpeed)
	}
	if c.VerticalSpeed < 0 || c.RotationSpeed < 0 {
		return fmt.Errorf("speeds must not be negative (vertical=%v rotation=%v)", c.VerticalSpeed, c.RotationSpeed)
	}
	if c.EyeHeight < 0 || c.BodyHeight <= 0 || c.CollisionRadius < 0 {
		return fmt.Errorf("invalid body (eye=%v height=%v radius=%v)", c.EyeHeight, c.BodyHeight, c.CollisionRadius)
	}
	if c.Response > ResponseSlide {
		return fmt.Errorf(game.ErrorUnknownResponse, c.Response.String())
	}
	return nil
}

func (c Config) verticalSpeed() float32 {
	if c.VerticalSpeed == 0 {
		return c.MoveSpeed
	}
	return c.VerticalSpeed
}
