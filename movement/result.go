package movement

import "github.com/go-gl/mathgl/mgl32"

// Outcome describes how a frame's update ended.
type Outcome uint8

const (
	OutcomeNormal Outcome = iota
	// OutcomeBlocked means that at least part of the horizontal displacement collided.
	OutcomeBlocked
	// OutcomeInTransit means the position is outside every floor band.
	OutcomeInTransit
)

// String ...
func (o Outcome) String() string {
	switch o {
	case OutcomeNormal:
		return "normal"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeInTransit:
		return "in_transit"
	}
	return "unknown"
}

// Result is the output of a single Update call, handed to the renderer.
type Result struct {
	Frame uint64
	Pose  Pose

	// Displacement is the horizontal movement that was applied this frame.
	Displacement mgl32.Vec3
	Blocked      bool

	// Floor is the index of the current floor band. It keeps its previous value while in transit,
	// and is -1 if the viewer has never been inside a band.
	Floor        int
	FloorChanged bool

	// Door is set to the name of the door toggled this frame, if any.
	Door string

	Outcome Outcome
}
