package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/input"
)

// frameContext holds the intermediate state of a single Update call.
type frameContext struct {
	core  *Core
	state input.State

	// displacement is the horizontal movement requested by the input, applied the movement that
	// survived collision.
	displacement mgl32.Vec3
	applied      mgl32.Vec3

	blocked      bool
	inTransit    bool
	floorChanged bool
	door         string
}

func (ctx *frameContext) result() Result {
	c := ctx.core
	res := Result{
		Frame:        c.frame,
		Pose:         c.pose,
		Displacement: ctx.applied,
		Blocked:      ctx.blocked,
		Floor:        c.floor,
		FloorChanged: ctx.floorChanged,
		Door:         ctx.door,
		Outcome:      OutcomeNormal,
	}
	switch {
	case ctx.inTransit:
		res.Outcome = OutcomeInTransit
	case ctx.blocked:
		res.Outcome = OutcomeBlocked
	}
	return res
}
