package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
)

// moveHorizontal computes the horizontal displacement requested by the input from the yaw at the
// start of the frame and applies whatever part of it survives collision.
func (ctx *frameContext) moveHorizontal() {
	if !ctx.state.Moving() {
		return
	}
	c := ctx.core
	var (
		forward = game.ForwardVector(c.pose.Yaw)
		right   = game.RightVector(c.pose.Yaw)
		speed   = c.cfg.MoveSpeed
		d       mgl32.Vec3
	)
	if ctx.state.Forward {
		d = d.Add(forward.Mul(speed))
	}
	if ctx.state.Backward {
		d = d.Sub(forward.Mul(speed))
	}
	if ctx.state.Right {
		d = d.Add(right.Mul(speed))
	}
	if ctx.state.Left {
		d = d.Sub(right.Mul(speed))
	}

	if c.cfg.NormalizeDiagonal {
		if l := math32.Sqrt(game.Vec3HzDistSqr(d)); l > speed {
			d = d.Mul(speed / l)
		}
	}
	ctx.displacement = d
	if game.Vec3HzDistSqr(d) == 0 {
		return
	}

	c.debugf(true, "moveHorizontal: requested displacement=%v", d)
	switch c.cfg.Response {
	case ResponseSlide:
		ctx.slide()
	default:
		ctx.discard()
	}
}

// travelVertical moves the eye up or down and clamps it between the ground and the ceiling of the
// building. Vertical travel does not collide with obstacles.
func (ctx *frameContext) travelVertical() {
	if !ctx.state.Vertical() {
		return
	}
	c := ctx.core
	dir := float32(0)
	if ctx.state.Ascend {
		dir++
	}
	if ctx.state.Descend {
		dir--
	}
	if dir == 0 {
		return
	}
	if c.cfg.StairsOnly && !c.registry.InStairZone(c.pose.Position) {
		c.debugf(true, "travelVertical: not in a stair zone, vertical input ignored")
		return
	}

	y := c.clampVertical(c.pose.Position.Y() + dir*c.cfg.verticalSpeed())
	c.debugf(true, "travelVertical: y %v -> %v", c.pose.Position.Y(), y)
	c.pose.Position[1] = y
}

// clampVertical clamps an eye height between the lowest eye height possible on the ground floor
// and the highest one below the ceiling of the top floor.
func (c *Core) clampVertical(y float32) float32 {
	lo := c.registry.Ground() + c.cfg.EyeHeight
	hi := c.registry.Top() - c.cfg.CeilingClearance
	if hi < lo {
		hi = lo
	}
	if !game.IsFinite32(y) {
		return lo
	}
	return mgl32.Clamp(y, lo, hi)
}
