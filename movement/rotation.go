package movement

import "github.com/oomph-ac/museum/game"

// rotate applies the pointer delta of the frame to the yaw and pitch. Moving the pointer right
// turns right, moving it down looks down.
func (ctx *frameContext) rotate() {
	c := ctx.core
	dx, dy := ctx.state.DX, ctx.state.DY
	if (dx == 0 && dy == 0) || !game.IsFinite32(dx) || !game.IsFinite32(dy) {
		return
	}
	c.pose.Yaw -= dx * c.cfg.RotationSpeed
	c.pose.Pitch = clampPitch(c.pose.Pitch - dy*c.cfg.RotationSpeed)
	c.debugf(true, "rotate: delta=(%v, %v) yaw=%v pitch=%v", dx, dy, c.pose.Yaw, c.pose.Pitch)
}

func clampPitch(pitch float32) float32 {
	if !game.IsFinite32(pitch) {
		return 0
	}
	return game.ClampPitch(pitch)
}
