package movement

import "github.com/go-gl/mathgl/mgl32"

// collides returns true if the viewer's body would intersect an obstacle at pos.
func (c *Core) collides(pos mgl32.Vec3) bool {
	feetY, headY := c.body(pos.Y())
	return c.registry.Collides(pos, c.cfg.CollisionRadius, feetY, headY)
}

// discard applies the displacement if the candidate position is clear, and otherwise drops all of it.
func (ctx *frameContext) discard() {
	c := ctx.core
	candidate := c.pose.Position.Add(ctx.displacement)
	if c.collides(candidate) {
		ctx.blocked = true
		c.debugf(true, "discard: candidate %v collides, displacement discarded", candidate)
		return
	}
	c.pose.Position = candidate
	ctx.applied = ctx.displacement
}

// slide tries the full displacement first. If it collides, the X and Z components are resolved one
// after the other, so movement parallel to a wall survives.
func (ctx *frameContext) slide() {
	c := ctx.core
	pos := c.pose.Position
	if candidate := pos.Add(ctx.displacement); !c.collides(candidate) {
		c.pose.Position = candidate
		ctx.applied = ctx.displacement
		return
	}
	ctx.blocked = true

	xVel := mgl32.Vec3{ctx.displacement.X()}
	if xVel.X() != 0 {
		if candidate := pos.Add(xVel); !c.collides(candidate) {
			pos = candidate
			ctx.applied[0] = xVel.X()
		}
	}
	zVel := mgl32.Vec3{0, 0, ctx.displacement.Z()}
	if zVel.Z() != 0 {
		if candidate := pos.Add(zVel); !c.collides(candidate) {
			pos = candidate
			ctx.applied[2] = zVel.Z()
		}
	}
	c.pose.Position = pos
	c.debugf(true, "slide: requested=%v applied=%v", ctx.displacement, ctx.applied)
}
