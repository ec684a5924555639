package movement

// updateFloor looks up the floor band of the eye height and reports a change of band. While the
// eye is outside every band the stored index is kept and nothing is reported.
func (ctx *frameContext) updateFloor() {
	ctx.floorChanged = ctx.core.syncFloor()
	if _, ok := ctx.core.registry.FloorAt(ctx.core.pose.Position.Y()); !ok {
		ctx.inTransit = true
	}
}

// syncFloor updates the stored floor index and returns true if it changed. The height is clamped
// into the new band on a change.
func (c *Core) syncFloor() bool {
	y := c.pose.Position.Y()
	band, ok := c.registry.FloorAt(y)
	if !ok {
		c.debugf(true, "syncFloor: y=%v is outside every floor band", y)
		return false
	}
	if band.Index == c.floor {
		return false
	}

	previous := c.floor
	c.floor = band.Index
	c.pose.Position[1] = band.Clamp(y)
	c.notifyFloorChange(previous, band)
	return true
}
