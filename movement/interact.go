package movement

import (
	"github.com/oomph-ac/museum/event"
	"github.com/oomph-ac/museum/obstacle"
)

// interact toggles a door when the interact action was pressed this frame. The door under the look
// ray is preferred, otherwise the nearest door within reach is used.
func (ctx *frameContext) interact() {
	if !ctx.state.Interact {
		return
	}
	c := ctx.core
	door, dist, ok := c.targetDoor()
	if !ok {
		c.debugf(true, "interact: no door within %v", c.cfg.InteractDistance)
		return
	}
	open, ok := c.registry.ToggleDoor(door.Name())
	if !ok {
		return
	}
	ctx.door = door.Name()
	c.notifyDoorToggle(event.NewDoorToggle(c.frame, door.Name(), open, dist))
}

// targetDoor only considers doors that overlap the viewer's body, so doors on other floors are
// never toggled.
func (c *Core) targetDoor() (*obstacle.Door, float32, bool) {
	reach := c.cfg.InteractDistance
	feetY, headY := c.body(c.pose.Position.Y())
	if o, dist, ok := c.registry.Pick(c.pose.Position, c.pose.Direction(), reach); ok {
		if d, isDoor := o.(*obstacle.Door); isDoor && d.Name() != "" && d.Extent().Overlaps(feetY, headY) {
			return d, dist, true
		}
	}
	d, dist, ok := c.registry.NearestDoor(c.pose.Position, reach, feetY, headY)
	if !ok || d.Name() == "" {
		return nil, 0, false
	}
	return d, dist, true
}
