package obstacle

import "github.com/go-gl/mathgl/mgl32"

// Door is a rectangle that only blocks movement while it is closed. Doors start closed.
type Door struct {
	RotatedRect
	open bool
}

// NewDoor returns a closed door occupying the rectangle passed.
func NewDoor(rect RotatedRect) *Door {
	return &Door{RotatedRect: rect}
}

// Open returns true if the door is open.
func (d *Door) Open() bool {
	return d.open
}

// SetOpen opens or closes the door.
func (d *Door) SetOpen(open bool) {
	d.open = open
}

// Toggle flips the state of the door and returns the new state.
func (d *Door) Toggle() bool {
	d.open = !d.open
	return d.open
}

// Active returns true while the door is closed.
func (d *Door) Active() bool {
	return !d.open
}

// Position returns the center of the door at the given height.
func (d *Door) Position(y float32) mgl32.Vec3 {
	return mgl32.Vec3{d.Center.X(), y, d.Center.Y()}
}
