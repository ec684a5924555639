package movement

import "github.com/oomph-ac/museum/event"

// Handler receives the notifications of the locomotion core. Handlers are called synchronously from
// Update and should not block.
type Handler interface {
	// HandleFloorChange is called when the viewer moves into a different floor band.
	HandleFloorChange(ev *event.FloorChange)
	// HandleDoorToggle is called when the viewer opens or closes a door.
	HandleDoorToggle(ev *event.DoorToggle)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleFloorChange(*event.FloorChange) {}
func (NopHandler) HandleDoorToggle(*event.DoorToggle)   {}
