package event

import "github.com/elliotchance/orderedmap/v2"

const (
	EventIDFloorChange = "museum:floor_change"
	EventIDDoorToggle  = "museum:door_toggle"
)

// Event is a notification published by the locomotion core for the HUD.
type Event interface {
	// ID returns a string that identifies the kind of event.
	ID() string
	// Extra returns the event's data as ordered key/value pairs, for logging.
	Extra() *orderedmap.OrderedMap[string, any]
}
