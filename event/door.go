package event

import "github.com/elliotchance/orderedmap/v2"

// DoorToggle is published when the viewer opens or closes a door.
type DoorToggle struct {
	Frame    uint64  `json:"frame"`
	Door     string  `json:"door"`
	Open     bool    `json:"open"`
	Distance float32 `json:"distance"`
}

func (e *DoorToggle) ID() string {
	return EventIDDoorToggle
}

func (e *DoorToggle) Extra() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("frame", e.Frame)
	m.Set("door", e.Door)
	m.Set("open", e.Open)
	m.Set("distance", e.Distance)
	return m
}

func NewDoorToggle(frame uint64, door string, open bool, distance float32) *DoorToggle {
	return &DoorToggle{
		Frame:    frame,
		Door:     door,
		Open:     open,
		Distance: distance,
	}
}
