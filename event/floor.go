package event

import "github.com/elliotchance/orderedmap/v2"

// FloorChange is published when the viewer's position moves into a different floor band.
type FloorChange struct {
	Frame    uint64 `json:"frame"`
	Previous int    `json:"previous"`
	Index    int    `json:"index"`
	Label    string `json:"label"`
}

func (e *FloorChange) ID() string {
	return EventIDFloorChange
}

func (e *FloorChange) Extra() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("frame", e.Frame)
	m.Set("previous", e.Previous)
	m.Set("index", e.Index)
	m.Set("label", e.Label)
	return m
}

func NewFloorChange(frame uint64, previous, index int, label string) *FloorChange {
	return &FloorChange{
		Frame:    frame,
		Previous: previous,
		Index:    index,
		Label:    label,
	}
}
