package event

import "testing"

func TestEventExtraKeepsOrder(t *testing.T) {
	var ev Event = NewFloorChange(12, 0, 1, "Upper Gallery")
	if ev.ID() != EventIDFloorChange {
		t.Fatalf("unexpected id %q", ev.ID())
	}
	keys := []string{}
	for el := ev.Extra().Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	want := []string{"frame", "previous", "index", "label"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("unexpected keys %v", keys)
		}
	}

	door := NewDoorToggle(3, "entrance", true, 1.5)
	if v, ok := door.Extra().Get("open"); !ok || v != true {
		t.Fatalf("expected open=true, got %v", v)
	}
}
