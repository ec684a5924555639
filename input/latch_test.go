package input

import (
	"sync"
	"testing"
)

func TestOnKeyChangeMatchesPressAndRelease(t *testing.T) {
	l := NewLatch(nil)
	l.OnKeyChange("W", true)
	l.OnKeyChange("w", true) // key repeat
	if !l.Snapshot().Forward {
		t.Fatalf("forward should be held")
	}
	l.OnKeyChange("w", false)
	if l.Snapshot().Forward {
		t.Fatalf("a single release should clear a repeated press")
	}
	l.OnKeyChange("w", false)
	if l.Held(ActionForward) {
		t.Fatalf("releasing a key that is not held should be ignored")
	}
}

func TestMultipleKeysForOneAction(t *testing.T) {
	l := NewLatch(nil)
	l.OnKeyChange("w", true)
	l.OnKeyChange("ArrowUp", true)
	l.OnKeyChange("w", false)
	if !l.Snapshot().Forward {
		t.Fatalf("forward is still held through the arrow key")
	}
	l.OnKeyChange("arrowup", false)
	if l.Snapshot().Forward {
		t.Fatalf("forward should be released")
	}
}

func TestUnmappedKeysIgnored(t *testing.T) {
	l := NewLatch(nil)
	l.OnKeyChange("q", true)
	l.OnKeyChange("F12", true)
	if s := l.Snapshot(); s != (State{}) {
		t.Fatalf("expected empty state, got %+v", s)
	}
}

func TestPointerDeltaRequiresCapture(t *testing.T) {
	l := NewLatch(nil)
	l.OnPointerDelta(10, 5)
	if s := l.Snapshot(); s.DX != 0 || s.DY != 0 {
		t.Fatalf("pointer movement without capture should be ignored, got %+v", s)
	}

	l.SetCaptured(true)
	l.OnPointerDelta(10, 5)
	l.OnPointerDelta(-3, 1)
	s := l.Snapshot()
	if s.DX != 7 || s.DY != 6 {
		t.Fatalf("expected accumulated delta (7, 6), got (%v, %v)", s.DX, s.DY)
	}
	if s = l.Snapshot(); s.DX != 0 || s.DY != 0 {
		t.Fatalf("delta should reset after being consumed, got %+v", s)
	}

	l.OnPointerDelta(4, 4)
	l.SetCaptured(false)
	l.SetCaptured(true)
	if s = l.Snapshot(); s.DX != 0 || s.DY != 0 {
		t.Fatalf("leaving capture should drop pending delta, got %+v", s)
	}
}

func TestInteractIsEdgeTriggered(t *testing.T) {
	l := NewLatch(nil)
	l.OnKeyChange("e", true)
	if !l.Snapshot().Interact {
		t.Fatalf("expected interact on the frame after the press")
	}
	if l.Snapshot().Interact {
		t.Fatalf("holding interact should not repeat")
	}
	l.OnKeyChange("e", false)
	l.OnKeyChange("e", true)
	if !l.Snapshot().Interact {
		t.Fatalf("expected interact after pressing again")
	}
}

func TestReleaseAll(t *testing.T) {
	l := NewLatch(nil)
	for _, k := range []string{"w", "a", "space", "shift"} {
		l.OnKeyChange(k, true)
	}
	l.ReleaseAll()
	if s := l.Snapshot(); s.Moving() || s.Vertical() {
		t.Fatalf("expected all flags released, got %+v", s)
	}
	l.OnKeyChange("w", false)
	if l.Held(ActionForward) {
		t.Fatalf("release after ReleaseAll should be a no-op")
	}
}

func TestConcurrentEvents(t *testing.T) {
	l := NewLatch(nil)
	l.SetCaptured(true)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				l.OnPointerDelta(1, 0)
			}
		}()
	}
	wg.Wait()
	if s := l.Snapshot(); s.DX != 800 {
		t.Fatalf("expected 800, got %v", s.DX)
	}
}

func TestParseKeymap(t *testing.T) {
	km, err := ParseKeymap(map[string]string{"Z": "Forward", "x": "descend"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km["z"] != ActionForward || km["x"] != ActionDescend {
		t.Fatalf("unexpected keymap %v", km)
	}
	if _, err := ParseKeymap(map[string]string{"z": "fly"}); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if got := DefaultKeymap().Strings()["e"]; got != "interact" {
		t.Fatalf("unexpected binding for e: %q", got)
	}
	l := NewLatch(km)
	l.OnKeyChange("Z", true)
	if !l.Snapshot().Forward {
		t.Fatalf("custom binding should drive forward")
	}
}
