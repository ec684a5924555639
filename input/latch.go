package input

import (
	"github.com/sasha-s/go-deadlock"
)

// Latch translates key and pointer events into the State read by the locomotion core. Events may
// arrive from any goroutine; the core reads the latch once per frame through Snapshot.
type Latch struct {
	keymap Keymap

	held   map[string]Action
	counts [actionCount]int

	interact bool
	captured bool
	dx, dy   float32

	deadlock.Mutex
}

// NewLatch returns a latch using the keymap passed. If keymap is nil, DefaultKeymap is used.
func NewLatch(keymap Keymap) *Latch {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Latch{
		keymap: keymap,
		held:   make(map[string]Action),
	}
}

// OnKeyChange records a key being pressed or released. Unmapped keys are ignored. Presses of a key
// that is already held and releases of a key that is not held are ignored, so each flag is set
// exactly while at least one of its keys is physically held.
func (l *Latch) OnKeyChange(key string, isDown bool) {
	key = normalizeKey(key)
	a, ok := l.keymap[key]
	if !ok {
		return
	}

	l.Lock()
	defer l.Unlock()

	_, held := l.held[key]
	switch {
	case isDown && !held:
		l.held[key] = a
		l.counts[a]++
		if a == ActionInteract {
			l.interact = true
		}
	case !isDown && held:
		delete(l.held, key)
		l.counts[a]--
	}
}

// OnPointerDelta accumulates pointer movement for the current frame. Movement is ignored while
// pointer capture is inactive.
func (l *Latch) OnPointerDelta(dx, dy float32) {
	l.Lock()
	defer l.Unlock()
	if !l.captured {
		return
	}
	l.dx += dx
	l.dy += dy
}

// SetCaptured enters or leaves pointer capture. Leaving capture drops pointer movement that was not
// consumed yet.
func (l *Latch) SetCaptured(captured bool) {
	l.Lock()
	defer l.Unlock()
	l.captured = captured
	if !captured {
		l.dx, l.dy = 0, 0
	}
}

// Captured returns true if pointer capture is active.
func (l *Latch) Captured() bool {
	l.Lock()
	defer l.Unlock()
	return l.captured
}

// ReleaseAll releases every held key, for example when the window loses focus and release events
// will never be delivered.
func (l *Latch) ReleaseAll() {
	l.Lock()
	defer l.Unlock()
	clear(l.held)
	l.counts = [actionCount]int{}
}

// Held returns true if at least one key bound to the action is held.
func (l *Latch) Held(a Action) bool {
	l.Lock()
	defer l.Unlock()
	return a < actionCount && l.counts[a] > 0
}

// Snapshot returns the input for the current frame and resets the per-frame pointer movement and
// interaction.
func (l *Latch) Snapshot() State {
	l.Lock()
	defer l.Unlock()

	s := State{
		Forward:  l.counts[ActionForward] > 0,
		Backward: l.counts[ActionBackward] > 0,
		Left:     l.counts[ActionLeft] > 0,
		Right:    l.counts[ActionRight] > 0,
		Ascend:   l.counts[ActionAscend] > 0,
		Descend:  l.counts[ActionDescend] > 0,
		Interact: l.interact,
		DX:       l.dx,
		DY:       l.dy,
	}
	l.interact = false
	l.dx, l.dy = 0, 0
	return s
}
