package input

import (
	"fmt"
	"strings"

	"github.com/oomph-ac/museum/game"
)

// Action is a locomotion intent a key can be bound to.
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionAscend
	ActionDescend
	ActionInteract

	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:  "forward",
	ActionBackward: "backward",
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionAscend:   "ascend",
	ActionDescend:  "descend",
	ActionInteract: "interact",
}

// String ...
func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction returns the action with the name passed. Names are case-insensitive.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf(game.ErrorUnknownAction, name)
}

// Keymap binds key names to actions. Key names are lower case, such as "w", "arrowup" or "shift".
type Keymap map[string]Action

// DefaultKeymap returns the default bindings: WASD and the arrow keys for walking, space and shift
// for vertical travel and E for doors.
func DefaultKeymap() Keymap {
	return Keymap{
		"w":          ActionForward,
		"arrowup":    ActionForward,
		"s":          ActionBackward,
		"arrowdown":  ActionBackward,
		"a":          ActionLeft,
		"arrowleft":  ActionLeft,
		"d":          ActionRight,
		"arrowright": ActionRight,
		" ":          ActionAscend,
		"space":      ActionAscend,
		"shift":      ActionDescend,
		"e":          ActionInteract,
	}
}

// ParseKeymap builds a keymap from key name to action name bindings.
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for key, name := range bindings {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		km[normalizeKey(key)] = a
	}
	return km, nil
}

// Lookup returns the action bound to the key passed.
func (km Keymap) Lookup(key string) (Action, bool) {
	a, ok := km[normalizeKey(key)]
	return a, ok
}

// Strings returns the keymap as key name to action name bindings.
func (km Keymap) Strings() map[string]string {
	m := make(map[string]string, len(km))
	for key, a := range km {
		m[key] = a.String()
	}
	return m
}

func normalizeKey(key string) string {
	if key == " " {
		return key
	}
	return strings.ToLower(strings.TrimSpace(key))
}
