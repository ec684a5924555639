package input

// State is the input sampled by the locomotion core once per frame.
type State struct {
	Forward, Backward bool
	Left, Right       bool
	Ascend, Descend   bool

	// Interact is true if the interact key was pressed since the previous frame.
	Interact bool

	// DX and DY are the pointer movement accumulated since the previous frame.
	DX, DY float32
}

// Moving returns true if any horizontal movement flag is set.
func (s State) Moving() bool {
	return s.Forward || s.Backward || s.Left || s.Right
}

// Vertical returns true if any vertical movement flag is set.
func (s State) Vertical() bool {
	return s.Ascend || s.Descend
}
