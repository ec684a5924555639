package museum

import (
	"github.com/oomph-ac/museum/event"
	"github.com/oomph-ac/museum/movement"
)

// Sink receives the output of a walkthrough, such as a renderer or a HUD.
type Sink interface {
	// HandleFrame is called on the frame loop after every frame.
	HandleFrame(res movement.Result)
	// HandleEvent is called for floor changes and door toggles. It is called from a separate goroutine,
	// in the order the events happened, and must not call back into the core.
	HandleEvent(ev event.Event)
}

// NopSink implements Sink and discards everything.
type NopSink struct{}

func (NopSink) HandleFrame(movement.Result) {}
func (NopSink) HandleEvent(event.Event)     {}
