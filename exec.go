package museum

import (
	"errors"
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/console"
	"github.com/oomph-ac/museum/loop"
	"github.com/oomph-ac/museum/oerror"
	"github.com/oomph-ac/museum/utils"
)

// ErrQuit is returned by Exec for the quit command.
var ErrQuit = errors.New("quit")

// Exec executes a console command and returns its output. Waiting for frames steps the walkthrough
// directly unless it is running, in which case Exec blocks until the frames have passed.
func (m *Museum) Exec(cmd console.Command) (string, error) {
	switch cmd.Kind {
	case console.KindNone:
		return "", nil
	case console.KindDown, console.KindUp:
		if _, ok := m.keymap.Lookup(cmd.Key); !ok {
			return "", oerror.New("key %q is not bound", cmd.Key)
		}
		m.latch.OnKeyChange(cmd.Key, cmd.Kind == console.KindDown)
		return "", nil
	case console.KindMove:
		// The latch drops deltas outside capture.
		m.latch.OnPointerDelta(cmd.X, cmd.Y)
		if !m.latch.Captured() {
			return "pointer not captured, movement ignored", nil
		}
		return "", nil
	case console.KindCapture:
		m.latch.SetCaptured(cmd.On)
		return "", nil
	case console.KindWait:
		m.wait(cmd.Frames)
		return "", nil
	case console.KindTeleport:
		m.core.Teleport(mgl32.Vec3{cmd.X, cmd.Y, cmd.Z})
		return m.describePose(), nil
	case console.KindPose:
		return m.describePose(), nil
	case console.KindLook:
		name, dist, ok := m.core.LookTarget()
		if !ok {
			return "nothing in sight", nil
		}
		return fmt.Sprintf("%s at %.2f", name, dist), nil
	case console.KindDoors:
		doors := orderedmap.NewOrderedMap[string, any]()
		for _, name := range m.registry.DoorNames() {
			state := "closed"
			if open, _ := m.registry.DoorOpen(name); open {
				state = "open"
			}
			doors.Set(name, state)
		}
		return utils.OrderedMapToString(doors), nil
	case console.KindHelp:
		return console.Help, nil
	case console.KindQuit:
		return "", ErrQuit
	}
	return "", oerror.New("unhandled command kind %d", cmd.Kind)
}

func (m *Museum) describePose() string {
	floor := "none"
	if band, ok := m.registry.Floor(m.core.Floor()); ok {
		floor = band.String()
	}
	return fmt.Sprintf("%v floor=%s", m.core.Pose(), floor)
}

func (m *Museum) wait(frames int) {
	if !m.running.Load() {
		for range frames {
			m.Step()
		}
		return
	}
	target := m.core.Frame() + uint64(frames)
	interval := loop.Interval(m.settings.Loop.FrameRate)
	for m.running.Load() && m.core.Frame() < target {
		time.Sleep(interval)
	}
}
