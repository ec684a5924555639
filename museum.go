package museum

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/oomph-ac/museum/event"
	"github.com/oomph-ac/museum/input"
	"github.com/oomph-ac/museum/loop"
	"github.com/oomph-ac/museum/movement"
	"github.com/oomph-ac/museum/scene"
	"github.com/oomph-ac/museum/settings"
	"github.com/oomph-ac/museum/utils"
	"github.com/oomph-ac/museum/worker"
	"github.com/oomph-ac/museum/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Museum is a walkthrough of a single building by a single viewer. It owns the input latch fed by
// the host's input events and the locomotion core that consumes it once per frame.
type Museum struct {
	id       uuid.UUID
	settings settings.Settings
	log      *logrus.Logger

	keymap   input.Keymap
	registry *world.Registry
	latch    *input.Latch
	core     *movement.Core
	events   *worker.Worker

	running atomic.Bool
	timings *loop.Timings

	sink   Sink
	sinkMu deadlock.RWMutex
}

// New builds the layout passed and places a viewer in it, configured by the settings passed.
func New(s settings.Settings, layout scene.Layout, log *logrus.Logger) (*Museum, error) {
	log = utils.LoggerOrNop(log)
	cfg, err := s.MovementConfig()
	if err != nil {
		return nil, err
	}
	keymap, err := s.Keymap()
	if err != nil {
		return nil, err
	}
	registry, err := scene.Build(layout, log)
	if err != nil {
		return nil, err
	}

	m := &Museum{
		id:       uuid.New(),
		settings: s,
		log:      log,
		keymap:   keymap,
		registry: registry,
		latch:    input.NewLatch(keymap),
		events:   worker.New(64),
		timings:  loop.NewTimings(600),
		sink:     NopSink{},
	}
	m.core, err = movement.NewCore(cfg, registry, movement.WithLogger(log), movement.WithHandler(handler{m: m}))
	if err != nil {
		m.events.Close()
		return nil, err
	}
	return m, nil
}

// ID returns the unique ID of the walkthrough, attached to every event it logs.
func (m *Museum) ID() uuid.UUID {
	return m.id
}

// Latch returns the input latch. Host input events should be forwarded to it.
func (m *Museum) Latch() *input.Latch {
	return m.latch
}

// Core returns the locomotion core.
func (m *Museum) Core() *movement.Core {
	return m.core
}

// Registry returns the obstacles of the building.
func (m *Museum) Registry() *world.Registry {
	return m.registry
}

// SetSink sets the sink the output of the walkthrough is sent to. Passing nil removes it.
func (m *Museum) SetSink(sink Sink) {
	if sink == nil {
		sink = NopSink{}
	}
	m.sinkMu.Lock()
	defer m.sinkMu.Unlock()
	m.sink = sink
}

func (m *Museum) currentSink() Sink {
	m.sinkMu.RLock()
	defer m.sinkMu.RUnlock()
	return m.sink
}

// Step runs a single frame: the latch is snapshotted, the core is updated and the result is sent to
// the sink.
func (m *Museum) Step() movement.Result {
	res := m.core.Update(m.latch.Snapshot())
	m.currentSink().HandleFrame(res)
	return res
}

// Run steps the walkthrough at the configured frame rate until ctx is done, sending the output to the
// sink passed.
func (m *Museum) Run(ctx context.Context, sink Sink) error {
	m.SetSink(sink)
	m.running.Store(true)
	defer m.running.Store(false)

	m.log.Infof("museum: walkthrough %s running at %d frames per second", m.id, m.settings.Loop.FrameRate)
	defer func() {
		m.log.Infof("museum: stopped (%v)", m.timings.Summary())
	}()
	return loop.Run(ctx, m.settings.Loop.FrameRate, func() {
		start := time.Now()
		m.Step()
		m.timings.Record(time.Since(start))
	})
}

// Timings returns statistics over the durations of the most recent frames run by Run.
func (m *Museum) Timings() loop.Summary {
	return m.timings.Summary()
}

// Close waits for queued events to be delivered and stops the event worker.
func (m *Museum) Close() {
	m.events.Close()
}

// publish logs an event and queues it for the sink. Events reach the sink in the order they were
// published.
func (m *Museum) publish(ev event.Event) {
	m.log.WithFields(logrus.Fields(utils.Fields(ev.Extra()))).WithField("session", m.id.String()).Info(ev.ID())
	sink := m.currentSink()
	if !m.events.Submit(func() { sink.HandleEvent(ev) }) {
		m.log.Warnf("museum: dropped event %s after close", ev.ID())
	}
}

// handler forwards the notifications of the core to the museum.
type handler struct {
	m *Museum
}

func (h handler) HandleFloorChange(ev *event.FloorChange) { h.m.publish(ev) }
func (h handler) HandleDoorToggle(ev *event.DoorToggle)   { h.m.publish(ev) }
