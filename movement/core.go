package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/assert"
	"github.com/oomph-ac/museum/event"
	"github.com/oomph-ac/museum/game"
	"github.com/oomph-ac/museum/input"
	"github.com/oomph-ac/museum/utils"
	"github.com/oomph-ac/museum/world"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Core is the locomotion core. It owns the pose of the viewer and advances it once per frame from a
// snapshot of the input state, resolving collisions against a registry and tracking the floor band
// the viewer is on.
type Core struct {
	cfg      Config
	registry *world.Registry
	handler  Handler
	log      *logrus.Logger

	pose  Pose
	floor int
	frame uint64

	deadlock.Mutex
}

// Option configures a Core on creation.
type Option func(c *Core)

// WithLogger sets the logger the core reports to.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Core) {
		c.log = utils.LoggerOrNop(log)
	}
}

// WithHandler sets the handler notified of floor changes and door toggles.
func WithHandler(h Handler) Option {
	return func(c *Core) {
		c.handler = h
	}
}

// NewCore creates a core that moves through the registry passed. The viewer spawns at cfg.Spawn,
// clamped into the vertical bounds of the building.
func NewCore(cfg Config, registry *world.Registry, opts ...Option) (*Core, error) {
	assert.IsTrue(registry != nil, game.ErrorNilRegistry)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Core{
		cfg:      cfg,
		registry: registry,
		handler:  NopHandler{},
		log:      utils.NopLogger(),
		floor:    -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.handler == nil {
		c.handler = NopHandler{}
	}

	pos := cfg.Spawn
	pos[1] = c.clampVertical(pos[1])
	c.pose = Pose{Position: pos, Yaw: cfg.SpawnYaw}
	if band, ok := registry.FloorAt(pos[1]); ok {
		c.floor = band.Index
	}
	c.log.Debugf("movement: spawned at %v on floor %d", c.pose, c.floor)
	return c, nil
}

// Update advances the core by a single frame using the input state passed and returns the result.
func (c *Core) Update(state input.State) Result {
	c.Lock()
	defer c.Unlock()

	c.frame++
	ctx := newCtx(c, state)
	defer putCtx(ctx)

	c.debugf(true, "BEGIN frame %d (input=%+v)", c.frame, state)
	defer func() {
		c.debugf(true, "END frame %d (pose=%v)", c.frame, c.pose)
	}()

	ctx.moveHorizontal()
	ctx.travelVertical()
	ctx.updateFloor()
	ctx.rotate()
	ctx.interact()
	return ctx.result()
}

// Pose returns the current pose of the viewer.
func (c *Core) Pose() Pose {
	c.Lock()
	defer c.Unlock()
	return c.pose
}

// Floor returns the index of the floor band the viewer was last seen on, or -1 if the viewer has
// never been inside a band.
func (c *Core) Floor() int {
	c.Lock()
	defer c.Unlock()
	return c.floor
}

// Frame returns the amount of frames the core has been updated.
func (c *Core) Frame() uint64 {
	c.Lock()
	defer c.Unlock()
	return c.frame
}

// Registry returns the registry the core collides with.
func (c *Core) Registry() *world.Registry {
	return c.registry
}

// SetHandler replaces the handler of the core. Passing nil removes it.
func (c *Core) SetHandler(h Handler) {
	c.Lock()
	defer c.Unlock()
	if h == nil {
		h = NopHandler{}
	}
	c.handler = h
}

// Teleport moves the viewer to pos without collision checks. The height is clamped into the
// vertical bounds of the building and a floor change is reported if the band changed.
func (c *Core) Teleport(pos mgl32.Vec3) {
	c.Lock()
	defer c.Unlock()

	pos[1] = c.clampVertical(pos[1])
	c.pose.Position = pos
	c.debugf(true, "teleported to %v", pos)
	c.syncFloor()
}

// SetRotation sets the yaw and pitch of the viewer. The pitch is clamped.
func (c *Core) SetRotation(yaw, pitch float32) {
	c.Lock()
	defer c.Unlock()
	c.pose.Yaw = yaw
	c.pose.Pitch = clampPitch(pitch)
}

// LookTarget returns the name of the closest obstacle under the look ray within the look distance
// of the config.
func (c *Core) LookTarget() (string, float32, bool) {
	pose := c.Pose()
	o, dist, ok := c.registry.Pick(pose.Position, pose.Direction(), c.cfg.LookDistance)
	if !ok {
		return "", 0, false
	}
	return o.Name(), dist, true
}

// body returns the vertical span of the viewer's body for an eye height of y.
func (c *Core) body(y float32) (feetY, headY float32) {
	feetY = y - c.cfg.EyeHeight
	return feetY, feetY + c.cfg.BodyHeight
}

func (c *Core) notifyFloorChange(previous int, band world.FloorBand) {
	ev := event.NewFloorChange(c.frame, previous, band.Index, band.Label)
	c.log.Infof("movement: floor changed %d -> %s", previous, band)
	c.handler.HandleFloorChange(ev)
}

func (c *Core) notifyDoorToggle(ev *event.DoorToggle) {
	c.log.Infof("movement: door %q open=%v", ev.Door, ev.Open)
	c.handler.HandleDoorToggle(ev)
}

func (c *Core) debugf(cond bool, format string, args ...any) {
	if !c.cfg.Debug || !cond {
		return
	}
	c.log.Debugf("movement: "+format, args...)
}
