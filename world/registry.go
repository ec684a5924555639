package world

import (
	"fmt"
	"slices"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
	"github.com/oomph-ac/museum/obstacle"
	"github.com/oomph-ac/museum/utils"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// Registry holds the static geometry the locomotion core collides with: obstacles, the floor bands
// of the building, and the zones in which vertical travel is possible. The registry is assembled by
// the scene builder and may grow at runtime. The locomotion core never mutates geometry, it only
// toggles doors.
type Registry struct {
	obstacles []obstacle.Obstacle
	named     map[string]obstacle.Obstacle
	doors     *orderedmap.OrderedMap[string, *obstacle.Door]

	bands  []FloorBand
	stairs []StairZone

	log *logrus.Logger

	deadlock.RWMutex
}

// NewRegistry returns an empty registry for a building with the floor bands passed. The bands must
// be indexed from zero, ordered and contiguous.
func NewRegistry(log *logrus.Logger, bands []FloorBand) (*Registry, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf(game.ErrorNoFloorBands)
	}
	if err := validateBands(bands); err != nil {
		return nil, fmt.Errorf("invalid floor bands: %w", err)
	}
	return &Registry{
		named: make(map[string]obstacle.Obstacle),
		doors: orderedmap.NewOrderedMap[string, *obstacle.Door](),
		bands: slices.Clone(bands),
		log:   utils.LoggerOrNop(log),
	}, nil
}

// Add registers obstacles with the registry. Malformed obstacles are accepted but never collided
// with. An error is returned if a named obstacle is already registered, in which case none of the
// obstacles passed are added.
func (r *Registry) Add(obstacles ...obstacle.Obstacle) error {
	r.Lock()
	defer r.Unlock()

	seen := make(map[string]struct{}, len(obstacles))
	for _, o := range obstacles {
		name := o.Name()
		if name == "" {
			continue
		}
		if _, ok := r.named[name]; ok {
			return fmt.Errorf(game.ErrorDuplicateObstacle, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf(game.ErrorDuplicateObstacle, name)
		}
		seen[name] = struct{}{}
	}

	for _, o := range obstacles {
		if !o.Valid() {
			r.log.Warnf("registry: obstacle %q is malformed and will be ignored for collisions", o.Name())
		}
		r.obstacles = append(r.obstacles, o)
		if name := o.Name(); name != "" {
			r.named[name] = o
		}
		if d, ok := o.(*obstacle.Door); ok && d.Name() != "" {
			r.doors.Set(d.Name(), d)
		}
	}
	r.log.Debugf("registry: added %d obstacles (total=%d)", len(obstacles), len(r.obstacles))
	return nil
}

// AddStairs registers zones in which vertical travel is allowed.
func (r *Registry) AddStairs(zones ...StairZone) {
	r.Lock()
	defer r.Unlock()
	r.stairs = append(r.stairs, zones...)
}

// Obstacle returns the obstacle registered under the name passed.
func (r *Registry) Obstacle(name string) (obstacle.Obstacle, bool) {
	r.RLock()
	defer r.RUnlock()
	o, ok := r.named[name]
	return o, ok
}

// Obstacles returns a copy of all registered obstacles in registration order.
func (r *Registry) Obstacles() []obstacle.Obstacle {
	r.RLock()
	defer r.RUnlock()
	return slices.Clone(r.obstacles)
}

// Len returns the amount of registered obstacles.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.obstacles)
}

// Collides returns true if a viewer cylinder of the given radius, standing at point and spanning
// [feetY, headY] vertically, intersects any active obstacle. Obstacles with a vertical extent only
// apply when the extent overlaps the span.
func (r *Registry) Collides(point mgl32.Vec3, radius, feetY, headY float32) bool {
	r.RLock()
	defer r.RUnlock()

	candidates := utils.GetObstacleList()
	defer utils.PutObstacleList(candidates)
	r.nearby(point, radius, feetY, headY, candidates)

	for _, o := range *candidates {
		if !o.Extent().Overlaps(feetY, headY) {
			continue
		}
		if o.Collides(point, radius) {
			r.log.Tracef("registry: %v collides with obstacle %q", point, o.Name())
			return true
		}
	}
	return false
}

// nearby appends to dst every valid, active obstacle whose bounds intersect the viewer's cylinder.
// The read lock must be held.
func (r *Registry) nearby(point mgl32.Vec3, radius, feetY, headY float32, dst *[]obstacle.Obstacle) {
	reach := radius + game.BroadphaseMargin
	query := cube.Box(
		point.X()-reach, feetY-game.BroadphaseMargin, point.Z()-reach,
		point.X()+reach, headY+game.BroadphaseMargin, point.Z()+reach,
	)
	for _, o := range r.obstacles {
		if !o.Valid() || !o.Active() {
			continue
		}
		if o.Bounds().IntersectsWith(query) {
			*dst = append(*dst, o)
		}
	}
}

// FloorAt returns the floor band containing y. False is returned if no band contains y.
func (r *Registry) FloorAt(y float32) (FloorBand, bool) {
	r.RLock()
	defer r.RUnlock()
	for _, b := range r.bands {
		if b.Contains(y) {
			return b, true
		}
	}
	return FloorBand{}, false
}

// Floor returns the band with the index passed.
func (r *Registry) Floor(index int) (FloorBand, bool) {
	r.RLock()
	defer r.RUnlock()
	if index < 0 || index >= len(r.bands) {
		return FloorBand{}, false
	}
	return r.bands[index], true
}

// Floors returns a copy of the floor bands ordered by index.
func (r *Registry) Floors() []FloorBand {
	r.RLock()
	defer r.RUnlock()
	return slices.Clone(r.bands)
}

// Ground returns the bottom of the lowest band.
func (r *Registry) Ground() float32 {
	r.RLock()
	defer r.RUnlock()
	return r.bands[0].FloorY
}

// Top returns the top of the highest band.
func (r *Registry) Top() float32 {
	r.RLock()
	defer r.RUnlock()
	return r.bands[len(r.bands)-1].Top()
}

// InStairZone returns true if the horizontal position of point lies inside any stair zone.
func (r *Registry) InStairZone(point mgl32.Vec3) bool {
	r.RLock()
	defer r.RUnlock()
	for _, z := range r.stairs {
		if z.Contains(point) {
			return true
		}
	}
	return false
}

// StairZones returns a copy of the registered stair zones.
func (r *Registry) StairZones() []StairZone {
	r.RLock()
	defer r.RUnlock()
	return slices.Clone(r.stairs)
}
