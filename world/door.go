package world

import (
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/game"
	"github.com/oomph-ac/museum/obstacle"
)

// Door returns the door registered under the name passed.
func (r *Registry) Door(name string) (*obstacle.Door, bool) {
	r.RLock()
	defer r.RUnlock()
	return r.doors.Get(name)
}

// DoorOpen returns the state of the door with the name passed. False is returned as the second value
// if no such door exists.
func (r *Registry) DoorOpen(name string) (open bool, ok bool) {
	r.RLock()
	defer r.RUnlock()
	d, ok := r.doors.Get(name)
	if !ok {
		return false, false
	}
	return d.Open(), true
}

// DoorNames returns the names of all doors in registration order.
func (r *Registry) DoorNames() []string {
	r.RLock()
	defer r.RUnlock()
	names := make([]string, 0, r.doors.Len())
	for el := r.doors.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// ToggleDoor opens or closes the door with the name passed and returns its new state. False is
// returned as the second value if no such door exists.
func (r *Registry) ToggleDoor(name string) (open bool, ok bool) {
	r.Lock()
	defer r.Unlock()
	d, ok := r.doors.Get(name)
	if !ok {
		return false, false
	}
	open = d.Toggle()
	r.log.Debugf("registry: door %q open=%v", name, open)
	return open, true
}

// NearestDoor returns the door closest to point, measured horizontally between the point and the
// door's center, provided it is closer than maxDist. Doors whose vertical extent does not overlap
// the body span [feetY, headY] are on another floor and are skipped.
func (r *Registry) NearestDoor(point mgl32.Vec3, maxDist, feetY, headY float32) (*obstacle.Door, float32, bool) {
	r.RLock()
	defer r.RUnlock()

	var (
		nearest *obstacle.Door
		best    = maxDist
	)
	for el := r.doors.Front(); el != nil; el = el.Next() {
		d := el.Value
		if !d.Valid() || !d.Extent().Overlaps(feetY, headY) {
			continue
		}
		if dist := game.HzDist(point, d.Position(point.Y())); dist < best {
			nearest, best = d, dist
		}
	}
	return nearest, best, nearest != nil
}

// Pick casts a ray from eye along dir and returns the closest valid obstacle it hits within
// maxDist. Open doors can be picked, other inactive obstacles cannot.
func (r *Registry) Pick(eye, dir mgl32.Vec3, maxDist float32) (obstacle.Obstacle, float32, bool) {
	if dir.LenSqr() == 0 || maxDist <= 0 {
		return nil, 0, false
	}
	end := eye.Add(dir.Normalize().Mul(maxDist))

	r.RLock()
	defer r.RUnlock()

	var (
		hit  obstacle.Obstacle
		best = maxDist
	)
	for _, o := range r.obstacles {
		if !o.Valid() {
			continue
		}
		if _, door := o.(*obstacle.Door); !door && !o.Active() {
			continue
		}
		bb := o.Bounds()
		if bb.Vec3Within(eye) {
			// The bounds of rotated obstacles are loose, so the eye may be inside one it does not touch.
			continue
		}
		result, ok := trace.BBoxIntercept(bb, eye, end)
		if !ok {
			continue
		}
		if dist := eye.Sub(result.Position()).Len(); dist < best {
			hit, best = o, dist
		}
	}
	return hit, best, hit != nil
}
