package world

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/museum/obstacle"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(nil, UniformBands(0, 4, 2, "Ground Floor", "Upper Gallery"))
	if err != nil {
		t.Fatalf("unexpected error creating registry: %v", err)
	}
	return r
}

func TestNewRegistryValidatesBands(t *testing.T) {
	tests := []struct {
		name  string
		bands []FloorBand
	}{
		{"empty", nil},
		{"gap", []FloorBand{{Index: 0, FloorY: 0, Height: 4}, {Index: 1, FloorY: 5, Height: 4}}},
		{"bad index", []FloorBand{{Index: 1, FloorY: 0, Height: 4}}},
		{"zero height", []FloorBand{{Index: 0, FloorY: 0, Height: 0}}},
	}
	for _, tt := range tests {
		if _, err := NewRegistry(nil, tt.bands); err == nil {
			t.Fatalf("%s: expected an error", tt.name)
		}
	}
}

func TestCollidesWallScenario(t *testing.T) {
	r := newTestRegistry(t)
	wall := obstacle.RotatedRect{ID: "wall", Center: mgl32.Vec2{5, 0}, HalfWidth: 2, HalfDepth: 0.3}
	if err := r.Add(wall); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Collides(mgl32.Vec3{3.5, 1.6, 0}, 0.5, 0, 1.7) {
		t.Fatalf("expected (3.5, 0) to be blocked")
	}
	if r.Collides(mgl32.Vec3{2, 1.6, 0}, 0.5, 0, 1.7) {
		t.Fatalf("expected (2, 0) to be clear")
	}
}

func TestCollidesVerticalExtent(t *testing.T) {
	r := newTestRegistry(t)
	counter := obstacle.RotatedRect{ID: "counter", HalfWidth: 1, HalfDepth: 1, Vertical: obstacle.Extent{MinY: 0, MaxY: 1}}
	_ = r.Add(counter)

	if !r.Collides(mgl32.Vec3{0, 1.6, 0}, 0.5, 0, 1.7) {
		t.Fatalf("counter should block on the ground floor")
	}
	if r.Collides(mgl32.Vec3{0, 5.6, 0}, 0.5, 4, 5.7) {
		t.Fatalf("counter should not block on the floor above")
	}
}

func TestCollidesSkipsOpenDoorsAndMalformed(t *testing.T) {
	r := newTestRegistry(t)
	door := obstacle.NewDoor(obstacle.RotatedRect{ID: "entrance", Center: mgl32.Vec2{0, 10}, HalfWidth: 1, HalfDepth: 0.1})
	broken := obstacle.Circle{ID: "broken", Center: mgl32.Vec2{0, -10}, Radius: math32.NaN()}
	if err := r.Add(door, broken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := mgl32.Vec3{0, 1.6, 10}
	if !r.Collides(at, 0.5, 0, 1.7) {
		t.Fatalf("closed door should block")
	}
	if open, ok := r.ToggleDoor("entrance"); !ok || !open {
		t.Fatalf("expected door to open")
	}
	if open, ok := r.DoorOpen("entrance"); !ok || !open {
		t.Fatalf("expected DoorOpen to report the open door")
	}
	if r.Collides(at, 0.5, 0, 1.7) {
		t.Fatalf("open door should not block")
	}
	if r.Collides(mgl32.Vec3{0, 1.6, -10}, 0.5, 0, 1.7) {
		t.Fatalf("malformed obstacle should be skipped")
	}
	if _, ok := r.ToggleDoor("missing"); ok {
		t.Fatalf("unknown door should not toggle")
	}
}

func TestAddRejectsDuplicates(t *testing.T) {
	r := newTestRegistry(t)
	a := obstacle.Circle{ID: "pillar", Radius: 1}
	if err := r.Add(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Add(obstacle.Circle{ID: "other", Radius: 1}, a); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if _, ok := r.Obstacle("other"); ok {
		t.Fatalf("a failed Add should not register any obstacle")
	}
	if err := r.Add(obstacle.Circle{Radius: 1}, obstacle.Circle{Radius: 2}); err != nil {
		t.Fatalf("anonymous obstacles should never conflict: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 obstacles, got %d", r.Len())
	}
}

func TestFloorAt(t *testing.T) {
	r := newTestRegistry(t)
	tests := []struct {
		y     float32
		index int
		ok    bool
	}{
		{0, 0, true},
		{1.6, 0, true},
		{3.999, 0, true},
		{4, 1, true},
		{7.9, 1, true},
		{8, 0, false},
		{-0.1, 0, false},
	}
	for _, tt := range tests {
		band, ok := r.FloorAt(tt.y)
		if ok != tt.ok || (ok && band.Index != tt.index) {
			t.Fatalf("FloorAt(%v) = (%v, %v), want (%v, %v)", tt.y, band.Index, ok, tt.index, tt.ok)
		}
		if ok && !band.Contains(tt.y) {
			t.Fatalf("band %v does not contain %v", band, tt.y)
		}
	}
	if r.Ground() != 0 || r.Top() != 8 {
		t.Fatalf("unexpected ground/top %v/%v", r.Ground(), r.Top())
	}
}

func TestStairZones(t *testing.T) {
	r := newTestRegistry(t)
	r.AddStairs(StairZone{Name: "grand", Footprint: obstacle.RotatedRect{Center: mgl32.Vec2{6, 6}, HalfWidth: 1, HalfDepth: 3}})
	if !r.InStairZone(mgl32.Vec3{6, 2, 8}) {
		t.Fatalf("expected point inside stair zone")
	}
	if r.InStairZone(mgl32.Vec3{0, 2, 0}) {
		t.Fatalf("expected point outside stair zone")
	}
}

func TestNearestDoorAndPick(t *testing.T) {
	r := newTestRegistry(t)
	near := obstacle.NewDoor(obstacle.RotatedRect{ID: "near", Center: mgl32.Vec2{0, -2}, HalfWidth: 1, HalfDepth: 0.1})
	far := obstacle.NewDoor(obstacle.RotatedRect{ID: "far", Center: mgl32.Vec2{0, -20}, HalfWidth: 1, HalfDepth: 0.1})
	pedestal := obstacle.RotatedRect{ID: "pedestal", Center: mgl32.Vec2{4, 0}, HalfWidth: 0.5, HalfDepth: 0.5, Vertical: obstacle.Extent{MaxY: 1.2}}
	if err := r.Add(near, far, pedestal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, dist, ok := r.NearestDoor(mgl32.Vec3{0, 1.6, 0}, 3, 0, 1.7)
	if !ok || d.Name() != "near" || dist > 2.01 {
		t.Fatalf("expected near door, got %v %v %v", d, dist, ok)
	}
	if _, _, ok := r.NearestDoor(mgl32.Vec3{0, 1.6, 10}, 3, 0, 1.7); ok {
		t.Fatalf("no door should be within range")
	}
	if names := r.DoorNames(); len(names) != 2 || names[0] != "near" || names[1] != "far" {
		t.Fatalf("unexpected door order %v", names)
	}

	o, _, ok := r.Pick(mgl32.Vec3{0, 0.6, 0}, mgl32.Vec3{1, 0, 0}, 10)
	if !ok || o.Name() != "pedestal" {
		t.Fatalf("expected to pick pedestal, got %v %v", o, ok)
	}
	if _, _, ok := r.Pick(mgl32.Vec3{0, 1.6, 0}, mgl32.Vec3{1, 0, 0}, 10); ok {
		t.Fatalf("looking over the pedestal should not pick it")
	}
	o, _, ok = r.Pick(mgl32.Vec3{0, 1.6, 0}, mgl32.Vec3{0, 0, -1}, 30)
	if !ok || o.Name() != "near" {
		t.Fatalf("expected the closest door along the ray, got %v %v", o, ok)
	}
}

func TestNearestDoorSkipsOtherFloors(t *testing.T) {
	r := newTestRegistry(t)
	door := obstacle.NewDoor(obstacle.RotatedRect{ID: "garden", Center: mgl32.Vec2{0, -2}, HalfWidth: 1, HalfDepth: 0.1, Vertical: obstacle.Extent{MaxY: 3}})
	if err := r.Add(door); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, ok := r.NearestDoor(mgl32.Vec3{0, 5.6, 0}, 3, 4, 5.7); ok {
		t.Fatalf("a door on the floor below should not be in reach")
	}
	if d, _, ok := r.NearestDoor(mgl32.Vec3{0, 1.6, 0}, 3, 0, 1.7); !ok || d.Name() != "garden" {
		t.Fatalf("expected the door on the same floor, got %v %v", d, ok)
	}
}
