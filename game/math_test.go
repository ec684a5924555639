package game

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestForwardAndRightVectors(t *testing.T) {
	tests := []struct {
		yaw            float32
		forward, right mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{1, 0, 0}},
		{math32.Pi / 2, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{math32.Pi, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		if f := ForwardVector(tt.yaw); !Vec3ApproxEq(f, tt.forward) {
			t.Fatalf("ForwardVector(%v) = %v, want %v", tt.yaw, f, tt.forward)
		}
		if r := RightVector(tt.yaw); !Vec3ApproxEq(r, tt.right) {
			t.Fatalf("RightVector(%v) = %v, want %v", tt.yaw, r, tt.right)
		}
		if d := ForwardVector(tt.yaw).Dot(RightVector(tt.yaw)); !Float32ApproxEq(d, 0) {
			t.Fatalf("forward and right are not perpendicular at yaw %v: dot=%v", tt.yaw, d)
		}
	}
}

func TestDirectionVectorPitch(t *testing.T) {
	up := DirectionVector(0, MaxPitch)
	if !Vec3ApproxEq(up, mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("expected straight up, got %v", up)
	}
	level := DirectionVector(0, 0)
	if !Vec3ApproxEq(level, ForwardVector(0)) {
		t.Fatalf("level direction should equal forward, got %v", level)
	}
}

func TestClampPitch(t *testing.T) {
	for _, p := range []float32{-100, -MaxPitch, 0, 1, MaxPitch, 100} {
		c := ClampPitch(p)
		if c < -MaxPitch || c > MaxPitch {
			t.Fatalf("ClampPitch(%v) = %v out of bounds", p, c)
		}
	}
	if ClampPitch(1) != 1 {
		t.Fatalf("in-range pitch should be unchanged")
	}
	if c := float64(ClampPitch(100)); c >= math.Pi/2 {
		t.Fatalf("clamped pitch %v is not below pi/2", c)
	}
	if next := float64(math32.Nextafter(MaxPitch, 2)); next <= math.Pi/2 {
		t.Fatalf("MaxPitch is not the largest float32 below pi/2")
	}
}

func TestHzDist(t *testing.T) {
	if d := HzDist(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{3, -4, 4}); !Float32ApproxEq(d, 5) {
		t.Fatalf("expected 5, got %v", d)
	}
	if IsFinite32(math32.NaN()) || IsFinite32(math32.Inf(1)) || !IsFinite32(2) {
		t.Fatalf("IsFinite32 misclassified a value")
	}
}
