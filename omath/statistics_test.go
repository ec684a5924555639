package omath

import (
	"math"
	"testing"
)

func TestStatistics(t *testing.T) {
	nums := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Mean(nums); got != 5 {
		t.Fatalf("expected mean 5, got %v", got)
	}
	if got := Variance(nums); got != 4 {
		t.Fatalf("expected variance 4, got %v", got)
	}
	if got := StandardDeviation(nums); math.Abs(got-2) > 1e-12 {
		t.Fatalf("expected standard deviation 2, got %v", got)
	}
	if got := Max(nums); got != 9 {
		t.Fatalf("expected max 9, got %v", got)
	}
	if Mean(nil) != 0 || Variance(nil) != 0 || Max(nil) != 0 {
		t.Fatalf("empty input should yield zero")
	}
}
