package world

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/museum/game"
)

// FloorBand is the vertical range of one building level. A band contains every height in
// [FloorY, FloorY+Height).
type FloorBand struct {
	Index  int
	FloorY float32
	Height float32
	Label  string
}

// Top returns the height at which the band ends.
func (b FloorBand) Top() float32 {
	return b.FloorY + b.Height
}

// Contains returns true if y lies within the band.
func (b FloorBand) Contains(y float32) bool {
	return y >= b.FloorY && y < b.Top()
}

// Clamp clamps y into the band, keeping it strictly below the top.
func (b FloorBand) Clamp(y float32) float32 {
	return math32.Max(b.FloorY, math32.Min(y, b.Top()-game.Epsilon))
}

// String ...
func (b FloorBand) String() string {
	if b.Label != "" {
		return fmt.Sprintf("%d (%s)", b.Index, b.Label)
	}
	return fmt.Sprintf("%d", b.Index)
}

// UniformBands returns count contiguous bands of the same height starting at ground.
func UniformBands(ground, height float32, count int, labels ...string) []FloorBand {
	bands := make([]FloorBand, 0, count)
	for i := range count {
		band := FloorBand{Index: i, FloorY: ground + float32(i)*height, Height: height}
		if i < len(labels) {
			band.Label = labels[i]
		}
		bands = append(bands, band)
	}
	return bands
}

// validateBands checks that the bands are indexed from zero, ordered and contiguous.
func validateBands(bands []FloorBand) error {
	for i, b := range bands {
		if b.Index != i {
			return fmt.Errorf("floor band at position %d has index %d", i, b.Index)
		}
		if !game.IsFinite32(b.FloorY) || !game.IsFinite32(b.Height) || b.Height <= 0 {
			return fmt.Errorf(game.ErrorBandBadHeight, i, b.Height)
		}
		if i > 0 {
			if prev := bands[i-1]; math32.Abs(prev.Top()-b.FloorY) > game.Epsilon {
				return fmt.Errorf(game.ErrorBandNotContiguous, i, b.FloorY, prev.Top())
			}
		}
	}
	return nil
}
