package loop

import (
	"fmt"
	"time"

	"github.com/oomph-ac/museum/omath"
	"github.com/sasha-s/go-deadlock"
)

// Timings keeps the durations of the most recent frames.
type Timings struct {
	samples []float64
	next    int
	full    bool

	mu deadlock.Mutex
}

// NewTimings returns Timings keeping up to size samples.
func NewTimings(size int) *Timings {
	if size < 1 {
		size = 1
	}
	return &Timings{samples: make([]float64, size)}
}

// Record adds the duration of a frame.
func (t *Timings) Record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples[t.next] = d.Seconds()
	t.next++
	if t.next == len(t.samples) {
		t.next, t.full = 0, true
	}
}

// Summary describes the recorded frame durations.
type Summary struct {
	Frames int
	Mean   time.Duration
	StdDev time.Duration
	Max    time.Duration
}

// String ...
func (s Summary) String() string {
	return fmt.Sprintf("frames=%d mean=%v stddev=%v max=%v", s.Frames, s.Mean, s.StdDev, s.Max)
}

// Summary returns statistics over the recorded frame durations.
func (t *Timings) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	samples := t.samples[:t.next]
	if t.full {
		samples = t.samples
	}
	seconds := func(v float64) time.Duration {
		return time.Duration(v * float64(time.Second))
	}
	return Summary{
		Frames: len(samples),
		Mean:   seconds(omath.Mean(samples)),
		StdDev: seconds(omath.StandardDeviation(samples)),
		Max:    seconds(omath.Max(samples)),
	}
}
