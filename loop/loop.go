package loop

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/museum/oerror"
)

// Run calls frame rate times per second until ctx is done, and then returns the error of ctx. Frames
// never overlap: if a frame takes longer than the interval the next one is delayed.
func Run(ctx context.Context, rate int, frame func()) error {
	if rate <= 0 {
		return oerror.New("frame rate must be positive, got %d", rate)
	}
	defer sentry.Recover()

	t := time.NewTicker(Interval(rate))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			frame()
		}
	}
}

// Interval returns the time between two frames at the rate passed.
func Interval(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}
