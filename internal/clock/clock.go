// Package clock holds the timing helpers shared by the reconnect loops.
package clock

import (
	"context"
	"math/rand/v2"
	"time"
)

// Pause waits a jittered d before a peer slot redials. It returns the
// context error when ctx ends first.
func Pause(ctx context.Context, d time.Duration) error {
	return Sleep(ctx, Jitter(d))
}

// Sleep blocks for d unless ctx ends first. A non-positive d only reports ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Jitter stretches d by a random amount of up to half of it, so slots that
// lose their peers together are not redialed in lockstep.
func Jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	return d + rand.N(d/2+1)
}
