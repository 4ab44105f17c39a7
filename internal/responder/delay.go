package responder

import (
	"context"
	"math/rand"
	"time"

	"github.com/certograph/harness/internal/models"
)

// delayFor resolves the pre-response delay requested by the directive set.
// A fixed delay wins over a random range. The draw is uniform over
// [min, max] inclusive and comes from the process-wide PRNG, which is safe
// for concurrent use and seeded differently on every process start.
func delayFor(set models.ParamSet) time.Duration {
	if set.Delay != nil {
		return time.Duration(*set.Delay) * time.Millisecond
	}
	if set.RandomDelay.IsSet() {
		min, max := *set.RandomDelay.Min, *set.RandomDelay.Max
		ms := min + rand.Intn(max-min+1)
		return time.Duration(ms) * time.Millisecond
	}
	return 0
}

// sleep blocks for d or until ctx is done, whichever comes first.
// It reports whether the full delay elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
