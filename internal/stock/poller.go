package stock

import (
	"context"
	"iter"
	"time"
)

// DefaultInterval is the quote polling period.
const DefaultInterval = 5 * time.Second

// Poller drives a fixed-period cadence. It holds no per-run state, so one
// Poller can serve any number of independent sequences.
type Poller struct {
	interval time.Duration
}

// NewPoller returns a poller ticking every interval; non-positive values fall
// back to DefaultInterval.
func NewPoller(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{interval: interval}
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Ticks yields 1, 2, 3... The first tick fires one full interval after ranging
// starts, later ones on the wall-clock cadence. Ticks missed while the consumer
// is busy are dropped, never delivered in a burst. The sequence ends when ctx is
// done or the consumer stops.
func (p *Poller) Ticks(ctx context.Context) iter.Seq[int] {
	return func(yield func(int) bool) {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for n := 1; ; n++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if ctx.Err() != nil {
				return
			}
			if !yield(n) {
				return
			}
		}
	}
}
