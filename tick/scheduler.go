// Package tick drives periodic work at a fixed cadence.
package tick

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the sweep cadence the agent runs at, roughly one
// maintenance pass per display frame.
const DefaultInterval = 33 * time.Millisecond

// Func receives the wall-clock time of the tick that invoked it.
type Func func(now time.Time)

// Scheduler calls a function at a fixed interval on its own goroutine.
// time.Ticker self-corrects for slow receivers, so a callback that
// occasionally overruns the interval delays ticks rather than stacking them.
type Scheduler struct {
	interval time.Duration
	fn       Func

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// New builds a scheduler; a zero or negative interval falls back to
// DefaultInterval.
func New(interval time.Duration, fn Func) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval, fn: fn}
}

// Start launches the tick loop. The first call fires after one interval,
// not immediately.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop halts the loop and waits for any in-flight callback to return.
// Safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.wg.Wait()
	})
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.fn(now)
		}
	}
}
