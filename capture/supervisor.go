package capture

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"keyglow/input"
)

const (
	// DefaultReattachLimit is how many consecutive backend failures are
	// tolerated before the supervisor reports capture as unavailable.
	DefaultReattachLimit = 3

	// DefaultStabilization is how long a session must stay attached before
	// its failure history is forgiven.
	DefaultStabilization = 10 * time.Second

	defaultRetryBase = 250 * time.Millisecond
	defaultRetryMax  = 10 * time.Second
)

// Supervisor runs a backend on its own goroutine and owns the reattach
// policy. Device disruptions get a bounded number of quick reattach
// attempts; once the budget is spent (or when the very first attach fails)
// the status flag flips to unavailable while retries continue in the
// background at a capped backoff. A session that stays attached through the
// stabilization window clears the failure history. Nothing here is ever
// fatal to the process.
type Supervisor struct {
	backend Backend
	emit    func(input.Raw)

	reattachLimit int
	retryBase     time.Duration
	retryMax      time.Duration
	stabilization time.Duration

	available atomic.Bool
	attached  atomic.Bool
	failures  atomic.Int32
	session   atomic.Int64

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// SupervisorOption adjusts supervision policy.
type SupervisorOption func(*Supervisor)

// WithReattachLimit overrides the bounded reattach attempt count.
func WithReattachLimit(n int) SupervisorOption {
	return func(s *Supervisor) { s.reattachLimit = n }
}

// WithRetryBackoff overrides the retry backoff bounds; tests use short ones.
func WithRetryBackoff(base, max time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		s.retryBase = base
		s.retryMax = max
	}
}

// WithStabilization overrides the stabilization window.
func WithStabilization(d time.Duration) SupervisorOption {
	return func(s *Supervisor) { s.stabilization = d }
}

// NewSupervisor wires a backend to an emit function, usually normalization
// plus the bus publish.
func NewSupervisor(backend Backend, emit func(input.Raw), opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		backend:       backend,
		emit:          emit,
		reattachLimit: DefaultReattachLimit,
		retryBase:     defaultRetryBase,
		retryMax:      defaultRetryMax,
		stabilization: DefaultStabilization,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the supervision loop. It returns immediately; attach
// results surface through Available.
func (s *Supervisor) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.run(ctx)
}

// Stop cancels the backend and waits until its goroutine has fully exited.
// Safe to call from any goroutine, and more than once.
func (s *Supervisor) Stop() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.wg.Wait()
		s.available.Store(false)
	})
}

// Available reports whether global capture is currently functioning. The
// UI reads this to show a degraded-mode banner.
func (s *Supervisor) Available() bool {
	return s.available.Load()
}

func (s *Supervisor) run(ctx context.Context) {
	defer s.wg.Done()

	for {
		session := s.session.Add(1)

		ready := func() {
			s.attached.Store(true)
			if int(s.failures.Load()) <= s.reattachLimit {
				// Within the reattach budget the overlay keeps its healthy
				// status through the blip.
				s.available.Store(true)
			}
			// Forgive the failure history once this session proves stable.
			time.AfterFunc(s.stabilization, func() {
				if s.session.Load() == session && s.attached.Load() {
					s.failures.Store(0)
					s.available.Store(true)
				}
			})
			slog.Info("Capture attached", "backend", s.backend.Name())
		}

		err := s.backend.Stream(ctx, ready, s.emit)
		s.attached.Store(false)
		s.session.Add(1) // invalidate this session's pending stabilization
		if ctx.Err() != nil {
			return
		}

		failures := s.failures.Add(1)
		if errors.Is(err, ErrUnavailable) || int(failures) > s.reattachLimit {
			s.available.Store(false)
		}
		slog.Warn("Capture backend stopped, retrying",
			"backend", s.backend.Name(),
			"error", err,
			"consecutive_failures", failures,
			"available", s.available.Load())

		if !sleepCtx(ctx, s.backoff(int(failures))) {
			return
		}
	}
}

func (s *Supervisor) backoff(failures int) time.Duration {
	d := s.retryBase
	for i := 1; i < failures; i++ {
		d *= 2
		if d >= s.retryMax {
			return s.retryMax
		}
	}
	if d > s.retryMax {
		return s.retryMax
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
