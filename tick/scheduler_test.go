package tick

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerTicksAtInterval(t *testing.T) {
	var ticks atomic.Int32
	var lastNow atomic.Int64

	s := New(10*time.Millisecond, func(now time.Time) {
		ticks.Add(1)
		lastNow.Store(now.UnixNano())
	})
	s.Start(context.Background())
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 5 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := ticks.Load(); got < 5 {
		t.Fatalf("expected at least 5 ticks, got %d", got)
	}
	if lastNow.Load() == 0 {
		t.Fatalf("callback never received a wall-clock timestamp")
	}
}

func TestSchedulerStopJoinsInFlightCallback(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	s := New(5*time.Millisecond, func(time.Time) {
		select {
		case entered <- struct{}{}:
			<-release
			finished.Store(true)
		default:
		}
	})
	s.Start(context.Background())

	<-entered

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
		t.Fatalf("Stop returned while a callback was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Stop never returned after the callback finished")
	}
	if !finished.Load() {
		t.Fatalf("in-flight callback did not complete before Stop returned")
	}

	// Stop again is a no-op.
	s.Stop()
}

func TestSchedulerNoTicksAfterStop(t *testing.T) {
	var ticks atomic.Int32
	s := New(5*time.Millisecond, func(time.Time) { ticks.Add(1) })
	s.Start(context.Background())

	deadline := time.Now().Add(time.Second)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	at := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	if got := ticks.Load(); got != at {
		t.Fatalf("ticks continued after Stop: %d -> %d", at, got)
	}
}

func TestSchedulerZeroIntervalUsesDefault(t *testing.T) {
	s := New(0, func(time.Time) {})
	if s.interval != DefaultInterval {
		t.Fatalf("interval = %v, want %v", s.interval, DefaultInterval)
	}
}
