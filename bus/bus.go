// Package bus is the channel fabric between capture backends and the ledger.
package bus

import (
	"sync"
	"sync/atomic"

	"keyglow/input"
)

// DefaultBuffer is the event queue depth. Capture bursts beyond this are
// dropped rather than ever blocking a backend's OS-level callback.
const DefaultBuffer = 256

// Bus carries normalized events from any number of producers to a single
// consumer. A single channel preserves per-producer ordering; ordering
// between two producers is unspecified.
type Bus struct {
	ch      chan input.Event
	dropped atomic.Int64

	closeOnce sync.Once
	closed    chan struct{}
}

// New returns a bus with the given buffer depth; size <= 0 uses DefaultBuffer.
func New(size int) *Bus {
	if size <= 0 {
		size = DefaultBuffer
	}
	return &Bus{
		ch:     make(chan input.Event, size),
		closed: make(chan struct{}),
	}
}

// Publish enqueues an event without blocking. When the queue is full the
// event is dropped and counted; a backend thread must never stall on a slow
// consumer.
func (b *Bus) Publish(ev input.Event) {
	select {
	case <-b.closed:
		return
	default:
	}
	select {
	case b.ch <- ev:
	default:
		b.dropped.Add(1)
	}
}

// Events is the consumer side of the bus.
func (b *Bus) Events() <-chan input.Event {
	return b.ch
}

// Dropped reports how many events were discarded on a full queue.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close stops accepting new events. Pending events remain readable.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.closed)
	})
}
