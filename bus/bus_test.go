package bus

import (
	"testing"
	"time"

	"keyglow/input"
)

func TestPublishPreservesOrder(t *testing.T) {
	b := New(16)
	codes := []input.Code{"A", "B", "C", "D"}
	for _, c := range codes {
		b.Publish(input.Event{Kind: input.KeyDown, Code: c})
	}

	for _, want := range codes {
		select {
		case ev := <-b.Events():
			if ev.Code != want {
				t.Fatalf("out of order: got %q, want %q", ev.Code, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("event %q never arrived", want)
		}
	}
}

func TestPublishNeverBlocksWhenFull(t *testing.T) {
	b := New(2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(input.Event{Kind: input.KeyDown, Code: "A"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked on a full queue")
	}

	if got := b.Dropped(); got != 8 {
		t.Fatalf("expected 8 dropped events, got %d", got)
	}
}

func TestPublishAfterCloseIsDiscarded(t *testing.T) {
	b := New(4)
	b.Publish(input.Event{Kind: input.KeyDown, Code: "A"})
	b.Close()
	b.Publish(input.Event{Kind: input.KeyDown, Code: "B"})

	select {
	case ev := <-b.Events():
		if ev.Code != "A" {
			t.Fatalf("expected the pre-close event, got %q", ev.Code)
		}
	case <-time.After(time.Second):
		t.Fatalf("pre-close event lost")
	}

	select {
	case ev := <-b.Events():
		t.Fatalf("unexpected event after close: %q", ev.Code)
	default:
	}
}
