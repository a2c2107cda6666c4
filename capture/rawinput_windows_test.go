//go:build windows

package capture

import (
	"context"
	"errors"
	"testing"
	"time"

	"keyglow/input"
)

// The pump must come back promptly on cancellation even when no input
// arrives, since it parks on the wake event rather than polling.
func TestStreamReturnsOnCancelWithoutInput(t *testing.T) {
	b := NewBackend()
	ctx, cancel := context.WithCancel(context.Background())

	attached := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- b.Stream(ctx, func() { close(attached) }, func(input.Raw) {})
	}()

	select {
	case <-attached:
	case err := <-done:
		if errors.Is(err, ErrUnavailable) {
			t.Skipf("hooks unavailable in this session: %v", err)
		}
		t.Fatalf("Stream ended before attaching: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("backend never attached")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Stream did not return after cancellation")
	}
}

func TestMouseButtonMapping(t *testing.T) {
	tests := []struct {
		wParam    uintptr
		mouseData uint32
		code      uint32
		kind      input.RawKind
	}{
		{wmLButtonDown, 0, vkLButton, input.RawPress},
		{wmLButtonUp, 0, vkLButton, input.RawRelease},
		{wmRButtonDown, 0, vkRButton, input.RawPress},
		{wmMButtonUp, 0, vkMButton, input.RawRelease},
		{wmXButtonDown, 1 << 16, vkXButton1, input.RawPress},
		{wmXButtonUp, 2 << 16, vkXButton2, input.RawRelease},
	}
	for _, tt := range tests {
		code, kind, ok := mouseButton(tt.wParam, tt.mouseData)
		if !ok || code != tt.code || kind != tt.kind {
			t.Errorf("mouseButton(%#x, %#x) = %v, %v, %v; want %v, %v",
				tt.wParam, tt.mouseData, code, kind, ok, tt.code, tt.kind)
		}
	}

	if _, _, ok := mouseButton(wmMouseMove, 0); ok {
		t.Errorf("mouse move is not a button message")
	}
}
