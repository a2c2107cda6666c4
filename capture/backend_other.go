//go:build !linux && !windows

package capture

import (
	"context"
	"fmt"
	"runtime"

	"keyglow/input"
)

// unsupportedBackend reports capture as unavailable on platforms without a
// native backend, so the UI can show a degraded-mode notice instead of a
// silently empty overlay.
type unsupportedBackend struct{}

// NewBackend returns the capture backend for this platform.
func NewBackend() Backend {
	return &unsupportedBackend{}
}

func (b *unsupportedBackend) Name() string { return "unsupported" }

func (b *unsupportedBackend) Stream(ctx context.Context, ready func(), emit func(input.Raw)) error {
	return fmt.Errorf("%w: no capture backend for %s", ErrUnavailable, runtime.GOOS)
}
