// Package capture wraps the platform-native global input sources and owns
// their attach/reattach lifecycle.
package capture

import (
	"context"
	"errors"

	"keyglow/input"
)

// ErrUnavailable reports that global capture cannot be attached: missing
// permissions, a compositor that denies global listening, or no readable
// devices. It is a status, not a fatal condition; the supervisor keeps
// retrying in the background.
var ErrUnavailable = errors.New("global input capture unavailable")

// Backend is one platform-specific source of raw global input events.
//
// Stream blocks: it attaches to the native source, calls ready once the
// attach succeeded, then emits raw events until ctx is canceled or the
// source fails. A start-time attach failure returns an error wrapping
// ErrUnavailable without calling ready. Backends only observe input; they
// never inject or suppress it.
type Backend interface {
	Name() string
	Stream(ctx context.Context, ready func(), emit func(input.Raw)) error
}
