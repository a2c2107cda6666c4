// Package render assembles read-only frames for display layers.
package render

import (
	"time"

	"keyglow/config"
	"keyglow/input"
	"keyglow/ledger"
)

// CaptureStatus is the subset of the capture supervisor a frame needs.
type CaptureStatus interface {
	Available() bool
}

// EntryView is a ledger entry plus its resolved display label.
type EntryView struct {
	ledger.Entry
	Label string `json:"label"`
}

// Frame is one complete, self-consistent view of the overlay state. Every
// field is a snapshot; the renderer may hold a frame as long as it likes
// without blocking writers.
type Frame struct {
	Entries       []EntryView      `json:"entries"`
	Config        *config.Snapshot `json:"config"`
	TimeoutMS     int64            `json:"timeoutMs"`
	CaptureActive bool             `json:"captureActive"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

// Bridge joins the ledger, the config store and the capture status into
// frames. It holds no state of its own and is safe for concurrent use at
// any call frequency.
type Bridge struct {
	ledger  *ledger.Ledger
	store   *config.Store
	capture CaptureStatus
	layout  input.Layout
}

// BridgeOption adjusts frame assembly.
type BridgeOption func(*Bridge)

// WithLayout sets the keyboard layout used for shifted labels.
func WithLayout(l input.Layout) BridgeOption {
	return func(b *Bridge) { b.layout = l }
}

// NewBridge wires the frame sources together.
func NewBridge(l *ledger.Ledger, store *config.Store, capture CaptureStatus, opts ...BridgeOption) *Bridge {
	b := &Bridge{ledger: l, store: store, capture: capture, layout: input.LayoutUS}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Snapshot produces a frame from the current published views. When capture
// is unavailable the frame is still valid, just with CaptureActive false
// and whatever entries remain to decay.
func (b *Bridge) Snapshot() Frame {
	cfg := b.store.Current()
	entries := b.ledger.View()

	views := make([]EntryView, len(entries))
	for i, e := range entries {
		views[i] = EntryView{
			Entry: e,
			Label: input.Label(e.Code, e.ModifiersAtPress, b.layout),
		}
	}

	return Frame{
		Entries:       views,
		Config:        cfg,
		TimeoutMS:     cfg.TimeoutMS(),
		CaptureActive: b.capture.Available(),
		GeneratedAt:   time.Now(),
	}
}
