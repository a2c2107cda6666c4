package render

import (
	"path/filepath"
	"testing"
	"time"

	"keyglow/config"
	"keyglow/input"
	"keyglow/ledger"
)

type stubCapture struct{ available bool }

func (s *stubCapture) Available() bool { return s.available }

func newStore(t *testing.T) *config.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	store, err := config.NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshotJoinsSources(t *testing.T) {
	l := ledger.New()
	store := newStore(t)
	bridge := NewBridge(l, store, &stubCapture{available: true})

	now := time.Now()
	l.Apply(input.Event{Kind: input.KeyDown, Code: "A", Time: now})
	l.Apply(input.Event{Kind: input.KeyDown, Code: input.CodeShift, Time: now})

	frame := bridge.Snapshot()
	if len(frame.Entries) != 2 {
		t.Fatalf("frame entries = %d, want 2", len(frame.Entries))
	}
	if frame.Config == nil {
		t.Fatalf("frame carries no config snapshot")
	}
	if !frame.CaptureActive {
		t.Fatalf("frame must report capture active")
	}
	if frame.GeneratedAt.IsZero() {
		t.Fatalf("frame missing timestamp")
	}
}

func TestSnapshotValidWhenCaptureUnavailable(t *testing.T) {
	l := ledger.New()
	store := newStore(t)
	bridge := NewBridge(l, store, &stubCapture{available: false})

	frame := bridge.Snapshot()
	if frame.CaptureActive {
		t.Fatalf("capture must read as inactive")
	}
	if frame.Entries == nil {
		t.Fatalf("entries must be an empty slice, not nil")
	}
	if frame.Config == nil {
		t.Fatalf("config snapshot must still be present")
	}
}

// Frames are immutable snapshots: mutating the ledger after the fact must
// not change a frame already handed out.
func TestSnapshotIsStable(t *testing.T) {
	l := ledger.New()
	store := newStore(t)
	bridge := NewBridge(l, store, &stubCapture{available: true})

	now := time.Now()
	l.Apply(input.Event{Kind: input.KeyDown, Code: "A", Time: now})
	frame := bridge.Snapshot()

	l.Apply(input.Event{Kind: input.KeyDown, Code: "B", Time: now})
	l.Apply(input.Event{Kind: input.KeyDown, Code: "C", Time: now})

	if len(frame.Entries) != 1 {
		t.Fatalf("earlier frame changed under mutation: %d entries", len(frame.Entries))
	}
	if frame.Entries[0].Code != "A" {
		t.Fatalf("earlier frame entry = %q, want A", frame.Entries[0].Code)
	}
}
