package systray

import (
	"sync"
	"sync/atomic"
	"testing"
)

type stubStatus struct{ available atomic.Bool }

func (s *stubStatus) Available() bool { return s.available.Load() }

// The tick loop calls RefreshStatus long before (and concurrently with) the
// systray goroutine publishing the menu item. Until the item exists the call
// must be a harmless no-op, and the publication must be safe to race against.
func TestRefreshStatusBeforeReadyIsSafe(t *testing.T) {
	status := &stubStatus{}
	m := NewManager(8766, nil, status)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(flip bool) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if flip {
					status.available.Store(j%2 == 0)
				}
				m.RefreshStatus()
			}
		}(i == 0)
	}
	wg.Wait()

	if m.statusItem.Load() != nil {
		t.Fatalf("status item must stay unset until the tray is ready")
	}
}
