// Package ledger holds the decaying record of currently-displayed inputs.
package ledger

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"keyglow/input"
)

// Entry is one currently-displayed key or button. Held is true between the
// press and its release; a released entry keeps fading until the decay
// timeout elapses.
type Entry struct {
	Code             input.Code      `json:"code"`
	Group            input.Group     `json:"group"`
	ModifiersAtPress input.Modifiers `json:"modifiers"`
	FirstSeen        time.Time       `json:"firstSeen"`
	LastSeen         time.Time       `json:"lastSeen"`
	Held             bool            `json:"held"`
}

// Ledger owns the active-input entries. All mutation serializes through a
// single mutex; after every mutation a rebuilt view is published through an
// atomic pointer so readers never contend with writers.
type Ledger struct {
	mu      sync.Mutex
	entries map[input.Code]*Entry
	view    atomic.Pointer[[]Entry]
}

// New returns an empty ledger with a valid (empty) published view.
func New() *Ledger {
	l := &Ledger{entries: make(map[input.Code]*Entry)}
	empty := make([]Entry, 0)
	l.view.Store(&empty)
	return l
}

// Apply ingests one normalized event. KeyDown/MouseDown create or refresh
// an entry, KeyUp/MouseUp mark it released; at most one entry exists per
// code. MouseMove does not create entries. It reports whether a new entry
// was created, which distinguishes a fresh press from an auto-repeat.
func (l *Ledger) Apply(ev input.Event) bool {
	switch ev.Kind {
	case input.KeyDown, input.MouseDown:
		l.mu.Lock()
		e, ok := l.entries[ev.Code]
		if ok {
			// Repeat or re-press before timeout: refresh LastSeen only,
			// FirstSeen keeps the original press so held-duration displays
			// stay accurate.
			e.LastSeen = ev.Time
			e.Held = true
			e.ModifiersAtPress = ev.Modifiers
		} else {
			l.entries[ev.Code] = &Entry{
				Code:             ev.Code,
				Group:            input.GroupFor(ev.Code),
				ModifiersAtPress: ev.Modifiers,
				FirstSeen:        ev.Time,
				LastSeen:         ev.Time,
				Held:             true,
			}
		}
		l.publishLocked()
		l.mu.Unlock()
		return !ok

	case input.KeyUp, input.MouseUp:
		l.mu.Lock()
		if e, ok := l.entries[ev.Code]; ok {
			e.Held = false
			e.LastSeen = ev.Time
			l.publishLocked()
		}
		l.mu.Unlock()
	}
	return false
}

// Sweep removes entries whose decay timeout elapsed and that are no longer
// held. It returns how many entries were evicted. The timeout is read from
// whatever config snapshot is current at tick time, so decay timing changes
// live without touching existing entries.
func (l *Ledger) Sweep(now time.Time, timeout time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for code, e := range l.entries {
		if !e.Held && now.Sub(e.LastSeen) > timeout {
			delete(l.entries, code)
			removed++
		}
	}
	if removed > 0 {
		l.publishLocked()
	}
	return removed
}

// View returns the most recently published entries, ordered by first press.
// It never blocks and is safe to call at any frequency from any goroutine;
// the slice is immutable once published.
func (l *Ledger) View() []Entry {
	return *l.view.Load()
}

// Len reports the current entry count.
func (l *Ledger) Len() int {
	return len(l.View())
}

func (l *Ledger) publishLocked() {
	view := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		view = append(view, *e)
	}
	sort.Slice(view, func(i, j int) bool {
		if view[i].FirstSeen.Equal(view[j].FirstSeen) {
			return view[i].Code < view[j].Code
		}
		return view[i].FirstSeen.Before(view[j].FirstSeen)
	})
	l.view.Store(&view)
}
