package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceWindow collapses bursts of file-change notifications into one
// reload. Editors commonly fire several writes per save.
const DebounceWindow = 200 * time.Millisecond

// Store holds the current Snapshot behind an atomic pointer and watches the
// backing file for changes. One writer (the watcher goroutine), any number
// of lock-free readers.
type Store struct {
	path     string
	cur      atomic.Pointer[Snapshot]
	version  atomic.Uint64
	reloads  atomic.Int64
	failures atomic.Int64

	debounce time.Duration
	now      func() time.Time

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// StoreOption adjusts store construction.
type StoreOption func(*Store)

// WithDebounce overrides the debounce window; tests use a short one.
func WithDebounce(d time.Duration) StoreOption {
	return func(s *Store) { s.debounce = d }
}

// WithClock overrides the snapshot timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore loads the file at path (writing defaults if absent) and
// publishes the first snapshot. The watcher is not started; call Watch.
func NewStore(path string, opts ...StoreOption) (*Store, error) {
	s := &Store{
		path:     path,
		debounce: DebounceWindow,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.cur.Store(buildSnapshot(f, s.version.Add(1), s.now()))
	return s, nil
}

// Current returns the snapshot in effect. It never blocks and never returns
// nil; readers during a reload see either the old or the new snapshot in
// full, never a mix.
func (s *Store) Current() *Snapshot {
	return s.cur.Load()
}

// Path returns the watched file path.
func (s *Store) Path() string {
	return s.path
}

// Reloads reports how many snapshots have been published after the initial
// load.
func (s *Store) Reloads() int64 {
	return s.reloads.Load()
}

// Failures reports how many reload attempts were rejected for parse errors.
func (s *Store) Failures() int64 {
	return s.failures.Load()
}

// Reload parses the file and, on success, atomically publishes a new
// snapshot. On failure the previous snapshot stays authoritative and the
// error is returned for logging.
func (s *Store) Reload() error {
	f, err := parse(s.path)
	if err != nil {
		s.failures.Add(1)
		return err
	}
	s.cur.Store(buildSnapshot(f, s.version.Add(1), s.now()))
	s.reloads.Add(1)
	return nil
}

// Watch starts the file watcher goroutine. Change notifications inside one
// debounce window collapse into a single reload. A malformed file is logged
// and the previous snapshot remains live.
func (s *Store) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}

	// Watch the directory, not the file: editors replace config files via
	// rename, which drops a watch placed on the file itself.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}

	s.watcher = w
	s.wg.Add(1)
	go s.run()
	return nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (s *Store) Close() error {
	s.once.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Store) run() {
	defer s.wg.Done()

	var pending <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-s.done:
			return

		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(s.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if err := s.Reload(); err != nil {
				slog.Error("Config reload failed, keeping previous snapshot", "error", err)
			} else {
				cur := s.Current()
				slog.Info("Config reloaded", "version", cur.Version, "timeout_ms", cur.TimeoutMS())
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Config watcher error", "error", err)
		}
	}
}
