package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"keyglow/bus"
	"keyglow/capture"
	"keyglow/config"
	"keyglow/input"
	"keyglow/ledger"
	"keyglow/render"
	"keyglow/storage"
	"keyglow/systray"
	"keyglow/tick"
	"keyglow/web"
)

// flushInterval is how often buffered press counts reach the database.
const flushInterval = 30 * time.Second

// Agent wires capture, normalization, the ledger and the display surfaces
// together and owns their lifecycles.
type Agent struct {
	store      *config.Store
	db         *storage.DB
	recorder   *storage.Recorder
	bus        *bus.Bus
	ledger     *ledger.Ledger
	supervisor *capture.Supervisor
	bridge     *render.Bridge
	web        *web.Server
	tray       *systray.Manager
	sweeper    *tick.Scheduler
	flusher    *tick.Scheduler
}

// NewAgent creates a new agent instance
func NewAgent(configPath string) (*Agent, error) {
	store, err := config.NewStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := store.Watch(); err != nil {
		slog.Warn("Config watching unavailable, edits need a restart", "error", err)
	}

	db, err := storage.Open(filepath.Dir(configPath))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &Agent{
		store:    store,
		db:       db,
		recorder: storage.NewRecorder(db),
		bus:      bus.New(bus.DefaultBuffer),
		ledger:   ledger.New(),
	}

	// The backend may emit from several goroutines (one per evdev device),
	// but modifier tracking is stateful, so normalization serializes here.
	var mu sync.Mutex
	norm := input.NewNormalizer()
	emit := func(raw input.Raw) {
		mu.Lock()
		ev, ok := norm.Normalize(raw)
		mu.Unlock()
		if ok {
			a.bus.Publish(ev)
		}
	}

	a.supervisor = capture.NewSupervisor(capture.NewBackend(), emit)
	a.bridge = render.NewBridge(a.ledger, a.store, a.supervisor)

	port := store.Current().WebPort
	a.web = web.NewServer(db, store, a.bridge, port)
	a.tray = systray.NewManager(port, nil, a.supervisor)

	a.sweeper = tick.New(tick.DefaultInterval, func(now time.Time) {
		a.ledger.Sweep(now, a.store.Current().Timeout)
		a.tray.RefreshStatus()
	})
	a.flusher = tick.New(flushInterval, func(time.Time) {
		if err := a.recorder.Flush(); err != nil {
			slog.Warn("Failed to flush press counts", "error", err)
		}
	})

	return a, nil
}

// Run starts everything and blocks until the context is canceled or the
// user quits from the tray.
func (a *Agent) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.supervisor.Start(ctx)
	a.sweeper.Start(ctx)
	a.flusher.Start(ctx)

	// Event consumer: the only writer to the ledger and the recorder.
	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		apply := func(ev input.Event) {
			if a.ledger.Apply(ev) {
				a.recorder.Record(input.GroupFor(ev.Code))
			}
		}
		for {
			select {
			case ev := <-a.bus.Events():
				apply(ev)
			case <-ctx.Done():
				// Drain whatever the backend managed to publish before the
				// supervisor stopped it.
				for {
					select {
					case ev := <-a.bus.Events():
						apply(ev)
					default:
						return
					}
				}
			}
		}
	}()

	go func() {
		if err := a.web.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Web server failed", "error", err)
		}
	}()

	go a.tray.Run()

	slog.Info("keyglow started", "config", a.store.Path())

	select {
	case <-ctx.Done():
	case <-a.tray.WaitForQuit():
	}
	cancel()

	return a.shutdown(consumed)
}

// shutdown tears the pipeline down back-to-front so nothing publishes into
// a closed component.
func (a *Agent) shutdown(consumed <-chan struct{}) error {
	a.supervisor.Stop()
	a.bus.Close()
	<-consumed
	a.sweeper.Stop()
	a.flusher.Stop()

	if dropped := a.bus.Dropped(); dropped > 0 {
		slog.Warn("Events dropped under pressure during this session", "count", dropped)
	}

	var errs []error
	if err := a.recorder.Flush(); err != nil {
		errs = append(errs, err)
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, err)
	}
	a.tray.Stop()
	return errors.Join(errs...)
}
