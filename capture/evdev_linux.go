//go:build linux

package capture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"keyglow/input"
)

// rescanInterval is how often the backend looks for hot-plugged devices.
const rescanInterval = 2 * time.Second

// evdev key event values
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeat   = 2
)

// evdevBackend reads /dev/input event devices directly, so it works on any
// compositor, Wayland included, as long as the user can read the devices
// (typically membership in the `input` group).
type evdevBackend struct{}

// NewBackend returns the evdev capture backend for this platform.
func NewBackend() Backend {
	return &evdevBackend{}
}

func (b *evdevBackend) Name() string { return string(input.SourceEvdev) }

func (b *evdevBackend) Stream(ctx context.Context, ready func(), emit func(input.Raw)) error {
	var (
		mu      sync.Mutex
		open    = map[string]*evdev.InputDevice{}
		readers sync.WaitGroup
		// closed when every reader goroutine has died, i.e. all devices
		// were unplugged or erred out
		lost = make(chan struct{})
	)

	closeAll := func() {
		mu.Lock()
		defer mu.Unlock()
		for path, dev := range open {
			dev.Close()
			delete(open, path)
		}
	}

	attach := func() int {
		paths, err := evdev.ListDevicePaths()
		if err != nil {
			return 0
		}
		mu.Lock()
		defer mu.Unlock()
		for _, p := range paths {
			if _, ok := open[p.Path]; ok {
				continue
			}
			dev, err := evdev.OpenWithFlags(p.Path, os.O_RDONLY)
			if err != nil {
				continue
			}
			if !emitsKeys(dev) {
				dev.Close()
				continue
			}
			open[p.Path] = dev
			readers.Add(1)
			go func(path string, dev *evdev.InputDevice) {
				defer readers.Done()
				b.readLoop(dev, emit)
				mu.Lock()
				delete(open, path)
				remaining := len(open)
				mu.Unlock()
				if remaining == 0 {
					select {
					case <-lost:
					default:
						close(lost)
					}
				}
			}(p.Path, dev)
		}
		return len(open)
	}

	if attach() == 0 {
		return fmt.Errorf("%w: no readable input devices under /dev/input (check `input` group membership)", ErrUnavailable)
	}
	ready()

	// Hot-plug: rescan periodically so newly connected keyboards and mice
	// join the session without a restart.
	ticker := time.NewTicker(rescanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			closeAll()
			readers.Wait()
			return ctx.Err()
		case <-lost:
			readers.Wait()
			return fmt.Errorf("all input devices disappeared")
		case <-ticker.C:
			attach()
		}
	}
}

// readLoop pumps one device until it errors (unplug, revoked access) or is
// closed from the outside.
func (b *evdevBackend) readLoop(dev *evdev.InputDevice, emit func(input.Raw)) {
	path := dev.Path()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			slog.Debug("evdev device read ended", "path", path, "error", err)
			dev.Close()
			return
		}

		now := eventTime(ev)
		switch ev.Type {
		case evdev.EV_KEY:
			raw := input.Raw{
				Source: input.SourceEvdev,
				Code:   uint32(ev.Code),
				Time:   now,
			}
			switch ev.Value {
			case keyPressed, keyRepeat:
				raw.Kind = input.RawPress
			case keyReleased:
				raw.Kind = input.RawRelease
			default:
				continue
			}
			emit(raw)

		case evdev.EV_REL:
			raw := input.Raw{
				Source: input.SourceEvdev,
				Kind:   input.RawMotion,
				Time:   now,
			}
			switch ev.Code {
			case evdev.REL_X:
				raw.DX = ev.Value
			case evdev.REL_Y:
				raw.DY = ev.Value
			default:
				continue
			}
			emit(raw)
		}
	}
}

// eventTime converts the kernel timestamp the event was captured at. A zero
// timeval falls back to the read time.
func eventTime(ev *evdev.InputEvent) time.Time {
	if ev.Time.Sec == 0 && ev.Time.Usec == 0 {
		return time.Now()
	}
	return time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000)
}

// emitsKeys reports whether the device produces key or button events.
func emitsKeys(dev *evdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if t == evdev.EV_KEY {
			return true
		}
	}
	return false
}
