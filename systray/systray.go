// Package systray owns the tray icon, the quickest way to check capture
// health and reach the overlay without a terminal.
package systray

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"sync/atomic"

	"github.com/getlantern/systray"
)

// Status is the subset of capture state the tray displays.
type Status interface {
	Available() bool
}

// Manager manages the system tray icon and menu
type Manager struct {
	webPort  int
	iconData []byte
	status   Status
	quit     chan struct{}

	// Written by onReady on the systray goroutine, read by RefreshStatus
	// from the tick goroutine.
	statusItem atomic.Pointer[systray.MenuItem]
	lastShown  atomic.Int32 // -1 unset, 0 unavailable, 1 active
}

// NewManager creates a new systray manager
func NewManager(webPort int, iconData []byte, status Status) *Manager {
	m := &Manager{
		webPort:  webPort,
		iconData: iconData,
		status:   status,
		quit:     make(chan struct{}),
	}
	m.lastShown.Store(-1)
	return m
}

// Run starts the system tray (blocking call)
func (m *Manager) Run() {
	systray.Run(m.onReady, m.onExit)
}

// Stop stops the system tray
func (m *Manager) Stop() {
	systray.Quit()
}

// WaitForQuit returns a channel that is closed when the user clicks Quit
func (m *Manager) WaitForQuit() <-chan struct{} {
	return m.quit
}

// RefreshStatus updates the capture line in the menu. Called from the tick
// loop, so it only touches the menu when the state actually changed.
func (m *Manager) RefreshStatus() {
	item := m.statusItem.Load()
	if item == nil {
		return
	}
	state := int32(0)
	if m.status.Available() {
		state = 1
	}
	if m.lastShown.Swap(state) == state {
		return
	}
	if state == 1 {
		item.SetTitle("Capture: active")
	} else {
		item.SetTitle("Capture: unavailable")
	}
}

// onReady is called when the systray is ready
func (m *Manager) onReady() {
	if len(m.iconData) > 0 {
		systray.SetIcon(m.iconData)
	}

	systray.SetTitle("keyglow")
	systray.SetTooltip("keyglow - Input Overlay")

	statusItem := systray.AddMenuItem("Capture: starting", "Current capture state")
	statusItem.Disable()
	m.statusItem.Store(statusItem)
	mOpenOverlay := systray.AddMenuItem("Open Overlay", "Open the overlay page in a browser")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit keyglow")

	m.RefreshStatus()

	go func() {
		for {
			select {
			case <-mOpenOverlay.ClickedCh:
				m.openOverlay()
			case <-mQuit.ClickedCh:
				slog.Info("User requested quit from system tray")
				close(m.quit)
				systray.Quit()
				return
			}
		}
	}()
}

// onExit is called when the systray is exiting
func (m *Manager) onExit() {
	slog.Info("System tray exited")
}

// openOverlay opens the overlay page in the default browser
func (m *Manager) openOverlay() {
	url := fmt.Sprintf("http://localhost:%d", m.webPort)
	slog.Info("Opening overlay", "url", url)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		slog.Error("Unsupported platform for opening browser", "platform", runtime.GOOS)
		return
	}

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to open overlay", "error", err)
	}
}
