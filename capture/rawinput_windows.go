//go:build windows

package capture

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"keyglow/input"
)

var (
	user32                      = windows.NewLazySystemDLL("user32.dll")
	setWindowsHookEx            = user32.NewProc("SetWindowsHookExW")
	callNextHookEx              = user32.NewProc("CallNextHookEx")
	unhookWindowsHookEx         = user32.NewProc("UnhookWindowsHookEx")
	peekMessage                 = user32.NewProc("PeekMessageW")
	msgWaitForMultipleObjectsEx = user32.NewProc("MsgWaitForMultipleObjectsEx")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeydown    = 0x0100
	wmKeyup      = 0x0101
	wmSyskeydown = 0x0104
	wmSyskeyup   = 0x0105

	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	pmRemove = 0x0001

	qsAllInput         = 0x04FF
	mwmoInputAvailable = 0x0004
	waitObject0        = 0
	infinite           = 0xFFFFFFFF

	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06
)

type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msllhookstruct struct {
	pt          struct{ x, y int32 }
	mouseData   uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// rawInputBackend installs low-level keyboard and mouse hooks and pumps the
// thread message queue the hooks require. LL hooks survive session
// lock/unlock, so a single attach normally lasts the whole session.
type rawInputBackend struct{}

// NewBackend returns the raw-input-message capture backend for this platform.
func NewBackend() Backend {
	return &rawInputBackend{}
}

func (b *rawInputBackend) Name() string { return string(input.SourceRawInput) }

func (b *rawInputBackend) Stream(ctx context.Context, ready func(), emit func(input.Raw)) error {
	// Hooks deliver callbacks on the installing thread's message queue, so
	// the whole session is pinned to one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var lastX, lastY int32
	haveLast := false

	kbProc := func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			kb := (*kbdllhookstruct)(unsafe.Pointer(lParam))
			raw := input.Raw{
				Source: input.SourceRawInput,
				Code:   kb.vkCode,
				Time:   time.Now(),
			}
			switch wParam {
			case wmKeydown, wmSyskeydown:
				raw.Kind = input.RawPress
				emit(raw)
			case wmKeyup, wmSyskeyup:
				raw.Kind = input.RawRelease
				emit(raw)
			}
		}
		r, _, _ := callNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return r
	}

	mouseProc := func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			ms := (*msllhookstruct)(unsafe.Pointer(lParam))
			now := time.Now()
			switch wParam {
			case wmMouseMove:
				if haveLast {
					emit(input.Raw{
						Source: input.SourceRawInput,
						Kind:   input.RawMotion,
						DX:     ms.pt.x - lastX,
						DY:     ms.pt.y - lastY,
						Time:   now,
					})
				}
				lastX, lastY = ms.pt.x, ms.pt.y
				haveLast = true
			default:
				if code, kind, ok := mouseButton(wParam, ms.mouseData); ok {
					emit(input.Raw{
						Source: input.SourceRawInput,
						Kind:   kind,
						Code:   code,
						Time:   now,
					})
				}
			}
		}
		r, _, _ := callNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return r
	}

	kbHook, _, kbErr := setWindowsHookEx.Call(whKeyboardLL, windows.NewCallback(kbProc), 0, 0)
	if kbHook == 0 {
		return fmt.Errorf("%w: SetWindowsHookEx(WH_KEYBOARD_LL): %v", ErrUnavailable, kbErr)
	}
	defer unhookWindowsHookEx.Call(kbHook)

	mouseHook, _, mouseErr := setWindowsHookEx.Call(whMouseLL, windows.NewCallback(mouseProc), 0, 0)
	if mouseHook == 0 {
		return fmt.Errorf("%w: SetWindowsHookEx(WH_MOUSE_LL): %v", ErrUnavailable, mouseErr)
	}
	defer unhookWindowsHookEx.Call(mouseHook)

	ready()

	// Cancellation wake-up: a manual event the wait below parks on alongside
	// the message queue, signaled when the session context ends.
	wake, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		return fmt.Errorf("create wake event: %v", err)
	}
	defer windows.CloseHandle(wake)
	go func() {
		<-ctx.Done()
		windows.SetEvent(wake)
	}()

	// Message pump. Hook callbacks fire from inside PeekMessage; between
	// messages the thread blocks in MsgWaitForMultipleObjectsEx rather than
	// polling.
	var m msg
	for {
		for {
			r, _, _ := peekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
			if r == 0 {
				break
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		r, _, _ := msgWaitForMultipleObjectsEx.Call(
			1, uintptr(unsafe.Pointer(&wake)), infinite, qsAllInput, mwmoInputAvailable)
		if r == waitObject0 {
			// Wake event: the session was canceled.
			return ctx.Err()
		}
	}
}

// mouseButton maps a WM_*BUTTON* message to the virtual-key code of the
// button it concerns.
func mouseButton(wParam uintptr, mouseData uint32) (uint32, input.RawKind, bool) {
	switch wParam {
	case wmLButtonDown:
		return vkLButton, input.RawPress, true
	case wmLButtonUp:
		return vkLButton, input.RawRelease, true
	case wmRButtonDown:
		return vkRButton, input.RawPress, true
	case wmRButtonUp:
		return vkRButton, input.RawRelease, true
	case wmMButtonDown:
		return vkMButton, input.RawPress, true
	case wmMButtonUp:
		return vkMButton, input.RawRelease, true
	case wmXButtonDown, wmXButtonUp:
		vk := uint32(vkXButton1)
		if mouseData>>16 == 2 {
			vk = vkXButton2
		}
		kind := input.RawPress
		if wParam == wmXButtonUp {
			kind = input.RawRelease
		}
		return vk, kind, true
	default:
		return 0, 0, false
	}
}
