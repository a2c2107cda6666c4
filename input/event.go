package input

import "time"

// Kind classifies a normalized input event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	MouseDown
	MouseUp
	MouseMove
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case MouseDown:
		return "mouse_down"
	case MouseUp:
		return "mouse_up"
	case MouseMove:
		return "mouse_move"
	default:
		return "unknown"
	}
}

// Modifiers is the set of modifier keys held at event time.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether all modifiers in m are set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod == mod
}

func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "+"
		}
		s += name
	}
	if m.Has(ModCtrl) {
		add("Ctrl")
	}
	if m.Has(ModAlt) {
		add("Alt")
	}
	if m.Has(ModShift) {
		add("Shift")
	}
	if m.Has(ModMeta) {
		add("Meta")
	}
	return s
}

// Event is a single normalized input event. It is a value type: constructed
// once by the normalizer, consumed once by the ledger, never mutated.
type Event struct {
	Kind      Kind
	Code      Code
	Modifiers Modifiers
	Time      time.Time

	// Pointer delta, set only for MouseMove.
	DX, DY int32
}

// Source identifies which platform backend produced a raw event, so the
// normalizer can select the matching code table.
type Source string

const (
	SourceEvdev    Source = "evdev"
	SourceRawInput Source = "rawinput"
)

// RawKind is the press/release/motion flag a backend attaches to raw events.
type RawKind int

const (
	RawPress RawKind = iota
	RawRelease
	RawMotion
)

// Raw is one unprocessed event as emitted by a platform capture backend.
// Code is backend-native (evdev code or Windows virtual-key code).
type Raw struct {
	Source Source
	Kind   RawKind
	Code   uint32
	DX, DY int32
	Time   time.Time
}
