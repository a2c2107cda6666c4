package input

// Normalizer turns backend-native raw events into normalized events. Its
// only state is the set of currently-held modifiers, updated on every
// modifier press and release and stamped onto subsequent events.
//
// A Normalizer is not safe for concurrent use; each consumer goroutine owns
// its own instance.
type Normalizer struct {
	held Modifiers
}

// NewNormalizer returns a normalizer with no modifiers held.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Held returns the modifier set as of the last processed event.
func (n *Normalizer) Held() Modifiers {
	return n.held
}

// Normalize converts one raw event. ok is false only for raw kinds the
// model has no representation for; unmapped codes still produce an event
// with an Unknown code so the UI can flash an unknown-key indicator.
func (n *Normalizer) Normalize(raw Raw) (Event, bool) {
	if raw.Kind == RawMotion {
		return Event{
			Kind:      MouseMove,
			Modifiers: n.held,
			Time:      raw.Time,
			DX:        raw.DX,
			DY:        raw.DY,
		}, true
	}

	code, ok := Translate(raw.Source, raw.Code)
	if !ok {
		code = UnknownCode(raw.Code)
	}

	ev := Event{Code: code, Time: raw.Time}

	// A modifier's own press reports the set held before it; everything
	// else reports the set in effect at event time.
	mod := code.Modifier()
	switch raw.Kind {
	case RawPress:
		ev.Modifiers = n.held
		n.held |= mod
		if code.IsMouse() {
			ev.Kind = MouseDown
		} else {
			ev.Kind = KeyDown
		}
	case RawRelease:
		n.held &^= mod
		ev.Modifiers = n.held
		if code.IsMouse() {
			ev.Kind = MouseUp
		} else {
			ev.Kind = KeyUp
		}
	default:
		return Event{}, false
	}

	return ev, true
}
