package config

import (
	"fmt"
	"strconv"
	"time"

	"keyglow/input"
)

// Color is a parsed #RRGGBB value.
type Color struct {
	R, G, B uint8
}

// White is the fallback for malformed color strings.
var White = Color{255, 255, 255}

// ParseColor converts a "#RRGGBB" string. Malformed input falls back to
// white rather than failing the whole config.
func ParseColor(s string) (Color, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return White, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return White, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Hex renders the color back to "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalJSON writes the color as its hex string, which is what the overlay
// page feeds straight into CSS.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.Hex())), nil
}

// Style is the resolved per-group rendering style.
type Style struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	IconSize float64 `json:"iconSize"`
	TextSize float64 `json:"textSize"`
	BgColor  Color   `json:"bgColor"`
	FgColor  Color   `json:"fgColor"`
}

// Window is the resolved overlay window placement.
type Window struct {
	Monitor  int        `json:"monitor"`
	Position [2]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
}

// Snapshot is one immutable, versioned configuration in effect at a point
// in time. Exactly one snapshot is current at any instant; the store swaps
// the whole value atomically, never mutates it in place.
type Snapshot struct {
	Version  uint64                `json:"version"`
	Timeout  time.Duration         `json:"-"`
	Window   Window                `json:"window"`
	WebPort  int                   `json:"-"`
	Styles   map[input.Group]Style `json:"styles"`
	LoadedAt time.Time             `json:"loadedAt"`
}

// TimeoutMS exposes the decay timeout the way the file spells it.
func (s *Snapshot) TimeoutMS() int64 {
	return s.Timeout.Milliseconds()
}

// StyleFor returns the style for a group, falling back to the unknown
// group's style when a group is missing from the file.
func (s *Snapshot) StyleFor(g input.Group) Style {
	if st, ok := s.Styles[g]; ok {
		return st
	}
	return s.Styles[input.GroupUnknown]
}

// buildSnapshot resolves a decoded file into an immutable snapshot. Groups
// missing from the file keep their defaults; unrecognized group names are
// ignored.
func buildSnapshot(f *File, version uint64, now time.Time) *Snapshot {
	styles := make(map[input.Group]Style, len(input.Groups))
	defaults := defaultFile()

	for _, g := range input.Groups {
		sc, ok := f.Styles[string(g)]
		if !ok {
			sc = defaults.Styles[string(g)]
		}
		bg, _ := ParseColor(sc.BgColor)
		fg, _ := ParseColor(sc.FgColor)
		styles[g] = Style{
			Width:    sc.Width,
			Height:   sc.Height,
			IconSize: sc.IconSize,
			TextSize: sc.TextSize,
			BgColor:  bg,
			FgColor:  fg,
		}
	}

	timeout := time.Duration(f.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = time.Duration(defaults.TimeoutMS) * time.Millisecond
	}

	port := f.Web.Port
	if port <= 0 {
		port = defaults.Web.Port
	}

	return &Snapshot{
		Version: version,
		Timeout: timeout,
		Window: Window{
			Monitor:  f.Window.Monitor,
			Position: f.Window.Position,
			Size:     f.Window.Size,
		},
		WebPort:  port,
		Styles:   styles,
		LoadedAt: now,
	}
}
