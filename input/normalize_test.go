package input

import (
	"testing"
	"time"
)

func TestNormalizeModifierSnapshot(t *testing.T) {
	n := NewNormalizer()
	now := time.Now()

	shiftDown, ok := n.Normalize(Raw{Source: SourceEvdev, Kind: RawPress, Code: 42, Time: now})
	if !ok {
		t.Fatalf("shift press not normalized")
	}
	if shiftDown.Code != CodeShift {
		t.Fatalf("expected Shift, got %q", shiftDown.Code)
	}
	if shiftDown.Modifiers != 0 {
		t.Fatalf("modifier's own press must snapshot the prior set, got %v", shiftDown.Modifiers)
	}

	aDown, _ := n.Normalize(Raw{Source: SourceEvdev, Kind: RawPress, Code: 30, Time: now})
	if aDown.Code != "A" || aDown.Kind != KeyDown {
		t.Fatalf("unexpected event %+v", aDown)
	}
	if !aDown.Modifiers.Has(ModShift) {
		t.Fatalf("A pressed while shift held must carry ModShift")
	}

	shiftUp, _ := n.Normalize(Raw{Source: SourceEvdev, Kind: RawRelease, Code: 42, Time: now})
	if shiftUp.Kind != KeyUp {
		t.Fatalf("expected KeyUp, got %v", shiftUp.Kind)
	}

	bDown, _ := n.Normalize(Raw{Source: SourceEvdev, Kind: RawPress, Code: 48, Time: now})
	if bDown.Modifiers != 0 {
		t.Fatalf("shift released, expected empty modifier set, got %v", bDown.Modifiers)
	}
}

func TestNormalizeCrossBackendIdentity(t *testing.T) {
	tests := []struct {
		name   string
		evdev  uint32
		vk     uint32
		expect Code
	}{
		{"left shift", 42, 0xA0, CodeShift},
		{"right shift", 54, 0xA1, CodeShift},
		{"letter a", 30, 0x41, "A"},
		{"f1", 59, 0x70, "F1"},
		{"space", 57, 0x20, CodeSpace},
		{"left mouse", 0x110, 0x01, CodeMouseLeft},
		{"escape", 1, 0x1B, CodeEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			linux := NewNormalizer()
			windows := NewNormalizer()

			le, _ := linux.Normalize(Raw{Source: SourceEvdev, Kind: RawPress, Code: tt.evdev})
			we, _ := windows.Normalize(Raw{Source: SourceRawInput, Kind: RawPress, Code: tt.vk})

			if le.Code != tt.expect || we.Code != tt.expect {
				t.Fatalf("expected %q, got evdev=%q rawinput=%q", tt.expect, le.Code, we.Code)
			}
		})
	}
}

func TestNormalizeUnmappedCodeStaysVisible(t *testing.T) {
	n := NewNormalizer()

	ev, ok := n.Normalize(Raw{Source: SourceEvdev, Kind: RawPress, Code: 60000})
	if !ok {
		t.Fatalf("unmapped code must still produce an event")
	}
	if !ev.Code.IsUnknown() {
		t.Fatalf("expected unknown code, got %q", ev.Code)
	}
	if GroupFor(ev.Code) != GroupUnknown {
		t.Fatalf("unmapped code must land in the unknown group")
	}
}

func TestNormalizeMouseEvents(t *testing.T) {
	n := NewNormalizer()

	down, _ := n.Normalize(Raw{Source: SourceRawInput, Kind: RawPress, Code: 0x02})
	if down.Kind != MouseDown || down.Code != CodeMouseRight {
		t.Fatalf("unexpected event %+v", down)
	}

	move, ok := n.Normalize(Raw{Source: SourceRawInput, Kind: RawMotion, DX: 4, DY: -2})
	if !ok || move.Kind != MouseMove || move.DX != 4 || move.DY != -2 {
		t.Fatalf("unexpected motion event %+v", move)
	}

	up, _ := n.Normalize(Raw{Source: SourceRawInput, Kind: RawRelease, Code: 0x02})
	if up.Kind != MouseUp {
		t.Fatalf("expected MouseUp, got %v", up.Kind)
	}
}
