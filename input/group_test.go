package input

import "testing"

func TestGroupFor(t *testing.T) {
	tests := []struct {
		code  Code
		group Group
	}{
		{"A", GroupNormal},
		{"7", GroupNumeric},
		{CodeShift, GroupModifier},
		{CodeCtrl, GroupModifier},
		{CodeCapsLock, GroupModifier},
		{CodeBackspace, GroupEditor},
		{CodeEnter, GroupEditor},
		{CodeUp, GroupNavigation},
		{CodePageDown, GroupScrollable},
		{CodeScrollLock, GroupScrollable},
		{CodeComma, GroupSymbol},
		{CodeEscape, GroupEscape},
		{CodeMeta, GroupEscape},
		{UnknownCode(60000), GroupUnknown},
		{"F1", GroupFunction},
		{"F24", GroupFunction},
		{CodeVolumeUp, GroupAltFunction},
		{CodeMouseLeft, GroupMouse},
		{CodeSpace, GroupSpace},
	}

	for _, tt := range tests {
		if got := GroupFor(tt.code); got != tt.group {
			t.Errorf("GroupFor(%q) = %q, want %q", tt.code, got, tt.group)
		}
	}
}

func TestFunctionNumberBounds(t *testing.T) {
	if n := Code("F25").FunctionNumber(); n != 0 {
		t.Fatalf("F25 is out of range, got %d", n)
	}
	if n := Code("F0").FunctionNumber(); n != 0 {
		t.Fatalf("F0 is out of range, got %d", n)
	}
	if n := Code("Foo").FunctionNumber(); n != 0 {
		t.Fatalf("Foo is not a function key, got %d", n)
	}
}

func TestLabelShiftResolution(t *testing.T) {
	tests := []struct {
		code   Code
		mods   Modifiers
		layout Layout
		want   string
	}{
		{"2", ModShift, LayoutUS, "@"},
		{"2", ModShift, LayoutUK, "\""},
		{"3", ModShift, LayoutUK, "£"},
		{"2", 0, LayoutUS, "2"},
		{CodeMinus, ModShift, LayoutUS, "_"},
		{CodeQuote, ModShift, LayoutUK, "@"},
		{"A", ModShift, LayoutUS, "A"},
		{CodeEnter, 0, LayoutUS, "⏎ enter"},
		{UnknownCode(99), 0, LayoutUS, "Unknown(99)"},
	}

	for _, tt := range tests {
		if got := Label(tt.code, tt.mods, tt.layout); got != tt.want {
			t.Errorf("Label(%q, %v, %v) = %q, want %q", tt.code, tt.mods, tt.layout, got, tt.want)
		}
	}
}
