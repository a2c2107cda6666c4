package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is the platform-independent identity of a key or pointer button.
// Two different backends reporting the same logical key must map to the
// same Code value.
type Code string

const (
	CodeShift       Code = "Shift"
	CodeCtrl        Code = "Ctrl"
	CodeAlt         Code = "Alt"
	CodeMeta        Code = "Meta"
	CodeTab         Code = "Tab"
	CodeCapsLock    Code = "CapsLock"
	CodeNumLock     Code = "NumLock"
	CodeScrollLock  Code = "ScrollLock"
	CodeEscape      Code = "Escape"
	CodeSpace       Code = "Space"
	CodeEnter       Code = "Enter"
	CodeBackspace   Code = "Backspace"
	CodeDelete      Code = "Delete"
	CodeInsert      Code = "Insert"
	CodePrintScreen Code = "PrintScreen"
	CodePause       Code = "Pause"
	CodeMenu        Code = "Menu"

	CodeHome     Code = "Home"
	CodeEnd      Code = "End"
	CodePageUp   Code = "PageUp"
	CodePageDown Code = "PageDown"
	CodeUp       Code = "Up"
	CodeDown     Code = "Down"
	CodeLeft     Code = "Left"
	CodeRight    Code = "Right"

	CodeComma        Code = "Comma"
	CodePeriod       Code = "Period"
	CodeSemicolon    Code = "Semicolon"
	CodeQuote        Code = "Quote"
	CodeBackquote    Code = "Backquote"
	CodeMinus        Code = "Minus"
	CodeEqual        Code = "Equal"
	CodeSlash        Code = "Slash"
	CodeBackslash    Code = "Backslash"
	CodeLeftBracket  Code = "LeftBracket"
	CodeRightBracket Code = "RightBracket"

	CodeVolumeUp   Code = "VolumeUp"
	CodeVolumeDown Code = "VolumeDown"
	CodeMute       Code = "Mute"
	CodeMediaPlay  Code = "MediaPlay"
	CodeMediaNext  Code = "MediaNext"
	CodeMediaPrev  Code = "MediaPrev"
	CodeMediaStop  Code = "MediaStop"
	CodeWebHome    Code = "WebHome"
	CodeMail       Code = "Mail"

	CodeMouseLeft    Code = "MouseLeft"
	CodeMouseRight   Code = "MouseRight"
	CodeMouseMiddle  Code = "MouseMiddle"
	CodeMouseBack    Code = "MouseBack"
	CodeMouseForward Code = "MouseForward"
)

// UnknownCode wraps an unmapped backend-native code so the event stays
// visible instead of being silently dropped.
func UnknownCode(raw uint32) Code {
	return Code(fmt.Sprintf("Unknown(%d)", raw))
}

// IsUnknown reports whether c came from an unmapped raw code.
func (c Code) IsUnknown() bool {
	return strings.HasPrefix(string(c), "Unknown(")
}

// IsMouse reports whether c identifies a pointer button.
func (c Code) IsMouse() bool {
	return strings.HasPrefix(string(c), "Mouse")
}

// Modifier returns the modifier bit for c, or 0 if c is not a modifier key.
// CapsLock, NumLock and Tab are styled as modifiers but do not combine, so
// they carry no bit.
func (c Code) Modifier() Modifiers {
	switch c {
	case CodeShift:
		return ModShift
	case CodeCtrl:
		return ModCtrl
	case CodeAlt:
		return ModAlt
	case CodeMeta:
		return ModMeta
	default:
		return 0
	}
}

// IsLetter reports whether c is a single letter key A-Z.
func (c Code) IsLetter() bool {
	return len(c) == 1 && c[0] >= 'A' && c[0] <= 'Z'
}

// IsDigit reports whether c is a single digit key 0-9.
func (c Code) IsDigit() bool {
	return len(c) == 1 && c[0] >= '0' && c[0] <= '9'
}

// FunctionNumber returns n for function keys F1-F24, or 0 otherwise.
func (c Code) FunctionNumber() int {
	s := string(c)
	if len(s) < 2 || s[0] != 'F' {
		return 0
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > 24 {
		return 0
	}
	return n
}
