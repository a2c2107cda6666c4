package input

// Raw code tables for each capture backend. The tables are plain data so
// they build and test on every platform regardless of which backend is
// compiled in.

// evdevCodes maps Linux kernel input event codes (input-event-codes.h) to
// normalized codes. Left/right variants of a modifier collapse into one
// logical key.
var evdevCodes = map[uint32]Code{
	1: CodeEscape,
	2: "1", 3: "2", 4: "3", 5: "4", 6: "5",
	7: "6", 8: "7", 9: "8", 10: "9", 11: "0",
	12: CodeMinus,
	13: CodeEqual,
	14: CodeBackspace,
	15: CodeTab,
	16: "Q", 17: "W", 18: "E", 19: "R", 20: "T",
	21: "Y", 22: "U", 23: "I", 24: "O", 25: "P",
	26: CodeLeftBracket,
	27: CodeRightBracket,
	28: CodeEnter,
	29: CodeCtrl,
	30: "A", 31: "S", 32: "D", 33: "F", 34: "G",
	35: "H", 36: "J", 37: "K", 38: "L",
	39: CodeSemicolon,
	40: CodeQuote,
	41: CodeBackquote,
	42: CodeShift,
	43: CodeBackslash,
	44: "Z", 45: "X", 46: "C", 47: "V", 48: "B",
	49: "N", 50: "M",
	51: CodeComma,
	52: CodePeriod,
	53: CodeSlash,
	54: CodeShift, // right shift
	55: "8",       // keypad asterisk
	56: CodeAlt,
	57: CodeSpace,
	58: CodeCapsLock,
	59: "F1", 60: "F2", 61: "F3", 62: "F4", 63: "F5",
	64: "F6", 65: "F7", 66: "F8", 67: "F9", 68: "F10",
	69: CodeNumLock,
	70: CodeScrollLock,
	71: "7", 72: "8", 73: "9", // keypad
	74: CodeMinus,
	75: "4", 76: "5", 77: "6",
	78: CodeEqual, // keypad plus, shares the physical legend
	79: "1", 80: "2", 81: "3", 82: "0",
	83:  CodePeriod,
	87:  "F11",
	88:  "F12",
	96:  CodeEnter, // keypad enter
	97:  CodeCtrl,  // right ctrl
	98:  CodeSlash, // keypad slash
	99:  CodePrintScreen,
	100: CodeAlt, // altgr
	102: CodeHome,
	103: CodeUp,
	104: CodePageUp,
	105: CodeLeft,
	106: CodeRight,
	107: CodeEnd,
	108: CodeDown,
	109: CodePageDown,
	110: CodeInsert,
	111: CodeDelete,
	113: CodeMute,
	114: CodeVolumeDown,
	115: CodeVolumeUp,
	119: CodePause,
	125: CodeMeta,
	126: CodeMeta, // right meta
	127: CodeMenu,
	150: CodeWebHome,
	155: CodeMail,
	163: CodeMediaNext,
	164: CodeMediaPlay,
	165: CodeMediaPrev,
	166: CodeMediaStop,
	172: CodeWebHome,

	// BTN_* range
	0x110: CodeMouseLeft,
	0x111: CodeMouseRight,
	0x112: CodeMouseMiddle,
	0x113: CodeMouseBack,
	0x114: CodeMouseForward,
}

// vkCodes maps Windows virtual-key codes to normalized codes. Mouse buttons
// arrive through the low-level mouse hook but reuse the VK_*BUTTON values.
var vkCodes = map[uint32]Code{
	0x01: CodeMouseLeft,
	0x02: CodeMouseRight,
	0x04: CodeMouseMiddle,
	0x05: CodeMouseBack,
	0x06: CodeMouseForward,

	0x08: CodeBackspace,
	0x09: CodeTab,
	0x0D: CodeEnter,
	0x10: CodeShift, 0xA0: CodeShift, 0xA1: CodeShift,
	0x11: CodeCtrl, 0xA2: CodeCtrl, 0xA3: CodeCtrl,
	0x12: CodeAlt, 0xA4: CodeAlt, 0xA5: CodeAlt,
	0x13: CodePause,
	0x14: CodeCapsLock,
	0x1B: CodeEscape,
	0x20: CodeSpace,
	0x21: CodePageUp,
	0x22: CodePageDown,
	0x23: CodeEnd,
	0x24: CodeHome,
	0x25: CodeLeft,
	0x26: CodeUp,
	0x27: CodeRight,
	0x28: CodeDown,
	0x2C: CodePrintScreen,
	0x2D: CodeInsert,
	0x2E: CodeDelete,

	0x30: "0", 0x31: "1", 0x32: "2", 0x33: "3", 0x34: "4",
	0x35: "5", 0x36: "6", 0x37: "7", 0x38: "8", 0x39: "9",

	0x41: "A", 0x42: "B", 0x43: "C", 0x44: "D", 0x45: "E",
	0x46: "F", 0x47: "G", 0x48: "H", 0x49: "I", 0x4A: "J",
	0x4B: "K", 0x4C: "L", 0x4D: "M", 0x4E: "N", 0x4F: "O",
	0x50: "P", 0x51: "Q", 0x52: "R", 0x53: "S", 0x54: "T",
	0x55: "U", 0x56: "V", 0x57: "W", 0x58: "X", 0x59: "Y",
	0x5A: "Z",

	0x5B: CodeMeta, 0x5C: CodeMeta,
	0x5D: CodeMenu,

	// Keypad
	0x60: "0", 0x61: "1", 0x62: "2", 0x63: "3", 0x64: "4",
	0x65: "5", 0x66: "6", 0x67: "7", 0x68: "8", 0x69: "9",
	0x6A: "8", // multiply
	0x6B: CodeEqual,
	0x6D: CodeMinus,
	0x6E: CodePeriod,
	0x6F: CodeSlash,

	0x70: "F1", 0x71: "F2", 0x72: "F3", 0x73: "F4",
	0x74: "F5", 0x75: "F6", 0x76: "F7", 0x77: "F8",
	0x78: "F9", 0x79: "F10", 0x7A: "F11", 0x7B: "F12",
	0x7C: "F13", 0x7D: "F14", 0x7E: "F15", 0x7F: "F16",
	0x80: "F17", 0x81: "F18", 0x82: "F19", 0x83: "F20",
	0x84: "F21", 0x85: "F22", 0x86: "F23", 0x87: "F24",

	0x90: CodeNumLock,
	0x91: CodeScrollLock,

	0xA6: CodeWebHome, 0xAC: CodeWebHome,
	0xAD: CodeMute,
	0xAE: CodeVolumeDown,
	0xAF: CodeVolumeUp,
	0xB0: CodeMediaNext,
	0xB1: CodeMediaPrev,
	0xB2: CodeMediaStop,
	0xB3: CodeMediaPlay,
	0xB4: CodeMail,

	0xBA: CodeSemicolon,
	0xBB: CodeEqual,
	0xBC: CodeComma,
	0xBD: CodeMinus,
	0xBE: CodePeriod,
	0xBF: CodeSlash,
	0xC0: CodeBackquote,
	0xDB: CodeLeftBracket,
	0xDC: CodeBackslash,
	0xDD: CodeRightBracket,
	0xDE: CodeQuote,
}

// Translate resolves a backend-native code against the table for its
// source. ok is false when the code is unmapped.
func Translate(source Source, raw uint32) (Code, bool) {
	var table map[uint32]Code
	switch source {
	case SourceEvdev:
		table = evdevCodes
	case SourceRawInput:
		table = vkCodes
	default:
		return "", false
	}
	code, ok := table[raw]
	return code, ok
}
