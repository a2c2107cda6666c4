package input

// Layout selects the keyboard layout used to resolve shifted symbols.
type Layout int

const (
	LayoutUS Layout = iota
	LayoutUK
)

// displayLabels maps codes to the label the renderer shows. Codes absent
// here render as their Code string.
var displayLabels = map[Code]string{
	CodeShift:        "⇧ shift",
	CodeCtrl:         "⌃ ctrl",
	CodeAlt:          "⌥ alt",
	CodeMeta:         "◆ meta",
	CodeEnter:        "⏎ enter",
	CodeBackspace:    "⌫ back",
	CodeDelete:       "⌦ del",
	CodeInsert:       "ins",
	CodeEscape:       "esc",
	CodeSpace:        "␣ space",
	CodeTab:          "⇥ tab",
	CodeCapsLock:     "⇪ caps",
	CodeNumLock:      "numlock",
	CodeScrollLock:   "scroll",
	CodePrintScreen:  "ps",
	CodeUp:           "↑",
	CodeDown:         "↓",
	CodeLeft:         "←",
	CodeRight:        "→",
	CodeHome:         "home",
	CodeEnd:          "end",
	CodePageUp:       "pgup",
	CodePageDown:     "pgdn",
	CodeComma:        ",",
	CodePeriod:       ".",
	CodeSemicolon:    ";",
	CodeQuote:        "'",
	CodeBackquote:    "`",
	CodeMinus:        "-",
	CodeEqual:        "=",
	CodeSlash:        "/",
	CodeBackslash:    "\\",
	CodeLeftBracket:  "[",
	CodeRightBracket: "]",
	CodeVolumeUp:     "vol+",
	CodeVolumeDown:   "vol-",
	CodeMute:         "mute",
	CodeMediaPlay:    "play",
	CodeMediaNext:    "next",
	CodeMediaPrev:    "prev",
	CodeMediaStop:    "stop",
	CodeWebHome:      "web",
	CodeMail:         "mail",
	CodeMouseLeft:    "🖱 left",
	CodeMouseRight:   "🖱 right",
	CodeMouseMiddle:  "🖱 middle",
	CodeMouseBack:    "🖱 back",
	CodeMouseForward: "🖱 fwd",
}

// shiftedUS resolves the symbol produced when Shift is held, US layout.
var shiftedUS = map[Code]string{
	"1": "!", "2": "@", "3": "#", "4": "$", "5": "%",
	"6": "^", "7": "&", "8": "*", "9": "(", "0": ")",
	CodeMinus:        "_",
	CodeEqual:        "+",
	CodeBackquote:    "~",
	CodeQuote:        "\"",
	CodeBackslash:    "|",
	CodeComma:        "<",
	CodePeriod:       ">",
	CodeSemicolon:    ":",
	CodeSlash:        "?",
	CodeLeftBracket:  "{",
	CodeRightBracket: "}",
}

// shiftedUK overrides the US table where the UK layout differs.
var shiftedUK = map[Code]string{
	"2":           "\"",
	"3":           "£",
	CodeQuote:     "@",
	CodeBackquote: "¬",
}

// Label resolves the display label for a code, layout-aware when Shift is
// held so the overlay shows the symbol the user actually typed.
func Label(code Code, mods Modifiers, layout Layout) string {
	if mods.Has(ModShift) {
		if layout == LayoutUK {
			if s, ok := shiftedUK[code]; ok {
				return s
			}
		}
		if s, ok := shiftedUS[code]; ok {
			return s
		}
	}
	if s, ok := displayLabels[code]; ok {
		return s
	}
	return string(code)
}
