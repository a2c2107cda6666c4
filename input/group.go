package input

// Group is the visual styling category of a key or button. The config file
// carries one style block per group.
type Group string

const (
	GroupNormal      Group = "normal"
	GroupNumeric     Group = "numeric"
	GroupModifier    Group = "modifier"
	GroupEditor      Group = "editor"
	GroupNavigation  Group = "navigation"
	GroupScrollable  Group = "scrollable"
	GroupSymbol      Group = "symbol"
	GroupEscape      Group = "escape"
	GroupUnknown     Group = "unknown"
	GroupFunction    Group = "function"
	GroupAltFunction Group = "altfunction"
	GroupMouse       Group = "mouse"
	GroupSpace       Group = "space"
)

// Groups lists every group, in the order the default config writes them.
var Groups = []Group{
	GroupNormal, GroupNumeric, GroupModifier, GroupEditor, GroupNavigation,
	GroupScrollable, GroupSymbol, GroupEscape, GroupUnknown, GroupFunction,
	GroupAltFunction, GroupMouse, GroupSpace,
}

// GroupFor categorizes a normalized code. The table is static; it is part
// of the normalizer vocabulary, not of the configuration.
func GroupFor(code Code) Group {
	switch {
	case code.IsMouse():
		return GroupMouse
	case code == CodeEscape || code == CodeMeta:
		return GroupEscape
	case code == CodeShift || code == CodeCtrl || code == CodeAlt ||
		code == CodeTab || code == CodeCapsLock || code == CodeNumLock:
		return GroupModifier
	case code == CodeBackspace || code == CodeDelete || code == CodeInsert ||
		code == CodeEnter || code == CodePrintScreen:
		return GroupEditor
	case code == CodeUp || code == CodeDown || code == CodeLeft || code == CodeRight:
		return GroupNavigation
	case code == CodeHome || code == CodeEnd || code == CodePageUp ||
		code == CodePageDown || code == CodeScrollLock:
		return GroupScrollable
	case code == CodeSpace:
		return GroupSpace
	case code == CodeComma || code == CodePeriod || code == CodeSemicolon ||
		code == CodeQuote || code == CodeBackquote || code == CodeMinus ||
		code == CodeEqual || code == CodeSlash || code == CodeBackslash ||
		code == CodeLeftBracket || code == CodeRightBracket:
		return GroupSymbol
	case code.FunctionNumber() > 0:
		return GroupFunction
	case code == CodeVolumeUp || code == CodeVolumeDown || code == CodeMute ||
		code == CodeMediaPlay || code == CodeMediaNext || code == CodeMediaPrev ||
		code == CodeMediaStop || code == CodeWebHome || code == CodeMail ||
		code == CodePause || code == CodeMenu:
		return GroupAltFunction
	case code.IsDigit():
		return GroupNumeric
	case code.IsLetter():
		return GroupNormal
	default:
		return GroupUnknown
	}
}
