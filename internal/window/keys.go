package window

// Key is a physical key code. Printable keys use their US-layout ASCII
// value; the rest start at 256.
type Key int

const KeyUnknown Key = -1

// Printable keys.
const (
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96
)

// Function and navigation keys.
const (
	KeyEscape Key = 256 + iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

const (
	KeyF1 Key = 290 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyForRune returns the key that produces r on a US layout, ignoring
// shift. Letters map to their upper-case code.
func KeyForRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return Key(r)
	}

	switch r {
	case ' ', '\'', ',', '-', '.', '/', ';', '=', '[', '\\', ']', '`':
		return Key(r)
	case '"':
		return KeyApostrophe
	case '<':
		return KeyComma
	case '_':
		return KeyMinus
	case '>':
		return KeyPeriod
	case '?':
		return KeySlash
	case ':':
		return KeySemicolon
	case '+':
		return KeyEqual
	case '{':
		return KeyLeftBracket
	case '|':
		return KeyBackslash
	case '}':
		return KeyRightBracket
	case '~':
		return KeyGraveAccent
	case ')':
		return Key0
	case '!':
		return Key('1')
	case '@':
		return Key('2')
	case '#':
		return Key('3')
	case '$':
		return Key('4')
	case '%':
		return Key('5')
	case '^':
		return Key('6')
	case '&':
		return Key('7')
	case '*':
		return Key('8')
	case '(':
		return Key9
	}
	return KeyUnknown
}
