package event

// Kind identifies which variant an event record carries.
type Kind int

const (
	// KindNone marks an empty slot. It is never returned as an observed event.
	KindNone Kind = iota
	KindWindowMoved
	KindWindowResized
	KindWindowClosed
	KindWindowRefreshRequested
	KindWindowFocused
	KindWindowDefocused
	KindWindowIconified
	KindWindowRestored
	KindFramebufferResized
	KindMouseButtonPressed
	KindMouseButtonReleased
	KindCursorMoved
	KindCursorEntered
	KindCursorLeft
	KindScrolled
	KindKeyPressed
	KindKeyRepeated
	KindKeyReleased
	KindCharacterInput
	KindFilesDropped

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:                   "none",
	KindWindowMoved:            "window_moved",
	KindWindowResized:          "window_resized",
	KindWindowClosed:           "window_closed",
	KindWindowRefreshRequested: "window_refresh",
	KindWindowFocused:          "window_focused",
	KindWindowDefocused:        "window_defocused",
	KindWindowIconified:        "window_iconified",
	KindWindowRestored:         "window_restored",
	KindFramebufferResized:     "framebuffer_resized",
	KindMouseButtonPressed:     "button_pressed",
	KindMouseButtonReleased:    "button_released",
	KindCursorMoved:            "cursor_moved",
	KindCursorEntered:          "cursor_entered",
	KindCursorLeft:             "cursor_left",
	KindScrolled:               "scrolled",
	KindKeyPressed:             "key_pressed",
	KindKeyRepeated:            "key_repeated",
	KindKeyReleased:            "key_released",
	KindCharacterInput:         "character_input",
	KindFilesDropped:           "files_dropped",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k names a real event kind (not KindNone).
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return KindNone, &KindError{Name: s}
}

// Kinds returns every real event kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
