// Package window models the upstream windowing library that produces input
// events through per-kind callbacks.
package window

// Action identifies what happened to a key or mouse button.
type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// ModifierKey is a bit mask of active modifier keys.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper

	ModNone ModifierKey = 0
)

// Has returns true if the mask contains the given modifier.
func (m ModifierKey) Has(mod ModifierKey) bool {
	return m&mod != 0
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Callback signatures. Each receives the window that produced the event
// followed by the native parameters of that event.
type (
	PosCallback         func(w Window, x, y int)
	SizeCallback        func(w Window, width, height int)
	CloseCallback       func(w Window)
	RefreshCallback     func(w Window)
	FocusCallback       func(w Window, focused bool)
	IconifyCallback     func(w Window, iconified bool)
	MouseButtonCallback func(w Window, button MouseButton, action Action, mods ModifierKey)
	CursorPosCallback   func(w Window, x, y float64)
	CursorEnterCallback func(w Window, entered bool)
	ScrollCallback      func(w Window, xoff, yoff float64)
	KeyCallback         func(w Window, key Key, scancode int, action Action, mods ModifierKey)
	CharModsCallback    func(w Window, char rune, mods ModifierKey)
	// DropCallback receives paths that are only valid for the duration of the call.
	DropCallback func(w Window, names []string)
)

// Window is a source of input events. Registering a callback replaces the
// previous one for that event; registering nil removes it.
//
// Callbacks run synchronously on the goroutine that pumps the window's
// events and must not be registered concurrently with that pumping.
type Window interface {
	// ID returns a stable identifier for the window.
	ID() string

	SetPosCallback(cb PosCallback)
	SetSizeCallback(cb SizeCallback)
	SetCloseCallback(cb CloseCallback)
	SetRefreshCallback(cb RefreshCallback)
	SetFocusCallback(cb FocusCallback)
	SetIconifyCallback(cb IconifyCallback)
	SetFramebufferSizeCallback(cb SizeCallback)
	SetMouseButtonCallback(cb MouseButtonCallback)
	SetCursorPosCallback(cb CursorPosCallback)
	SetCursorEnterCallback(cb CursorEnterCallback)
	SetScrollCallback(cb ScrollCallback)
	SetKeyCallback(cb KeyCallback)
	SetCharModsCallback(cb CharModsCallback)
	SetDropCallback(cb DropCallback)
}
