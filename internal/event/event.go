package event

import (
	"reflect"
	"strings"
	"time"
)

// Window is an opaque reference to the window that produced an event.
// Records borrow it; nothing in this package creates, closes or inspects it.
type Window interface {
	ID() string
}

// Event is one queued occurrence. The concrete type selects the kind and
// carries only the payload that belongs to it.
type Event interface {
	Kind() Kind
	Window() Window
	Time() time.Time

	isEvent()
}

// Header holds the fields shared by every event.
type Header struct {
	Win Window
	At  time.Time
}

// Window returns the originating window.
func (h Header) Window() Window { return h.Win }

// Time returns when the event was recorded.
func (h Header) Time() time.Time { return h.At }

func (Header) isEvent() {}

// Position is a pair of coordinates or offsets.
type Position struct {
	X, Y float64
}

// Size is a width and height in screen units or pixels.
type Size struct {
	Width, Height int
}

// KeyStroke describes a physical key and the active modifiers.
type KeyStroke struct {
	Key      int
	Scancode int
	Mods     int
}

// ButtonClick describes a mouse button and the active modifiers.
type ButtonClick struct {
	Button int
	Mods   int
}

// Char is a Unicode code point produced by text input.
type Char struct {
	Codepoint rune
	Mods      int
}

// FileDrop holds the paths of dropped files. The slice and its strings are
// owned by the record that carries them.
type FileDrop struct {
	Paths []string
}

// Count returns the number of dropped paths.
func (f FileDrop) Count() int { return len(f.Paths) }

// WindowMoved reports the new position of the window's content area.
// The position is integral but stored as float64.
type WindowMoved struct {
	Header
	Position
}

// WindowResized reports the new size of the window's content area.
type WindowResized struct {
	Header
	Size
}

// WindowClosed reports that the user asked to close the window.
type WindowClosed struct{ Header }

// WindowRefreshRequested reports that the window contents need redrawing.
type WindowRefreshRequested struct{ Header }

// WindowFocused reports that the window gained input focus.
type WindowFocused struct{ Header }

// WindowDefocused reports that the window lost input focus.
type WindowDefocused struct{ Header }

// WindowIconified reports that the window was minimized.
type WindowIconified struct{ Header }

// WindowRestored reports that the window was restored from minimized state.
type WindowRestored struct{ Header }

// FramebufferResized reports the new framebuffer size in pixels.
type FramebufferResized struct {
	Header
	Size
}

// MouseButtonPressed reports a mouse button press.
type MouseButtonPressed struct {
	Header
	ButtonClick
}

// MouseButtonReleased reports a mouse button release.
type MouseButtonReleased struct {
	Header
	ButtonClick
}

// CursorMoved reports the cursor position relative to the content area.
type CursorMoved struct {
	Header
	Position
}

// CursorEntered reports that the cursor entered the content area.
type CursorEntered struct{ Header }

// CursorLeft reports that the cursor left the content area.
type CursorLeft struct{ Header }

// Scrolled reports scroll offsets. Y is vertical, positive away from the user.
type Scrolled struct {
	Header
	Position
}

// KeyPressed reports a key press.
type KeyPressed struct {
	Header
	KeyStroke
}

// KeyRepeated reports a key held down long enough to repeat.
type KeyRepeated struct {
	Header
	KeyStroke
}

// KeyReleased reports a key release.
type KeyReleased struct {
	Header
	KeyStroke
}

// CharacterInput reports a Unicode character produced by text input.
type CharacterInput struct {
	Header
	Char
}

// FilesDropped reports files dropped onto the window.
type FilesDropped struct {
	Header
	FileDrop
}

func (WindowMoved) Kind() Kind            { return KindWindowMoved }
func (WindowResized) Kind() Kind          { return KindWindowResized }
func (WindowClosed) Kind() Kind           { return KindWindowClosed }
func (WindowRefreshRequested) Kind() Kind { return KindWindowRefreshRequested }
func (WindowFocused) Kind() Kind          { return KindWindowFocused }
func (WindowDefocused) Kind() Kind        { return KindWindowDefocused }
func (WindowIconified) Kind() Kind        { return KindWindowIconified }
func (WindowRestored) Kind() Kind         { return KindWindowRestored }
func (FramebufferResized) Kind() Kind     { return KindFramebufferResized }
func (MouseButtonPressed) Kind() Kind     { return KindMouseButtonPressed }
func (MouseButtonReleased) Kind() Kind    { return KindMouseButtonReleased }
func (CursorMoved) Kind() Kind            { return KindCursorMoved }
func (CursorEntered) Kind() Kind          { return KindCursorEntered }
func (CursorLeft) Kind() Kind             { return KindCursorLeft }
func (Scrolled) Kind() Kind               { return KindScrolled }
func (KeyPressed) Kind() Kind             { return KindKeyPressed }
func (KeyRepeated) Kind() Kind            { return KindKeyRepeated }
func (KeyReleased) Kind() Kind            { return KindKeyReleased }
func (CharacterInput) Kind() Kind         { return KindCharacterInput }
func (FilesDropped) Kind() Kind           { return KindFilesDropped }

// KindOf returns the kind of ev, or KindNone for a nil event or a nil
// pointer to one.
func KindOf(ev Event) Kind {
	if ev == nil {
		return KindNone
	}
	if v := reflect.ValueOf(ev); v.Kind() == reflect.Pointer && v.IsNil() {
		return KindNone
	}
	return ev.Kind()
}

// IsValue reports whether ev holds one of the event structs by value.
// Pointers to them satisfy Event too, but are not stored by the queue.
func IsValue(ev Event) bool {
	return ev != nil && reflect.TypeOf(ev).Kind() == reflect.Struct
}

// Release drops the storage owned by ev. Only FilesDropped owns storage;
// its path strings are cleared so the backing array no longer references them.
func Release(ev Event) {
	if fd, ok := ev.(FilesDropped); ok {
		clear(fd.Paths)
	}
}

// CopyPaths returns an owned deep copy of a transient path slice.
func CopyPaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	owned := make([]string, len(paths))
	for i, p := range paths {
		owned[i] = strings.Clone(p)
	}
	return owned
}
