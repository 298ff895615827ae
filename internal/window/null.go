package window

import "github.com/google/uuid"

// NullWindow is a window with no display. Tests and drivers call its
// methods to invoke the registered callbacks as a real library would.
type NullWindow struct {
	Callbacks
	id string
}

// NewNullWindow creates a null window with a random ID.
func NewNullWindow() *NullWindow {
	return &NullWindow{id: uuid.NewString()}
}

// NewNullWindowWithID creates a null window with the given ID.
func NewNullWindowWithID(id string) *NullWindow {
	return &NullWindow{id: id}
}

func (w *NullWindow) ID() string { return w.id }

// Move simulates the window being moved to (x, y).
func (w *NullWindow) Move(x, y int) { w.firePos(w, x, y) }

// Resize simulates a content area resize.
func (w *NullWindow) Resize(width, height int) { w.fireSize(w, width, height) }

// Close simulates the user requesting the window close.
func (w *NullWindow) Close() { w.fireClose(w) }

// Refresh simulates a damage/refresh request.
func (w *NullWindow) Refresh() { w.fireRefresh(w) }

// Focus simulates gaining (true) or losing (false) input focus.
func (w *NullWindow) Focus(focused bool) { w.fireFocus(w, focused) }

// Iconify simulates minimizing (true) or restoring (false) the window.
func (w *NullWindow) Iconify(iconified bool) { w.fireIconify(w, iconified) }

// ResizeFramebuffer simulates a framebuffer resize.
func (w *NullWindow) ResizeFramebuffer(width, height int) { w.fireFramebufferSize(w, width, height) }

// MouseButton simulates a mouse button action.
func (w *NullWindow) MouseButton(button MouseButton, action Action, mods ModifierKey) {
	w.fireMouseButton(w, button, action, mods)
}

// MoveCursor simulates cursor motion.
func (w *NullWindow) MoveCursor(x, y float64) { w.fireCursorPos(w, x, y) }

// EnterCursor simulates the cursor entering (true) or leaving (false).
func (w *NullWindow) EnterCursor(entered bool) { w.fireCursorEnter(w, entered) }

// Scroll simulates scroll wheel or touchpad offsets.
func (w *NullWindow) Scroll(xoff, yoff float64) { w.fireScroll(w, xoff, yoff) }

// Key simulates a key action.
func (w *NullWindow) Key(key Key, scancode int, action Action, mods ModifierKey) {
	w.fireKey(w, key, scancode, action, mods)
}

// Char simulates text input of a single character.
func (w *NullWindow) Char(char rune, mods ModifierKey) { w.fireCharMods(w, char, mods) }

// Drop simulates files being dropped on the window.
func (w *NullWindow) Drop(names []string) { w.fireDrop(w, names) }
