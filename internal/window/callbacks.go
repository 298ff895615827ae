package window

// Callbacks is the registration table shared by Window implementations.
// Embed it to get the Set*Callback methods; the fire helpers invoke a
// callback if one is registered.
type Callbacks struct {
	pos         PosCallback
	size        SizeCallback
	close       CloseCallback
	refresh     RefreshCallback
	focus       FocusCallback
	iconify     IconifyCallback
	framebuffer SizeCallback
	mouseButton MouseButtonCallback
	cursorPos   CursorPosCallback
	cursorEnter CursorEnterCallback
	scroll      ScrollCallback
	key         KeyCallback
	charMods    CharModsCallback
	drop        DropCallback
}

func (c *Callbacks) SetPosCallback(cb PosCallback)                 { c.pos = cb }
func (c *Callbacks) SetSizeCallback(cb SizeCallback)               { c.size = cb }
func (c *Callbacks) SetCloseCallback(cb CloseCallback)             { c.close = cb }
func (c *Callbacks) SetRefreshCallback(cb RefreshCallback)         { c.refresh = cb }
func (c *Callbacks) SetFocusCallback(cb FocusCallback)             { c.focus = cb }
func (c *Callbacks) SetIconifyCallback(cb IconifyCallback)         { c.iconify = cb }
func (c *Callbacks) SetFramebufferSizeCallback(cb SizeCallback)    { c.framebuffer = cb }
func (c *Callbacks) SetMouseButtonCallback(cb MouseButtonCallback) { c.mouseButton = cb }
func (c *Callbacks) SetCursorPosCallback(cb CursorPosCallback)     { c.cursorPos = cb }
func (c *Callbacks) SetCursorEnterCallback(cb CursorEnterCallback) { c.cursorEnter = cb }
func (c *Callbacks) SetScrollCallback(cb ScrollCallback)           { c.scroll = cb }
func (c *Callbacks) SetKeyCallback(cb KeyCallback)                 { c.key = cb }
func (c *Callbacks) SetCharModsCallback(cb CharModsCallback)       { c.charMods = cb }
func (c *Callbacks) SetDropCallback(cb DropCallback)               { c.drop = cb }

// Registered returns the number of callbacks currently registered.
func (c *Callbacks) Registered() int {
	n := 0
	for _, set := range []bool{
		c.pos != nil, c.size != nil, c.close != nil, c.refresh != nil,
		c.focus != nil, c.iconify != nil, c.framebuffer != nil,
		c.mouseButton != nil, c.cursorPos != nil, c.cursorEnter != nil,
		c.scroll != nil, c.key != nil, c.charMods != nil, c.drop != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (c *Callbacks) firePos(w Window, x, y int) {
	if c.pos != nil {
		c.pos(w, x, y)
	}
}

func (c *Callbacks) fireSize(w Window, width, height int) {
	if c.size != nil {
		c.size(w, width, height)
	}
}

func (c *Callbacks) fireClose(w Window) {
	if c.close != nil {
		c.close(w)
	}
}

func (c *Callbacks) fireRefresh(w Window) {
	if c.refresh != nil {
		c.refresh(w)
	}
}

func (c *Callbacks) fireFocus(w Window, focused bool) {
	if c.focus != nil {
		c.focus(w, focused)
	}
}

func (c *Callbacks) fireIconify(w Window, iconified bool) {
	if c.iconify != nil {
		c.iconify(w, iconified)
	}
}

func (c *Callbacks) fireFramebufferSize(w Window, width, height int) {
	if c.framebuffer != nil {
		c.framebuffer(w, width, height)
	}
}

func (c *Callbacks) fireMouseButton(w Window, button MouseButton, action Action, mods ModifierKey) {
	if c.mouseButton != nil {
		c.mouseButton(w, button, action, mods)
	}
}

func (c *Callbacks) fireCursorPos(w Window, x, y float64) {
	if c.cursorPos != nil {
		c.cursorPos(w, x, y)
	}
}

func (c *Callbacks) fireCursorEnter(w Window, entered bool) {
	if c.cursorEnter != nil {
		c.cursorEnter(w, entered)
	}
}

func (c *Callbacks) fireScroll(w Window, xoff, yoff float64) {
	if c.scroll != nil {
		c.scroll(w, xoff, yoff)
	}
}

func (c *Callbacks) fireKey(w Window, key Key, scancode int, action Action, mods ModifierKey) {
	if c.key != nil {
		c.key(w, key, scancode, action, mods)
	}
}

func (c *Callbacks) fireCharMods(w Window, char rune, mods ModifierKey) {
	if c.charMods != nil {
		c.charMods(w, char, mods)
	}
}

func (c *Callbacks) fireDrop(w Window, names []string) {
	if c.drop != nil {
		c.drop(w, names)
	}
}
