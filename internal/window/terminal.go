package window

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// DefaultRepeatInterval is the longest gap between two identical key
// reports that is still treated as auto-repeat.
const DefaultRepeatInterval = 60 * time.Millisecond

// ErrTerminalClosed is returned by WaitEvents after the screen is finalized.
var ErrTerminalClosed = errors.New("terminal closed")

// closeRequest is posted as interrupt data by RequestClose.
type closeRequest struct{}

// keyTimeout is posted when a held key may have been let go.
type keyTimeout struct{}

// Terminal implements Window on top of a tcell screen. The terminal's cell
// grid plays the role of both the content area and the framebuffer.
//
// Terminals only report key presses. A press is held until a different key
// arrives or the repeat interval passes without the same key, and then
// released. The same key arriving within the interval while held is
// reported as a repeat, so repeats always fall between a press and its
// release.
type Terminal struct {
	Callbacks

	id     string
	screen tcell.Screen

	clock            clockwork.Clock
	repeatInterval   time.Duration
	closeOnInterrupt bool
	stat             func(string) (os.FileInfo, error)

	mu          sync.Mutex
	shouldClose bool

	width, height int

	cursorInside     bool
	cursorX, cursorY int
	buttons          tcell.ButtonMask

	held         bool
	heldKey      Key
	heldScancode int
	heldMods     ModifierKey
	heldAt       time.Time
	releaseTimer clockwork.Timer

	pasting bool
	paste   strings.Builder
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithClock sets the clock used for key repeat detection.
func WithClock(c clockwork.Clock) TerminalOption {
	return func(t *Terminal) {
		t.clock = c
	}
}

// WithRepeatInterval sets the key repeat detection window. Zero disables
// repeat detection.
func WithRepeatInterval(d time.Duration) TerminalOption {
	return func(t *Terminal) {
		t.repeatInterval = d
	}
}

// WithCloseOnInterrupt makes Ctrl-C request the window close instead of
// being reported as a key.
func WithCloseOnInterrupt(enabled bool) TerminalOption {
	return func(t *Terminal) {
		t.closeOnInterrupt = enabled
	}
}

// WithStat sets the function used to decide whether pasted text names files.
func WithStat(stat func(string) (os.FileInfo, error)) TerminalOption {
	return func(t *Terminal) {
		t.stat = stat
	}
}

// NewTerminal creates a terminal window on the controlling terminal.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, opts...), nil
}

// NewTerminalWithScreen creates a terminal window on an existing screen.
func NewTerminalWithScreen(screen tcell.Screen, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		id:               uuid.NewString(),
		screen:           screen,
		clock:            clockwork.NewRealClock(),
		repeatInterval:   DefaultRepeatInterval,
		closeOnInterrupt: true,
		stat:             os.Stat,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) ID() string { return t.id }

// Init prepares the screen and enables mouse, paste and focus reporting.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}

	t.screen.EnableMouse()
	t.screen.EnablePaste()
	t.screen.EnableFocus()

	t.width, t.height = t.screen.Size()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	if t.releaseTimer != nil {
		t.releaseTimer.Stop()
	}
	t.screen.Fini()
}

// Screen returns the underlying tcell screen for drawing.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the current size in cells.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// ShouldClose reports whether a close was requested.
func (t *Terminal) ShouldClose() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shouldClose
}

// RequestClose asks the window to close. It is safe to call from any
// goroutine; the close callback runs on the goroutine pumping events.
func (t *Terminal) RequestClose() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(closeRequest{})) // best-effort; queue may be full
}

// PollEvents processes every pending terminal event without blocking.
func (t *Terminal) PollEvents() {
	for t.screen.HasPendingEvent() {
		t.dispatch(t.screen.PollEvent())
	}
}

// WaitEvents blocks until at least one event arrives, then processes it
// and everything else pending.
func (t *Terminal) WaitEvents() error {
	ev := t.screen.PollEvent()
	if ev == nil {
		return ErrTerminalClosed
	}
	t.dispatch(ev)
	t.PollEvents()
	return nil
}

// dispatch converts one tcell event into callback invocations.
func (t *Terminal) dispatch(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(e)

	case *tcell.EventMouse:
		t.handleMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		if w != t.width || h != t.height {
			t.width, t.height = w, h
			t.fireSize(t, w, h)
			t.fireFramebufferSize(t, w, h)
		}
		t.fireRefresh(t)

	case *tcell.EventFocus:
		t.fireFocus(t, e.Focused)

	case *tcell.EventPaste:
		if e.Start() {
			t.releaseHeld()
			t.pasting = true
			t.paste.Reset()
			return
		}
		t.pasting = false
		t.finishPaste(t.paste.String())
		t.paste.Reset()

	case *tcell.EventInterrupt:
		switch e.Data().(type) {
		case closeRequest:
			t.requestClose()
		case keyTimeout:
			if t.held && t.clock.Since(t.heldAt) >= t.repeatInterval {
				t.releaseHeld()
			}
		}
	}
}

func (t *Terminal) requestClose() {
	t.releaseHeld()

	t.mu.Lock()
	t.shouldClose = true
	t.mu.Unlock()

	t.fireClose(t)
}

func (t *Terminal) handleKey(e *tcell.EventKey) {
	if t.pasting {
		switch e.Key() {
		case tcell.KeyRune:
			t.paste.WriteRune(e.Rune())
		case tcell.KeyEnter:
			t.paste.WriteByte('\n')
		case tcell.KeyTab:
			t.paste.WriteByte('\t')
		}
		return
	}

	key, mods := convertKey(e.Key(), e.Rune())
	mods |= convertMod(e.Modifiers())

	if t.closeOnInterrupt && key == Key('C') && mods.Has(ModControl) {
		t.requestClose()
		return
	}

	scancode := int(e.Key())
	now := t.clock.Now()
	repeat := t.held && key == t.heldKey && mods == t.heldMods &&
		now.Sub(t.heldAt) <= t.repeatInterval

	if repeat {
		t.fireKey(t, key, scancode, ActionRepeat, mods)
	} else {
		t.releaseHeld()
		t.fireKey(t, key, scancode, ActionPress, mods)
	}

	if e.Key() == tcell.KeyRune && unicode.IsPrint(e.Rune()) && !mods.Has(ModControl) {
		t.fireCharMods(t, e.Rune(), mods)
	}

	if t.repeatInterval <= 0 {
		t.fireKey(t, key, scancode, ActionRelease, mods)
		return
	}
	t.hold(key, scancode, mods, now)
}

// hold remembers the pressed key and arms a timer that lets the pump
// goroutine release it once the repeat interval passes.
func (t *Terminal) hold(key Key, scancode int, mods ModifierKey, at time.Time) {
	t.held = true
	t.heldKey, t.heldScancode, t.heldMods, t.heldAt = key, scancode, mods, at

	if t.releaseTimer != nil {
		t.releaseTimer.Stop()
	}
	screen := t.screen
	t.releaseTimer = t.clock.AfterFunc(t.repeatInterval, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(keyTimeout{}))
	})
}

// releaseHeld reports the release of the held key, if any.
func (t *Terminal) releaseHeld() {
	if !t.held {
		return
	}
	t.held = false
	if t.releaseTimer != nil {
		t.releaseTimer.Stop()
		t.releaseTimer = nil
	}
	t.fireKey(t, t.heldKey, t.heldScancode, ActionRelease, t.heldMods)
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button MouseButton
}{
	{tcell.Button1, MouseButtonLeft},
	{tcell.Button2, MouseButtonRight},
	{tcell.Button3, MouseButtonMiddle},
}

func (t *Terminal) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	mods := convertMod(e.Modifiers())

	if !t.cursorInside {
		t.cursorInside = true
		t.fireCursorEnter(t, true)
		t.cursorX, t.cursorY = x, y
		t.fireCursorPos(t, float64(x), float64(y))
	} else if x != t.cursorX || y != t.cursorY {
		t.cursorX, t.cursorY = x, y
		t.fireCursorPos(t, float64(x), float64(y))
	}

	btns := e.Buttons()
	for _, mb := range mouseButtons {
		was := t.buttons&mb.mask != 0
		is := btns&mb.mask != 0
		switch {
		case is && !was:
			t.fireMouseButton(t, mb.button, ActionPress, mods)
		case was && !is:
			t.fireMouseButton(t, mb.button, ActionRelease, mods)
		}
	}
	t.buttons = btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case btns&tcell.WheelUp != 0:
		t.fireScroll(t, 0, 1)
	case btns&tcell.WheelDown != 0:
		t.fireScroll(t, 0, -1)
	case btns&tcell.WheelLeft != 0:
		t.fireScroll(t, -1, 0)
	case btns&tcell.WheelRight != 0:
		t.fireScroll(t, 1, 0)
	}
}

// finishPaste reports pasted text as a file drop when every word names an
// existing file, and as character input otherwise.
func (t *Terminal) finishPaste(text string) {
	if paths := splitPaths(text); len(paths) > 0 && t.allExist(paths) {
		t.fireDrop(t, paths)
		return
	}

	for _, r := range text {
		switch {
		case r == '\n':
			t.fireKey(t, KeyEnter, int(tcell.KeyEnter), ActionPress, ModNone)
			t.fireKey(t, KeyEnter, int(tcell.KeyEnter), ActionRelease, ModNone)
		case unicode.IsPrint(r):
			t.fireCharMods(t, r, ModNone)
		}
	}
}

func (t *Terminal) allExist(paths []string) bool {
	for _, p := range paths {
		if _, err := t.stat(p); err != nil {
			return false
		}
	}
	return true
}

// convertKey converts a tcell key to a Key plus any modifier implied by it.
func convertKey(k tcell.Key, r rune) (Key, ModifierKey) {
	switch k {
	case tcell.KeyRune:
		return KeyForRune(r), ModNone
	case tcell.KeyEscape:
		return KeyEscape, ModNone
	case tcell.KeyEnter:
		return KeyEnter, ModNone
	case tcell.KeyTab:
		return KeyTab, ModNone
	case tcell.KeyBacktab:
		return KeyTab, ModShift
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, ModNone
	case tcell.KeyDelete:
		return KeyDelete, ModNone
	case tcell.KeyInsert:
		return KeyInsert, ModNone
	case tcell.KeyHome:
		return KeyHome, ModNone
	case tcell.KeyEnd:
		return KeyEnd, ModNone
	case tcell.KeyPgUp:
		return KeyPageUp, ModNone
	case tcell.KeyPgDn:
		return KeyPageDown, ModNone
	case tcell.KeyUp:
		return KeyUp, ModNone
	case tcell.KeyDown:
		return KeyDown, ModNone
	case tcell.KeyLeft:
		return KeyLeft, ModNone
	case tcell.KeyRight:
		return KeyRight, ModNone
	case tcell.KeyCtrlSpace:
		return KeySpace, ModControl
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1), ModNone
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyA + Key(k-tcell.KeyCtrlA), ModControl
	}
	return KeyUnknown, ModNone
}

// convertMod converts a tcell modifier mask to a ModifierKey.
func convertMod(m tcell.ModMask) ModifierKey {
	var result ModifierKey
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModControl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModSuper
	}
	return result
}
