package queue

import (
	"github.com/dshills/inputq/internal/event"
	"github.com/dshills/inputq/internal/window"
)

// TrackWindow registers callbacks on w that record every event it
// produces. Registering replaces any callbacks the window already had.
func (q *Queue) TrackWindow(w window.Window) {
	w.SetPosCallback(q.onPos)
	w.SetSizeCallback(q.onSize)
	w.SetCloseCallback(q.onClose)
	w.SetRefreshCallback(q.onRefresh)
	w.SetFocusCallback(q.onFocus)
	w.SetIconifyCallback(q.onIconify)
	w.SetFramebufferSizeCallback(q.onFramebufferSize)
	w.SetMouseButtonCallback(q.onMouseButton)
	w.SetCursorPosCallback(q.onCursorPos)
	w.SetCursorEnterCallback(q.onCursorEnter)
	w.SetScrollCallback(q.onScroll)
	w.SetKeyCallback(q.onKey)
	w.SetCharModsCallback(q.onCharMods)
	w.SetDropCallback(q.onDrop)
	q.logger.Debug("tracking window %s", w.ID())
}

// UntrackWindow removes every callback from w. Events already queued
// stay queued.
func (q *Queue) UntrackWindow(w window.Window) {
	w.SetPosCallback(nil)
	w.SetSizeCallback(nil)
	w.SetCloseCallback(nil)
	w.SetRefreshCallback(nil)
	w.SetFocusCallback(nil)
	w.SetIconifyCallback(nil)
	w.SetFramebufferSizeCallback(nil)
	w.SetMouseButtonCallback(nil)
	w.SetCursorPosCallback(nil)
	w.SetCursorEnterCallback(nil)
	w.SetScrollCallback(nil)
	w.SetKeyCallback(nil)
	w.SetCharModsCallback(nil)
	w.SetDropCallback(nil)
	q.logger.Debug("untracked window %s", w.ID())
}

func (q *Queue) header(w window.Window) event.Header {
	return event.Header{Win: w, At: q.clock.Now()}
}

func (q *Queue) add(ev event.Event) {
	if err := q.Push(ev); err != nil {
		event.Release(ev)
		q.report(err)
	}
}

func (q *Queue) ignore(callback string, action window.Action) {
	q.stats.Ignored++
	err := &ActionError{Callback: callback, Action: int(action)}
	q.logger.Debug("%v", err)
	if q.onError != nil {
		q.onError(err)
	}
}

func (q *Queue) onPos(w window.Window, x, y int) {
	q.add(event.WindowMoved{
		Header:   q.header(w),
		Position: event.Position{X: float64(x), Y: float64(y)},
	})
}

func (q *Queue) onSize(w window.Window, width, height int) {
	q.add(event.WindowResized{
		Header: q.header(w),
		Size:   event.Size{Width: width, Height: height},
	})
}

func (q *Queue) onClose(w window.Window) {
	q.add(event.WindowClosed{Header: q.header(w)})
}

func (q *Queue) onRefresh(w window.Window) {
	q.add(event.WindowRefreshRequested{Header: q.header(w)})
}

func (q *Queue) onFocus(w window.Window, focused bool) {
	if focused {
		q.add(event.WindowFocused{Header: q.header(w)})
	} else {
		q.add(event.WindowDefocused{Header: q.header(w)})
	}
}

func (q *Queue) onIconify(w window.Window, iconified bool) {
	if iconified {
		q.add(event.WindowIconified{Header: q.header(w)})
	} else {
		q.add(event.WindowRestored{Header: q.header(w)})
	}
}

func (q *Queue) onFramebufferSize(w window.Window, width, height int) {
	q.add(event.FramebufferResized{
		Header: q.header(w),
		Size:   event.Size{Width: width, Height: height},
	})
}

func (q *Queue) onMouseButton(w window.Window, button window.MouseButton, action window.Action, mods window.ModifierKey) {
	click := event.ButtonClick{Button: int(button), Mods: int(mods)}
	switch action {
	case window.ActionPress:
		q.add(event.MouseButtonPressed{Header: q.header(w), ButtonClick: click})
	case window.ActionRelease:
		q.add(event.MouseButtonReleased{Header: q.header(w), ButtonClick: click})
	default:
		q.ignore("mouse button", action)
	}
}

func (q *Queue) onCursorPos(w window.Window, x, y float64) {
	q.add(event.CursorMoved{
		Header:   q.header(w),
		Position: event.Position{X: x, Y: y},
	})
}

func (q *Queue) onCursorEnter(w window.Window, entered bool) {
	if entered {
		q.add(event.CursorEntered{Header: q.header(w)})
	} else {
		q.add(event.CursorLeft{Header: q.header(w)})
	}
}

func (q *Queue) onScroll(w window.Window, xoff, yoff float64) {
	q.add(event.Scrolled{
		Header:   q.header(w),
		Position: event.Position{X: xoff, Y: yoff},
	})
}

func (q *Queue) onKey(w window.Window, key window.Key, scancode int, action window.Action, mods window.ModifierKey) {
	stroke := event.KeyStroke{Key: int(key), Scancode: scancode, Mods: int(mods)}
	switch action {
	case window.ActionPress:
		q.add(event.KeyPressed{Header: q.header(w), KeyStroke: stroke})
	case window.ActionRepeat:
		q.add(event.KeyRepeated{Header: q.header(w), KeyStroke: stroke})
	case window.ActionRelease:
		q.add(event.KeyReleased{Header: q.header(w), KeyStroke: stroke})
	default:
		q.ignore("key", action)
	}
}

func (q *Queue) onCharMods(w window.Window, char rune, mods window.ModifierKey) {
	q.add(event.CharacterInput{
		Header: q.header(w),
		Char:   event.Char{Codepoint: char, Mods: int(mods)},
	})
}

// onDrop copies names because the window reuses them after the callback returns.
func (q *Queue) onDrop(w window.Window, names []string) {
	q.add(event.FilesDropped{
		Header:   q.header(w),
		FileDrop: event.FileDrop{Paths: event.CopyPaths(names)},
	})
}
