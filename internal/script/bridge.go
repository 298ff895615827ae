package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputq/internal/event"
)

// eventTable converts ev into the table passed to on_event. Payload fields
// use the same names as the YAML record form.
func eventTable(L *lua.LState, ev event.Event) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("kind", lua.LString(event.KindOf(ev).String()))
	if ev == nil {
		return t
	}

	if w := ev.Window(); w != nil {
		t.RawSetString("window", lua.LString(w.ID()))
	}
	if at := ev.Time(); !at.IsZero() {
		t.RawSetString("time", lua.LNumber(float64(at.UnixNano())/1e9))
	}

	switch e := ev.(type) {
	case event.WindowMoved:
		setPosition(t, e.Position)
	case event.CursorMoved:
		setPosition(t, e.Position)
	case event.Scrolled:
		setPosition(t, e.Position)
	case event.WindowResized:
		setSize(t, e.Size)
	case event.FramebufferResized:
		setSize(t, e.Size)
	case event.MouseButtonPressed:
		setButton(t, e.ButtonClick)
	case event.MouseButtonReleased:
		setButton(t, e.ButtonClick)
	case event.KeyPressed:
		setKey(t, e.KeyStroke)
	case event.KeyRepeated:
		setKey(t, e.KeyStroke)
	case event.KeyReleased:
		setKey(t, e.KeyStroke)
	case event.CharacterInput:
		t.RawSetString("codepoint", lua.LNumber(e.Codepoint))
		t.RawSetString("char", lua.LString(string(e.Codepoint)))
		t.RawSetString("mods", lua.LNumber(e.Mods))
	case event.FilesDropped:
		paths := L.CreateTable(len(e.Paths), 0)
		for _, p := range e.Paths {
			paths.Append(lua.LString(p))
		}
		t.RawSetString("paths", paths)
		t.RawSetString("count", lua.LNumber(e.Count()))
	}
	return t
}

func setPosition(t *lua.LTable, p event.Position) {
	t.RawSetString("x", lua.LNumber(p.X))
	t.RawSetString("y", lua.LNumber(p.Y))
}

func setSize(t *lua.LTable, s event.Size) {
	t.RawSetString("width", lua.LNumber(s.Width))
	t.RawSetString("height", lua.LNumber(s.Height))
}

func setButton(t *lua.LTable, b event.ButtonClick) {
	t.RawSetString("button", lua.LNumber(b.Button))
	t.RawSetString("mods", lua.LNumber(b.Mods))
}

func setKey(t *lua.LTable, k event.KeyStroke) {
	t.RawSetString("key", lua.LNumber(k.Key))
	t.RawSetString("scancode", lua.LNumber(k.Scancode))
	t.RawSetString("mods", lua.LNumber(k.Mods))
}
