package window

import "testing"

func TestNullWindowID(t *testing.T) {
	a := NewNullWindow()
	b := NewNullWindow()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}

	w := NewNullWindowWithID("main")
	if w.ID() != "main" {
		t.Errorf("ID() = %q, want main", w.ID())
	}
}

func TestNullWindowFiresCallbacks(t *testing.T) {
	w := NewNullWindow()
	var got []string

	w.SetPosCallback(func(_ Window, x, y int) { got = append(got, "pos") })
	w.SetSizeCallback(func(_ Window, width, height int) { got = append(got, "size") })
	w.SetCloseCallback(func(Window) { got = append(got, "close") })
	w.SetRefreshCallback(func(Window) { got = append(got, "refresh") })
	w.SetFocusCallback(func(_ Window, focused bool) { got = append(got, "focus") })
	w.SetIconifyCallback(func(_ Window, iconified bool) { got = append(got, "iconify") })
	w.SetFramebufferSizeCallback(func(_ Window, width, height int) { got = append(got, "framebuffer") })
	w.SetMouseButtonCallback(func(Window, MouseButton, Action, ModifierKey) { got = append(got, "button") })
	w.SetCursorPosCallback(func(_ Window, x, y float64) { got = append(got, "cursor") })
	w.SetCursorEnterCallback(func(_ Window, entered bool) { got = append(got, "enter") })
	w.SetScrollCallback(func(_ Window, x, y float64) { got = append(got, "scroll") })
	w.SetKeyCallback(func(Window, Key, int, Action, ModifierKey) { got = append(got, "key") })
	w.SetCharModsCallback(func(Window, rune, ModifierKey) { got = append(got, "char") })
	w.SetDropCallback(func(Window, []string) { got = append(got, "drop") })

	if n := w.Registered(); n != 14 {
		t.Fatalf("Registered() = %d, want 14", n)
	}

	w.Move(1, 2)
	w.Resize(3, 4)
	w.Close()
	w.Refresh()
	w.Focus(true)
	w.Iconify(true)
	w.ResizeFramebuffer(5, 6)
	w.MouseButton(MouseButtonLeft, ActionPress, ModNone)
	w.MoveCursor(1, 1)
	w.EnterCursor(true)
	w.Scroll(0, 1)
	w.Key(KeyA, 0, ActionPress, ModNone)
	w.Char('a', ModNone)
	w.Drop([]string{"x"})

	want := []string{"pos", "size", "close", "refresh", "focus", "iconify", "framebuffer",
		"button", "cursor", "enter", "scroll", "key", "char", "drop"}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("callback %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNullWindowUnregistered(t *testing.T) {
	w := NewNullWindow()
	called := false
	w.SetKeyCallback(func(Window, Key, int, Action, ModifierKey) { called = true })
	w.SetKeyCallback(nil)

	w.Key(KeyA, 0, ActionPress, ModNone)
	w.Drop(nil)

	if called {
		t.Error("removed callback should not be called")
	}
	if w.Registered() != 0 {
		t.Errorf("Registered() = %d, want 0", w.Registered())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionRelease, "release"},
		{ActionPress, "press"},
		{ActionRepeat, "repeat"},
		{Action(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestModifierKeyHas(t *testing.T) {
	m := ModShift | ModAlt
	if !m.Has(ModShift) || !m.Has(ModAlt) {
		t.Error("mask should contain shift and alt")
	}
	if m.Has(ModControl) {
		t.Error("mask should not contain control")
	}
}
