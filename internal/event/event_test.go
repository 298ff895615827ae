package event

import (
	"testing"
	"time"
)

type testWindow string

func (w testWindow) ID() string { return string(w) }

func TestEventKinds(t *testing.T) {
	h := Header{Win: testWindow("w1")}

	tests := []struct {
		ev   Event
		want Kind
	}{
		{WindowMoved{Header: h}, KindWindowMoved},
		{WindowResized{Header: h}, KindWindowResized},
		{WindowClosed{h}, KindWindowClosed},
		{WindowRefreshRequested{h}, KindWindowRefreshRequested},
		{WindowFocused{h}, KindWindowFocused},
		{WindowDefocused{h}, KindWindowDefocused},
		{WindowIconified{h}, KindWindowIconified},
		{WindowRestored{h}, KindWindowRestored},
		{FramebufferResized{Header: h}, KindFramebufferResized},
		{MouseButtonPressed{Header: h}, KindMouseButtonPressed},
		{MouseButtonReleased{Header: h}, KindMouseButtonReleased},
		{CursorMoved{Header: h}, KindCursorMoved},
		{CursorEntered{h}, KindCursorEntered},
		{CursorLeft{h}, KindCursorLeft},
		{Scrolled{Header: h}, KindScrolled},
		{KeyPressed{Header: h}, KindKeyPressed},
		{KeyRepeated{Header: h}, KindKeyRepeated},
		{KeyReleased{Header: h}, KindKeyReleased},
		{CharacterInput{Header: h}, KindCharacterInput},
		{FilesDropped{Header: h}, KindFilesDropped},
	}

	for _, tt := range tests {
		if got := tt.ev.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %v, want %v", tt.ev, got, tt.want)
		}
		if got := tt.ev.Window().ID(); got != "w1" {
			t.Errorf("%T.Window().ID() = %q, want w1", tt.ev, got)
		}
	}
}

func TestKindOfNil(t *testing.T) {
	if got := KindOf(nil); got != KindNone {
		t.Errorf("KindOf(nil) = %v, want none", got)
	}
}

func TestKindOfNilPointer(t *testing.T) {
	var drop *FilesDropped
	if k := KindOf(drop); k != KindNone {
		t.Errorf("KindOf(typed nil) = %v, want none", k)
	}
	if k := KindOf(&KeyPressed{}); k != KindKeyPressed {
		t.Errorf("KindOf(&KeyPressed{}) = %v, want key_pressed", k)
	}
}

func TestIsValue(t *testing.T) {
	tests := []struct {
		ev   Event
		want bool
	}{
		{nil, false},
		{KeyPressed{}, true},
		{FilesDropped{}, true},
		{&FilesDropped{}, false},
		{(*WindowClosed)(nil), false},
	}
	for _, tt := range tests {
		if got := IsValue(tt.ev); got != tt.want {
			t.Errorf("IsValue(%T) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestHeaderTime(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := CursorMoved{Header: Header{At: at}, Position: Position{X: 1.5, Y: 2.5}}
	if !ev.Time().Equal(at) {
		t.Errorf("Time() = %v, want %v", ev.Time(), at)
	}
	if ev.X != 1.5 || ev.Y != 2.5 {
		t.Errorf("position = (%v, %v), want (1.5, 2.5)", ev.X, ev.Y)
	}
}

func TestCopyPathsIsIndependent(t *testing.T) {
	src := []string{"a.txt", "b/c.png"}
	owned := CopyPaths(src)

	src[0] = "changed"
	src = src[:0]

	if len(owned) != 2 || owned[0] != "a.txt" || owned[1] != "b/c.png" {
		t.Errorf("CopyPaths result changed with source: %v", owned)
	}
}

func TestCopyPathsEmpty(t *testing.T) {
	if got := CopyPaths(nil); got != nil {
		t.Errorf("CopyPaths(nil) = %v, want nil", got)
	}
}

func TestReleaseClearsPaths(t *testing.T) {
	paths := CopyPaths([]string{"x", "y"})
	ev := FilesDropped{FileDrop: FileDrop{Paths: paths}}

	Release(ev)

	for i, p := range paths {
		if p != "" {
			t.Errorf("paths[%d] = %q after Release, want empty", i, p)
		}
	}
}

func TestReleaseNonOwningIsNoop(t *testing.T) {
	Release(KeyPressed{KeyStroke: KeyStroke{Key: 65}})
	Release(nil)
}

func TestFileDropCount(t *testing.T) {
	fd := FileDrop{Paths: []string{"a", "b", "c"}}
	if fd.Count() != 3 {
		t.Errorf("Count() = %d, want 3", fd.Count())
	}
}
