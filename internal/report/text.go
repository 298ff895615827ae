// Package report renders drained events and queue statistics for humans
// and for replay.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/inputq/internal/event"
)

// Describe returns a one-line description of ev. File drops add one
// tab-indented line per path.
func Describe(ev event.Event) string {
	switch e := ev.(type) {
	case event.WindowMoved:
		return fmt.Sprintf("Window moved to (%.0f %.0f)", e.X, e.Y)
	case event.WindowResized:
		return fmt.Sprintf("Window resized to (%d %d)", e.Width, e.Height)
	case event.WindowClosed:
		return "Window close request"
	case event.WindowRefreshRequested:
		return "Window refresh request"
	case event.WindowFocused:
		return "Window focused"
	case event.WindowDefocused:
		return "Window defocused"
	case event.WindowIconified:
		return "Window iconified"
	case event.WindowRestored:
		return "Window restored"
	case event.FramebufferResized:
		return fmt.Sprintf("Framebuffer resized to (%d %d)", e.Width, e.Height)
	case event.MouseButtonPressed:
		return fmt.Sprintf("Button %d pressed", e.Button)
	case event.MouseButtonReleased:
		return fmt.Sprintf("Button %d released", e.Button)
	case event.CursorMoved:
		return fmt.Sprintf("Cursor moved to (%0.2f %0.2f)", e.X, e.Y)
	case event.CursorEntered:
		return "Cursor entered window"
	case event.CursorLeft:
		return "Cursor left window"
	case event.Scrolled:
		return fmt.Sprintf("Scrolled (%0.2f %0.2f)", e.X, e.Y)
	case event.KeyPressed:
		return keyName(e.Key) + " pressed"
	case event.KeyRepeated:
		return keyName(e.Key) + " repeated"
	case event.KeyReleased:
		return keyName(e.Key) + " released"
	case event.CharacterInput:
		return fmt.Sprintf("Character 0x%08x input", e.Codepoint)
	case event.FilesDropped:
		var b strings.Builder
		fmt.Fprintf(&b, "%d files dropped", e.Count())
		for _, p := range e.Paths {
			b.WriteString("\n\t")
			b.WriteString(p)
		}
		return b.String()
	case nil:
		return "No event"
	default:
		return fmt.Sprintf("Unknown event %s", ev.Kind())
	}
}

// keyName formats a key code; negative codes are keys with no mapping.
func keyName(key int) string {
	if key < 0 {
		return "Key unknown"
	}
	return fmt.Sprintf("Key 0x%02x", key)
}

// TextWriter prints one description per event.
type TextWriter struct {
	w        io.Writer
	windowID bool
}

// NewTextWriter creates a TextWriter. When withWindow is set each line is
// prefixed with the originating window's ID.
func NewTextWriter(w io.Writer, withWindow bool) *TextWriter {
	return &TextWriter{w: w, windowID: withWindow}
}

// Write prints ev.
func (t *TextWriter) Write(ev event.Event) error {
	line := Describe(ev)
	if t.windowID && ev != nil && ev.Window() != nil {
		line = "[" + ev.Window().ID() + "] " + line
	}
	_, err := fmt.Fprintln(t.w, line)
	return err
}

// Close is a no-op; it lets TextWriter and YAMLWriter share an interface.
func (t *TextWriter) Close() error { return nil }
