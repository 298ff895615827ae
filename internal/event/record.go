package event

import (
	"fmt"
	"time"
)

// Record is the flat, serializable form of an event. Only the fields that
// belong to Kind are set; the rest stay at their zero values.
type Record struct {
	Kind   string    `yaml:"kind"`
	Window string    `yaml:"window,omitempty"`
	Time   time.Time `yaml:"time,omitempty"`

	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`

	Key       int  `yaml:"key,omitempty"`
	Scancode  int  `yaml:"scancode,omitempty"`
	Button    int  `yaml:"button,omitempty"`
	Codepoint rune `yaml:"codepoint,omitempty"`
	Mods      int  `yaml:"mods,omitempty"`

	Paths []string `yaml:"paths,omitempty"`
}

// ToRecord flattens ev. A nil event yields a record of kind "none".
func ToRecord(ev Event) Record {
	if ev == nil {
		return Record{Kind: KindNone.String()}
	}

	r := Record{
		Kind: ev.Kind().String(),
		Time: ev.Time(),
	}
	if w := ev.Window(); w != nil {
		r.Window = w.ID()
	}

	switch e := ev.(type) {
	case WindowMoved:
		r.X, r.Y = e.X, e.Y
	case CursorMoved:
		r.X, r.Y = e.X, e.Y
	case Scrolled:
		r.X, r.Y = e.X, e.Y
	case WindowResized:
		r.Width, r.Height = e.Width, e.Height
	case FramebufferResized:
		r.Width, r.Height = e.Width, e.Height
	case KeyPressed:
		r.setKey(e.KeyStroke)
	case KeyRepeated:
		r.setKey(e.KeyStroke)
	case KeyReleased:
		r.setKey(e.KeyStroke)
	case MouseButtonPressed:
		r.Button, r.Mods = e.Button, e.Mods
	case MouseButtonReleased:
		r.Button, r.Mods = e.Button, e.Mods
	case CharacterInput:
		r.Codepoint, r.Mods = e.Codepoint, e.Mods
	case FilesDropped:
		r.Paths = CopyPaths(e.Paths)
	}
	return r
}

func (r *Record) setKey(k KeyStroke) {
	r.Key, r.Scancode, r.Mods = k.Key, k.Scancode, k.Mods
}

// Event rebuilds the event described by r, attributing it to w.
func (r Record) Event(w Window) (Event, error) {
	kind, err := ParseKind(r.Kind)
	if err != nil {
		return nil, err
	}

	h := Header{Win: w, At: r.Time}
	pos := Position{X: r.X, Y: r.Y}
	size := Size{Width: r.Width, Height: r.Height}
	key := KeyStroke{Key: r.Key, Scancode: r.Scancode, Mods: r.Mods}
	button := ButtonClick{Button: r.Button, Mods: r.Mods}

	switch kind {
	case KindWindowMoved:
		return WindowMoved{h, pos}, nil
	case KindWindowResized:
		return WindowResized{h, size}, nil
	case KindWindowClosed:
		return WindowClosed{h}, nil
	case KindWindowRefreshRequested:
		return WindowRefreshRequested{h}, nil
	case KindWindowFocused:
		return WindowFocused{h}, nil
	case KindWindowDefocused:
		return WindowDefocused{h}, nil
	case KindWindowIconified:
		return WindowIconified{h}, nil
	case KindWindowRestored:
		return WindowRestored{h}, nil
	case KindFramebufferResized:
		return FramebufferResized{h, size}, nil
	case KindMouseButtonPressed:
		return MouseButtonPressed{h, button}, nil
	case KindMouseButtonReleased:
		return MouseButtonReleased{h, button}, nil
	case KindCursorMoved:
		return CursorMoved{h, pos}, nil
	case KindCursorEntered:
		return CursorEntered{h}, nil
	case KindCursorLeft:
		return CursorLeft{h}, nil
	case KindScrolled:
		return Scrolled{h, pos}, nil
	case KindKeyPressed:
		return KeyPressed{h, key}, nil
	case KindKeyRepeated:
		return KeyRepeated{h, key}, nil
	case KindKeyReleased:
		return KeyReleased{h, key}, nil
	case KindCharacterInput:
		return CharacterInput{h, Char{Codepoint: r.Codepoint, Mods: r.Mods}}, nil
	case KindFilesDropped:
		if len(r.Paths) == 0 {
			return nil, fmt.Errorf("%s: %w", r.Kind, ErrMissingPayload)
		}
		return FilesDropped{h, FileDrop{Paths: CopyPaths(r.Paths)}}, nil
	default:
		return nil, fmt.Errorf("%q: %w", r.Kind, ErrUnknownKind)
	}
}
