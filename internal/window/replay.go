package window

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dshills/inputq/internal/event"
)

// Scenario is a recorded sequence of events, usually written by the
// inputq YAML dump.
type Scenario struct {
	Name   string         `yaml:"name,omitempty"`
	Events []event.Record `yaml:"events"`
}

// Replay is a window that fires the native callbacks needed to reproduce
// a scenario. The window field of each record is ignored; every callback
// is attributed to the replay window itself.
type Replay struct {
	Callbacks

	id       string
	scenario Scenario
	next     int
}

// NewReplay creates a replay window for a scenario.
func NewReplay(s Scenario) *Replay {
	return &Replay{id: uuid.NewString(), scenario: s}
}

// LoadReplay decodes a YAML scenario.
func LoadReplay(r io.Reader) (*Replay, error) {
	var s Scenario
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return NewReplay(s), nil
		}
		return nil, fmt.Errorf("decoding replay scenario: %w", err)
	}
	return NewReplay(s), nil
}

// ErrInvalidJSON is returned for a JSON Lines scenario with a line that is
// not a JSON object.
var ErrInvalidJSON = errors.New("invalid JSON record")

// LoadReplayJSON decodes a JSON Lines scenario, one record per line, as
// written by the inputq JSON dump. Blank lines are skipped.
func LoadReplayJSON(r io.Reader, name string) (*Replay, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s := Scenario{Name: name}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrInvalidJSON)
		}
		res := gjson.Parse(line)
		if !res.IsObject() {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrInvalidJSON)
		}
		s.Events = append(s.Events, recordFromJSON(res))
	}
	return NewReplay(s), nil
}

func recordFromJSON(res gjson.Result) event.Record {
	rec := event.Record{
		Kind:      res.Get("kind").String(),
		Window:    res.Get("window").String(),
		X:         res.Get("x").Float(),
		Y:         res.Get("y").Float(),
		Width:     int(res.Get("width").Int()),
		Height:    int(res.Get("height").Int()),
		Key:       int(res.Get("key").Int()),
		Scancode:  int(res.Get("scancode").Int()),
		Button:    int(res.Get("button").Int()),
		Codepoint: rune(res.Get("codepoint").Int()),
		Mods:      int(res.Get("mods").Int()),
	}
	if t := res.Get("time"); t.Exists() {
		rec.Time = t.Time()
	}
	res.Get("paths").ForEach(func(_, p gjson.Result) bool {
		rec.Paths = append(rec.Paths, p.String())
		return true
	})
	return rec
}

// LoadReplayFile decodes a scenario from a file. Files ending in .jsonl or
// .json are read as JSON Lines and named after the file; anything else is
// YAML.
func LoadReplayFile(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r *Replay
	switch ext := filepath.Ext(path); ext {
	case ".jsonl", ".json":
		r, err = LoadReplayJSON(f, strings.TrimSuffix(filepath.Base(path), ext))
	default:
		r, err = LoadReplay(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func (r *Replay) ID() string { return r.id }

// Name returns the scenario name.
func (r *Replay) Name() string { return r.scenario.Name }

// Done reports whether every record has been replayed.
func (r *Replay) Done() bool { return r.next >= len(r.scenario.Events) }

// Remaining returns the number of records not yet replayed.
func (r *Replay) Remaining() int { return len(r.scenario.Events) - r.next }

// Rewind restarts the scenario from the first record.
func (r *Replay) Rewind() { r.next = 0 }

// Step replays the next record. It returns false once the scenario is done.
func (r *Replay) Step() (bool, error) {
	if r.Done() {
		return false, nil
	}
	i := r.next
	r.next++
	if err := r.fire(r.scenario.Events[i]); err != nil {
		return true, fmt.Errorf("replay event %d: %w", i, err)
	}
	return true, nil
}

// PollEvents replays every remaining record, stopping at the first error.
func (r *Replay) PollEvents() error {
	for {
		more, err := r.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (r *Replay) fire(rec event.Record) error {
	kind, err := event.ParseKind(rec.Kind)
	if err != nil {
		return err
	}

	mods := ModifierKey(rec.Mods)
	key := Key(rec.Key)
	button := MouseButton(rec.Button)

	switch kind {
	case event.KindWindowMoved:
		r.firePos(r, int(rec.X), int(rec.Y))
	case event.KindWindowResized:
		r.fireSize(r, rec.Width, rec.Height)
	case event.KindWindowClosed:
		r.fireClose(r)
	case event.KindWindowRefreshRequested:
		r.fireRefresh(r)
	case event.KindWindowFocused, event.KindWindowDefocused:
		r.fireFocus(r, kind == event.KindWindowFocused)
	case event.KindWindowIconified, event.KindWindowRestored:
		r.fireIconify(r, kind == event.KindWindowIconified)
	case event.KindFramebufferResized:
		r.fireFramebufferSize(r, rec.Width, rec.Height)
	case event.KindMouseButtonPressed:
		r.fireMouseButton(r, button, ActionPress, mods)
	case event.KindMouseButtonReleased:
		r.fireMouseButton(r, button, ActionRelease, mods)
	case event.KindCursorMoved:
		r.fireCursorPos(r, rec.X, rec.Y)
	case event.KindCursorEntered, event.KindCursorLeft:
		r.fireCursorEnter(r, kind == event.KindCursorEntered)
	case event.KindScrolled:
		r.fireScroll(r, rec.X, rec.Y)
	case event.KindKeyPressed:
		r.fireKey(r, key, rec.Scancode, ActionPress, mods)
	case event.KindKeyRepeated:
		r.fireKey(r, key, rec.Scancode, ActionRepeat, mods)
	case event.KindKeyReleased:
		r.fireKey(r, key, rec.Scancode, ActionRelease, mods)
	case event.KindCharacterInput:
		r.fireCharMods(r, rec.Codepoint, mods)
	case event.KindFilesDropped:
		if len(rec.Paths) == 0 {
			return fmt.Errorf("%s: %w", rec.Kind, event.ErrMissingPayload)
		}
		r.fireDrop(r, rec.Paths)
	default:
		return fmt.Errorf("%q: %w", rec.Kind, event.ErrUnknownKind)
	}
	return nil
}
