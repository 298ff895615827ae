package report

import (
	"fmt"
	"io"
	"time"

	"github.com/tidwall/sjson"

	"github.com/dshills/inputq/internal/event"
)

// JSONWriter writes one JSON object per event, in the JSON Lines layout
// window.LoadReplayJSON reads back. Field names match the YAML scenario.
type JSONWriter struct {
	w io.Writer
	n int
}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write encodes ev as a single line.
func (j *JSONWriter) Write(ev event.Event) error {
	line, err := MarshalRecord(event.ToRecord(ev))
	if err != nil {
		return err
	}
	line = append(line, '\n')
	if _, err := j.w.Write(line); err != nil {
		return err
	}
	j.n++
	return nil
}

// Len returns the number of lines written.
func (j *JSONWriter) Len() int {
	return j.n
}

// Close does nothing; every line is written as it arrives.
func (j *JSONWriter) Close() error {
	return nil
}

// MarshalRecord encodes rec as a JSON object, omitting zero fields.
func MarshalRecord(rec event.Record) ([]byte, error) {
	type field struct {
		path  string
		value any
		set   bool
	}
	fields := []field{
		{"kind", rec.Kind, true},
		{"window", rec.Window, rec.Window != ""},
		{"time", rec.Time.Format(time.RFC3339Nano), !rec.Time.IsZero()},
		{"x", rec.X, rec.X != 0},
		{"y", rec.Y, rec.Y != 0},
		{"width", rec.Width, rec.Width != 0},
		{"height", rec.Height, rec.Height != 0},
		{"key", rec.Key, rec.Key != 0},
		{"scancode", rec.Scancode, rec.Scancode != 0},
		{"button", rec.Button, rec.Button != 0},
		{"codepoint", rec.Codepoint, rec.Codepoint != 0},
		{"mods", rec.Mods, rec.Mods != 0},
		{"paths", rec.Paths, len(rec.Paths) > 0},
	}

	var (
		out []byte
		err error
	)
	for _, f := range fields {
		if !f.set {
			continue
		}
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", f.path, err)
		}
	}
	return out, nil
}
