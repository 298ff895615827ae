package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dshills/inputq/internal/event"
	"github.com/dshills/inputq/internal/window"
)

// YAMLWriter collects events and writes them on Close as a scenario that
// window.LoadReplay accepts.
type YAMLWriter struct {
	w        io.Writer
	scenario window.Scenario
}

// NewYAMLWriter creates a YAMLWriter whose scenario carries name.
func NewYAMLWriter(w io.Writer, name string) *YAMLWriter {
	return &YAMLWriter{w: w, scenario: window.Scenario{Name: name}}
}

// Write records ev. Payload storage is copied, so ev may be released
// afterwards.
func (y *YAMLWriter) Write(ev event.Event) error {
	rec := event.ToRecord(ev)
	rec.Paths = event.CopyPaths(rec.Paths)
	y.scenario.Events = append(y.scenario.Events, rec)
	return nil
}

// Len returns the number of recorded events.
func (y *YAMLWriter) Len() int {
	return len(y.scenario.Events)
}

// Close encodes the scenario.
func (y *YAMLWriter) Close() error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.scenario); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return enc.Close()
}
