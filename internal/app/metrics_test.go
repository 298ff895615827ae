package app

import (
	"testing"
	"time"

	"github.com/dshills/inputq/internal/event"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.RecordBatch(0)
	m.RecordBatch(3)
	m.RecordEvent(event.KindKeyPressed, 2*time.Millisecond)
	m.RecordEvent(event.KindKeyPressed, 4*time.Millisecond)
	m.RecordEvent(event.KindFilesDropped, -time.Millisecond)
	m.RecordQueueError()
	m.RecordScriptError()
	m.RecordScriptError()

	s := m.Snapshot()
	if s.Batches != 1 {
		t.Errorf("Batches = %d, want 1", s.Batches)
	}
	if s.Events != 3 {
		t.Errorf("Events = %d, want 3", s.Events)
	}
	if s.ByKind[event.KindKeyPressed] != 2 || s.ByKind[event.KindFilesDropped] != 1 {
		t.Errorf("ByKind = %v", s.ByKind)
	}
	if _, ok := s.ByKind[event.KindCursorMoved]; ok {
		t.Error("ByKind lists unseen kind")
	}
	if s.MaxLatency != 4*time.Millisecond {
		t.Errorf("MaxLatency = %v, want 4ms", s.MaxLatency)
	}
	if s.AvgLatency != 2*time.Millisecond {
		t.Errorf("AvgLatency = %v, want 2ms", s.AvgLatency)
	}
	if s.QueueErrors != 1 || s.ScriptErrors != 2 {
		t.Errorf("errors = %d / %d, want 1 / 2", s.QueueErrors, s.ScriptErrors)
	}
}
