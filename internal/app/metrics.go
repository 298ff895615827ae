package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/inputq/internal/event"
)

// Metrics tracks what the drain loop handled. Counters are atomic so a
// snapshot may be taken from another goroutine.
type Metrics struct {
	batches atomic.Uint64
	events  atomic.Uint64
	byKind  []atomic.Uint64

	latencyTotalNs atomic.Int64
	latencyMaxNs   atomic.Int64

	queueErrors  atomic.Uint64
	scriptErrors atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		byKind:    make([]atomic.Uint64, len(event.Kinds())+1),
		startTime: time.Now(),
	}
}

// RecordBatch records one drain pass that handled n events.
func (m *Metrics) RecordBatch(n int) {
	if n > 0 {
		m.batches.Add(1)
	}
}

// RecordEvent records a handled event and how long it waited in the queue.
func (m *Metrics) RecordEvent(k event.Kind, latency time.Duration) {
	m.events.Add(1)
	if int(k) >= 0 && int(k) < len(m.byKind) {
		m.byKind[k].Add(1)
	}

	ns := latency.Nanoseconds()
	if ns < 0 {
		ns = 0
	}
	m.latencyTotalNs.Add(ns)
	for {
		old := m.latencyMaxNs.Load()
		if ns <= old {
			break
		}
		if m.latencyMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordQueueError records a push failure reported by the queue.
func (m *Metrics) RecordQueueError() {
	m.queueErrors.Add(1)
}

// RecordScriptError records a failed on_event call.
func (m *Metrics) RecordScriptError() {
	m.scriptErrors.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Batches      uint64
	Events       uint64
	ByKind       map[event.Kind]uint64
	AvgLatency   time.Duration
	MaxLatency   time.Duration
	QueueErrors  uint64
	ScriptErrors uint64
	Uptime       time.Duration
}

// Snapshot returns the current values. ByKind holds only kinds seen at
// least once.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Batches:      m.batches.Load(),
		Events:       m.events.Load(),
		ByKind:       make(map[event.Kind]uint64),
		MaxLatency:   time.Duration(m.latencyMaxNs.Load()),
		QueueErrors:  m.queueErrors.Load(),
		ScriptErrors: m.scriptErrors.Load(),
		Uptime:       time.Since(m.startTime),
	}
	if s.Events > 0 {
		s.AvgLatency = time.Duration(m.latencyTotalNs.Load() / int64(s.Events))
	}
	for i := range m.byKind {
		if n := m.byKind[i].Load(); n > 0 {
			s.ByKind[event.Kind(i)] = n
		}
	}
	return s
}
