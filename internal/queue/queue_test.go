package queue

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/inputq/internal/event"
)

type testWindow string

func (w testWindow) ID() string { return string(w) }

func key(n int) event.Event {
	return event.KeyPressed{
		Header:    event.Header{Win: testWindow("w")},
		KeyStroke: event.KeyStroke{Key: n},
	}
}

func keyOf(t *testing.T, ev event.Event) int {
	t.Helper()
	kp, ok := ev.(event.KeyPressed)
	if !ok {
		t.Fatalf("event = %T, want KeyPressed", ev)
	}
	return kp.Key
}

func newQueue(t *testing.T, opts ...Option) *Queue {
	t.Helper()
	q, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return q
}

func TestNewDefaults(t *testing.T) {
	q := newQueue(t)
	if q.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", q.Cap(), DefaultCapacity)
	}
	if !q.Empty() || q.Len() != 0 {
		t.Errorf("new queue: Empty() = %v, Len() = %d", q.Empty(), q.Len())
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, n := range []int{-1024, -1, 0, 1} {
		if _, err := New(WithCapacity(n)); !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("New(WithCapacity(%d)) error = %v, want ErrInvalidCapacity", n, err)
		}
	}
	if _, err := New(WithCapacity(2)); err != nil {
		t.Errorf("New(WithCapacity(2)) error = %v", err)
	}
}

func TestNextEventEmpty(t *testing.T) {
	q := newQueue(t, WithCapacity(4))

	for i := 0; i < 3; i++ {
		ev, ok := q.NextEvent()
		if ok || ev != nil {
			t.Fatalf("NextEvent() on empty = %v, %v; want nil, false", ev, ok)
		}
	}
	if q.Stats().Popped != 0 {
		t.Errorf("Popped = %d after empty reads, want 0", q.Stats().Popped)
	}
}

func TestFIFO(t *testing.T) {
	q := newQueue(t, WithCapacity(8))

	for i := 1; i <= 5; i++ {
		if err := q.Push(key(i)); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}
	if q.Len() != 5 {
		t.Errorf("Len() = %d, want 5", q.Len())
	}

	for i := 1; i <= 5; i++ {
		ev, ok := q.NextEvent()
		if !ok {
			t.Fatalf("NextEvent() #%d returned false", i)
		}
		if got := keyOf(t, ev); got != i {
			t.Errorf("NextEvent() #%d key = %d, want %d", i, got, i)
		}
	}
	if _, ok := q.NextEvent(); ok {
		t.Error("expected empty queue after draining")
	}
}

func TestCapacityBoundary(t *testing.T) {
	const capacity = 5
	q := newQueue(t, WithCapacity(capacity))

	for i := 0; i < capacity-1; i++ {
		if err := q.Push(key(i)); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}

	err := q.Push(key(99))
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Push on full queue error = %v, want ErrQueueFull", err)
	}
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("error %T is not *OverflowError", err)
	}
	if oe.Capacity != capacity || oe.Kind != event.KindKeyPressed {
		t.Errorf("OverflowError = %+v", oe)
	}

	if q.Len() != capacity-1 {
		t.Errorf("Len() = %d, want %d", q.Len(), capacity-1)
	}
	for i := 0; i < capacity-1; i++ {
		ev, _ := q.NextEvent()
		if got := keyOf(t, ev); got != i {
			t.Errorf("event %d key = %d, want %d", i, got, i)
		}
	}

	s := q.Stats()
	if s.Dropped != 1 || s.HighWater != capacity-1 {
		t.Errorf("Stats() = %+v, want Dropped 1, HighWater %d", s, capacity-1)
	}
}

func TestOverflowDropOldest(t *testing.T) {
	q := newQueue(t, WithCapacity(3), WithOverflowPolicy(OverflowDropOldest))

	paths := []string{"old.txt"}
	dropped := event.FilesDropped{FileDrop: event.FileDrop{Paths: paths}}
	if err := q.Push(dropped); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(key(2)); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(key(3)); err != nil {
		t.Fatalf("Push with drop-oldest failed: %v", err)
	}

	if paths[0] != "" {
		t.Errorf("evicted drop still holds %q", paths[0])
	}
	for _, want := range []int{2, 3} {
		ev, _ := q.NextEvent()
		if got := keyOf(t, ev); got != want {
			t.Errorf("key = %d, want %d", got, want)
		}
	}
	if s := q.Stats(); s.Evicted != 1 || s.Dropped != 0 {
		t.Errorf("Stats() = %+v, want Evicted 1", s)
	}
}

func TestOverflowPanic(t *testing.T) {
	q := newQueue(t, WithCapacity(2), WithOverflowPolicy(OverflowPanic))
	if err := q.Push(key(1)); err != nil {
		t.Fatal(err)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrQueueFull) {
			t.Errorf("recover() = %v, want overflow error", r)
		}
	}()
	_ = q.Push(key(2))
	t.Error("expected panic")
}

func TestPushNil(t *testing.T) {
	q := newQueue(t, WithCapacity(4))
	if err := q.Push(nil); !errors.Is(err, ErrNilEvent) {
		t.Errorf("Push(nil) = %v, want ErrNilEvent", err)
	}
	if !q.Empty() {
		t.Error("nil push changed the queue")
	}
}

func TestPushPointer(t *testing.T) {
	q := newQueue(t, WithCapacity(4))

	var typedNil *event.FilesDropped
	if err := q.Push(typedNil); !errors.Is(err, ErrNilEvent) {
		t.Errorf("Push(typed nil) = %v, want ErrNilEvent", err)
	}
	drop := &event.FilesDropped{FileDrop: event.FileDrop{Paths: []string{"a"}}}
	if err := q.Push(drop); !errors.Is(err, ErrPointerEvent) {
		t.Errorf("Push(&FilesDropped{}) = %v, want ErrPointerEvent", err)
	}
	if !q.Empty() || q.Stats().Pushed != 0 {
		t.Errorf("pointer push changed the queue: Len() = %d", q.Len())
	}
}

func TestWrapAround(t *testing.T) {
	q := newQueue(t, WithCapacity(4))

	next := 0
	want := 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			if err := q.Push(key(next)); err != nil {
				t.Fatalf("round %d push %d: %v", round, i, err)
			}
			next++
		}
		for i := 0; i < 3; i++ {
			ev, ok := q.NextEvent()
			if !ok {
				t.Fatalf("round %d: unexpected empty", round)
			}
			if got := keyOf(t, ev); got != want {
				t.Fatalf("round %d: key = %d, want %d", round, got, want)
			}
			want++
		}
		if _, ok := q.NextEvent(); ok {
			t.Fatalf("round %d: queue not empty", round)
		}
	}
	if !q.Empty() {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestPayloadIndependence(t *testing.T) {
	q := newQueue(t, WithCapacity(4))
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	in := event.CursorMoved{
		Header:   event.Header{Win: testWindow("main"), At: at},
		Position: event.Position{X: 1.5, Y: -2.25},
	}
	if err := q.Push(in); err != nil {
		t.Fatal(err)
	}
	if err := q.Push(event.WindowResized{Size: event.Size{Width: 80, Height: 24}}); err != nil {
		t.Fatal(err)
	}

	ev, ok := q.NextEvent()
	if !ok {
		t.Fatal("NextEvent() returned false")
	}
	got, isCursor := ev.(event.CursorMoved)
	if !isCursor {
		t.Fatalf("event = %T, want CursorMoved", ev)
	}
	if got != in {
		t.Errorf("event = %+v, want %+v", got, in)
	}

	ev, _ = q.NextEvent()
	if _, isCursor := ev.(event.CursorMoved); isCursor {
		t.Error("resize came back as a cursor event")
	}
	if rs := ev.(event.WindowResized); rs.Width != 80 || rs.Height != 24 {
		t.Errorf("resize = %+v", rs)
	}
}

func TestFreeEvent(t *testing.T) {
	q := newQueue(t, WithCapacity(4))

	paths := []string{"a", "b"}
	if err := q.Push(event.FilesDropped{FileDrop: event.FileDrop{Paths: paths}}); err != nil {
		t.Fatal(err)
	}
	ev, _ := q.NextEvent()

	q.FreeEvent(&ev)
	if ev != nil {
		t.Errorf("FreeEvent left %v", ev)
	}
	if paths[0] != "" || paths[1] != "" {
		t.Errorf("paths not released: %q", paths)
	}

	// Second release and nil pointers are no-ops.
	q.FreeEvent(&ev)
	q.FreeEvent(nil)

	ev = key(1)
	q.FreeEvent(&ev)
	if ev != nil {
		t.Errorf("FreeEvent on key left %v", ev)
	}
}

func TestDrainAndClear(t *testing.T) {
	q := newQueue(t, WithCapacity(8))
	for i := 0; i < 4; i++ {
		_ = q.Push(key(i))
	}

	var seen []int
	n := q.Drain(func(ev event.Event) { seen = append(seen, keyOf(t, ev)) })
	if n != 4 || len(seen) != 4 || seen[3] != 3 {
		t.Errorf("Drain() = %d, seen %v", n, seen)
	}

	paths := []string{"x"}
	_ = q.Push(event.FilesDropped{FileDrop: event.FileDrop{Paths: paths}})
	_ = q.Push(key(9))
	if n := q.Clear(); n != 2 {
		t.Errorf("Clear() = %d, want 2", n)
	}
	if paths[0] != "" {
		t.Error("Clear did not release drop payload")
	}
	if !q.Empty() {
		t.Error("queue not empty after Clear")
	}
}

func TestOverflowPolicyNames(t *testing.T) {
	tests := []struct {
		name string
		want OverflowPolicy
		ok   bool
	}{
		{"reject", OverflowReject, true},
		{"", OverflowReject, true},
		{"drop-oldest", OverflowDropOldest, true},
		{"panic", OverflowPanic, true},
		{"overwrite", OverflowReject, false},
	}

	for _, tt := range tests {
		got, ok := ParseOverflowPolicy(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseOverflowPolicy(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
		if tt.ok && tt.name != "" && got.String() != tt.name {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.name)
		}
	}
}

func TestStatsLost(t *testing.T) {
	s := Stats{Dropped: 1, Evicted: 2, Ignored: 3}
	if s.Lost() != 6 {
		t.Errorf("Lost() = %d, want 6", s.Lost())
	}
}
