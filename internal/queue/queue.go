// Package queue buffers window and input events in a fixed-capacity ring.
//
// Events are pushed by callback shims registered on a window with
// TrackWindow, and drained by the application with NextEvent:
//
//	q, _ := queue.New()
//	q.TrackWindow(win)
//	for !quit {
//	    win.WaitEvents()
//	    for {
//	        ev, ok := q.NextEvent()
//	        if !ok {
//	            break
//	        }
//	        handle(ev)
//	        q.FreeEvent(&ev)
//	    }
//	}
//
// A Queue is not safe for concurrent use. The goroutine that pumps the
// window's events must be the one that drains the queue, or callers must
// serialize all access themselves.
package queue

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/dshills/inputq/internal/event"
	"github.com/dshills/inputq/internal/logging"
)

// DefaultCapacity is the number of slots in a queue created without
// WithCapacity. At most DefaultCapacity-1 events can be unread at once.
const DefaultCapacity = 1024

// OverflowPolicy selects what Push does when the queue is full.
type OverflowPolicy int

const (
	// OverflowReject leaves the queue unchanged and returns an *OverflowError.
	OverflowReject OverflowPolicy = iota

	// OverflowDropOldest releases and evicts the oldest unread event.
	OverflowDropOldest

	// OverflowPanic panics with an *OverflowError.
	OverflowPanic
)

// String returns the policy name used in configuration.
func (p OverflowPolicy) String() string {
	switch p {
	case OverflowReject:
		return "reject"
	case OverflowDropOldest:
		return "drop-oldest"
	case OverflowPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ParseOverflowPolicy returns the policy with the given name.
func ParseOverflowPolicy(s string) (OverflowPolicy, bool) {
	switch s {
	case "reject", "":
		return OverflowReject, true
	case "drop-oldest":
		return OverflowDropOldest, true
	case "panic":
		return OverflowPanic, true
	}
	return OverflowReject, false
}

// Queue is a fixed-capacity ring buffer of events. head is the next slot
// to write and tail the next to read; head == tail means empty, so one
// slot always stays unused.
type Queue struct {
	events   []event.Event
	capacity int
	head     int
	tail     int

	policy  OverflowPolicy
	clock   clockwork.Clock
	logger  *logging.Logger
	onError func(error)

	stats Stats
}

// Option configures a Queue.
type Option func(*Queue)

// WithCapacity sets the number of slots.
func WithCapacity(n int) Option {
	return func(q *Queue) {
		q.capacity = n
	}
}

// WithOverflowPolicy sets the reaction to a full queue.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(q *Queue) {
		q.policy = p
	}
}

// WithClock sets the clock used to timestamp events built by the shims.
func WithClock(c clockwork.Clock) Option {
	return func(q *Queue) {
		q.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(q *Queue) {
		q.logger = l
	}
}

// WithErrorHandler sets a function that receives push failures from the
// callback shims, which have no caller to return them to.
func WithErrorHandler(fn func(error)) Option {
	return func(q *Queue) {
		q.onError = fn
	}
}

// New creates an empty queue.
func New(opts ...Option) (*Queue, error) {
	q := &Queue{
		capacity: DefaultCapacity,
		policy:   OverflowReject,
		clock:    clockwork.NewRealClock(),
		logger:   logging.NullLogger,
	}
	for _, opt := range opts {
		opt(q)
	}
	if q.capacity < 2 {
		return nil, ErrInvalidCapacity
	}
	q.events = make([]event.Event, q.capacity)
	q.logger = q.logger.WithComponent("queue")
	return q, nil
}

// Cap returns the number of slots. At most Cap()-1 events fit.
func (q *Queue) Cap() int {
	return len(q.events)
}

// Len returns the number of unread events.
func (q *Queue) Len() int {
	return (q.head - q.tail + len(q.events)) % len(q.events)
}

// Empty reports whether there are no unread events.
func (q *Queue) Empty() bool {
	return q.head == q.tail
}

// Push appends ev. When the queue is full the overflow policy decides
// the outcome; unread events are never overwritten silently.
func (q *Queue) Push(ev event.Event) error {
	if event.KindOf(ev) == event.KindNone {
		return ErrNilEvent
	}
	if !event.IsValue(ev) {
		return fmt.Errorf("%w: %T", ErrPointerEvent, ev)
	}

	next := (q.head + 1) % len(q.events)
	if next == q.tail {
		if err := q.overflow(ev); err != nil {
			return err
		}
	}

	q.events[q.head] = ev
	q.head = next

	q.stats.Pushed++
	if n := q.Len(); n > q.stats.HighWater {
		q.stats.HighWater = n
	}
	return nil
}

// overflow applies the policy to a full queue. A nil return means room
// was made for ev.
func (q *Queue) overflow(ev event.Event) error {
	err := &OverflowError{Capacity: len(q.events), Kind: ev.Kind()}

	switch q.policy {
	case OverflowDropOldest:
		oldest := q.events[q.tail]
		q.events[q.tail] = nil
		q.tail = (q.tail + 1) % len(q.events)
		event.Release(oldest)
		q.stats.Evicted++
		q.logger.Debug("evicted %s to make room for %s", event.KindOf(oldest), ev.Kind())
		return nil
	case OverflowPanic:
		panic(err)
	default:
		q.stats.Dropped++
		return err
	}
}

// NextEvent removes and returns the oldest event. It returns false, and
// leaves the queue untouched, when there is nothing to read.
//
// Ownership of the event's storage passes to the caller, who must call
// FreeEvent once done with it.
func (q *Queue) NextEvent() (event.Event, bool) {
	if q.head == q.tail {
		return nil, false
	}

	ev := q.events[q.tail]
	q.events[q.tail] = nil
	q.tail = (q.tail + 1) % len(q.events)
	q.stats.Popped++

	return ev, event.KindOf(ev) != event.KindNone
}

// FreeEvent releases storage owned by *ev and resets it to nil. Calling
// it again on the same variable, or on nil, does nothing.
func (q *Queue) FreeEvent(ev *event.Event) {
	if ev == nil || *ev == nil {
		return
	}
	event.Release(*ev)
	*ev = nil
}

// Drain pops every unread event, passes it to fn and releases it.
// It returns the number of events handled.
func (q *Queue) Drain(fn func(event.Event)) int {
	n := 0
	for {
		ev, ok := q.NextEvent()
		if !ok {
			return n
		}
		fn(ev)
		q.FreeEvent(&ev)
		n++
	}
}

// Clear releases every unread event and returns how many were discarded.
// Call it before dropping a queue that may still hold file drops.
func (q *Queue) Clear() int {
	return q.Drain(func(event.Event) {})
}

// Stats returns a snapshot of the queue counters.
func (q *Queue) Stats() Stats {
	s := q.stats
	s.Queued = q.Len()
	s.Capacity = q.Cap()
	return s
}

// report hands a shim failure to the error handler and the log.
func (q *Queue) report(err error) {
	q.logger.Error("%v", err)
	if q.onError != nil {
		q.onError(err)
	}
}
