package queue

import (
	"errors"
	"fmt"

	"github.com/dshills/inputq/internal/event"
)

// Sentinel errors for the event queue.
var (
	// ErrQueueFull is returned when a push would overwrite unread events.
	ErrQueueFull = errors.New("event queue is full")

	// ErrNilEvent is returned when pushing a nil event.
	ErrNilEvent = errors.New("cannot push nil event")

	// ErrPointerEvent is returned when pushing a pointer to an event struct.
	ErrPointerEvent = errors.New("events must be pushed by value")

	// ErrInvalidCapacity is returned when a queue is configured with fewer than two slots.
	ErrInvalidCapacity = errors.New("queue capacity must be at least 2")

	// ErrUnknownAction is reported when a callback carries an action code
	// that maps to no event kind. Such events are not enqueued.
	ErrUnknownAction = errors.New("unknown action code")
)

// OverflowError describes a rejected push.
type OverflowError struct {
	// Capacity is the queue's slot count; at most Capacity-1 events fit.
	Capacity int

	// Kind is the kind of the event that did not fit.
	Kind event.Kind
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("event queue overflow: %d of %d slots in use, dropped %s",
		e.Capacity-1, e.Capacity, e.Kind)
}

// Unwrap returns ErrQueueFull.
func (e *OverflowError) Unwrap() error {
	return ErrQueueFull
}

// ActionError describes a callback whose action code was not recognized.
type ActionError struct {
	// Callback names the native callback ("key", "mouse button").
	Callback string

	// Action is the unrecognized code.
	Action int
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	return fmt.Sprintf("%s callback: unknown action code %d", e.Callback, e.Action)
}

// Unwrap returns ErrUnknownAction.
func (e *ActionError) Unwrap() error {
	return ErrUnknownAction
}
