package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for event records.
var (
	// ErrUnknownKind is returned when a kind name or value does not map to an event.
	ErrUnknownKind = errors.New("unknown event kind")

	// ErrMissingPayload is returned when a record lacks the payload its kind requires.
	ErrMissingPayload = errors.New("missing event payload")
)

// KindError reports a kind name that could not be parsed.
type KindError struct {
	Name string
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("unknown event kind %q", e.Name)
}

// Unwrap returns ErrUnknownKind so callers can match with errors.Is.
func (e *KindError) Unwrap() error {
	return ErrUnknownKind
}
