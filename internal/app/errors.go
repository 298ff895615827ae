package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrInvalidFormat indicates an unsupported output format.
	ErrInvalidFormat = errors.New("invalid output format")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error.
func (e *InitError) Unwrap() error {
	return e.Err
}

// RecoveredPanicError wraps a panic raised while pumping events, such as
// an overflow under the panic policy. Stack is kept for logging and left
// out of the message.
type RecoveredPanicError struct {
	Value any
	Stack string
}

func (e *RecoveredPanicError) Error() string {
	return fmt.Sprintf("event pump panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *RecoveredPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
