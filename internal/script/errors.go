package script

import (
	"errors"
	"fmt"
)

// Errors for script operations.
var (
	// ErrClosed is returned when operating on a closed script.
	ErrClosed = errors.New("script is closed")

	// ErrNoHandler is returned by Handle when the script defines no on_event function.
	ErrNoHandler = errors.New("script defines no on_event function")

	// ErrNotLoaded is returned by Reload before any file was loaded.
	ErrNotLoaded = errors.New("no script file loaded")
)

// ScriptError reports a failure raised while loading or running Lua code.
type ScriptError struct {
	// Source is the file path or "<string>".
	Source string
	// Op is what was being done: "load" or "on_event".
	Op string
	// Err is the underlying Lua error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
