package config

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned by LoadFile for a missing file.
	ErrFileNotFound = errors.New("config file not found")

	// ErrValidationFailed indicates a setting holds an unusable value.
	ErrValidationFailed = errors.New("validation failed")
)

// ParseError locates a TOML decoding failure. Line and Column are zero
// when the decoder did not report a position.
type ParseError struct {
	Source       string
	Line, Column int
	// Key is the dotted setting name for unknown settings.
	Key string
	Err error
}

func (e *ParseError) Error() string {
	loc := e.Source
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", e.Source, e.Line, e.Column)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s: unknown setting %s", loc, e.Key)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError describes a setting that failed validation.
type ValidationError struct {
	// Setting is the dotted name of the setting, e.g. "queue.capacity".
	Setting string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Setting, e.Value, e.Message)
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
