package event

import (
	"errors"
	"testing"
)

func TestKindError(t *testing.T) {
	err := &KindError{Name: "teleported"}

	if err.Error() != `unknown event kind "teleported"` {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Error("expected errors.Is(err, ErrUnknownKind)")
	}
	if errors.Is(err, ErrMissingPayload) {
		t.Error("KindError should not match ErrMissingPayload")
	}
}
