package pipeline

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewError(t *testing.T) {
	if err := NewError(KindLoad, nil); err != nil {
		t.Errorf("NewError with nil err = %v, want nil", err)
	}

	base := errors.New("connection refused")
	err := NewError(KindConnection, base)
	if err == nil {
		t.Fatal("NewError returned nil")
	}
	if !errors.Is(err, base) {
		t.Error("Wrapped error not reachable via errors.Is")
	}

	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatal("errors.As failed")
	}
	if pe.Kind != KindConnection {
		t.Errorf("Kind = %q, want %q", pe.Kind, KindConnection)
	}
}

func TestIsKind(t *testing.T) {
	err := NewError(KindSchema, errors.New("relation already exists"))

	if !IsKind(err, KindSchema) {
		t.Error("IsKind(KindSchema) = false, want true")
	}
	if IsKind(err, KindLoad) {
		t.Error("IsKind(KindLoad) = true, want false")
	}
	if IsKind(nil, KindSchema) {
		t.Error("IsKind(nil) = true, want false")
	}

	// Wrapped deeper, the kind must still be found.
	wrapped := fmt.Errorf("run failed: %w", err)
	if !IsKind(wrapped, KindSchema) {
		t.Error("IsKind through wrapping = false, want true")
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewError(KindLoad, errors.New("duplicate key"))
	want := "load error: duplicate key"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
