package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure by the contract it broke.
type Kind string

const (
	// KindConfig marks missing or unreadable configuration/credentials.
	KindConfig Kind = "config"

	// KindConnection marks an unreachable warehouse.
	KindConnection Kind = "connection"

	// KindSchema marks a DDL application failure.
	KindSchema Kind = "schema"

	// KindLoad marks an insert or commit failure within a load phase.
	KindLoad Kind = "load"
)

// Error wraps a phase failure with its kind. Every kind is terminal for the
// run: the pipeline reports the condition and halts before any phase that
// depends on the failed phase's effects.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as a pipeline error of the given kind. Returns nil for
// a nil err.
func NewError(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// IsKind reports whether err is a pipeline error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
