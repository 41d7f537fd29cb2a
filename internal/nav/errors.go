package nav

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *NavError) by graph, stack and
// controller operations.
var (
	// ErrUnknownDestination indicates a navigation target that is not part
	// of the graph.
	ErrUnknownDestination = errors.New("unknown destination")

	// ErrArgumentMismatch indicates arguments that do not satisfy the
	// destination's schema.
	ErrArgumentMismatch = errors.New("argument mismatch")

	// ErrTargetNotFound indicates a pop-up-to target that is not on the
	// back stack. Popping to an absent target is always an error, never a
	// silent no-op.
	ErrTargetNotFound = errors.New("pop target not found")

	// ErrEmptyStack indicates an operation that would leave the back stack
	// without entries.
	ErrEmptyStack = errors.New("back stack would be empty")

	// ErrInvalidGraph indicates a graph definition that failed validation.
	ErrInvalidGraph = errors.New("invalid navigation graph")
)

// NavError records the operation and destination that failed.
type NavError struct {
	Op   string // navigate, pop, restore, graph
	Dest string // destination id involved, may be empty
	Err  error
}

func (e *NavError) Error() string {
	if e.Dest == "" {
		return fmt.Sprintf("nav: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("nav: %s %q: %v", e.Op, e.Dest, e.Err)
}

func (e *NavError) Unwrap() error {
	return e.Err
}

func newError(op, dest string, err error) *NavError {
	return &NavError{Op: op, Dest: dest, Err: err}
}

// mismatch wraps ErrArgumentMismatch with the offending field.
func mismatch(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrArgumentMismatch, field, fmt.Sprintf(format, args...))
}

// IsUnknownDestination reports whether err was caused by an unregistered target.
func IsUnknownDestination(err error) bool {
	return errors.Is(err, ErrUnknownDestination)
}

// IsArgumentMismatch reports whether err was caused by schema validation.
func IsArgumentMismatch(err error) bool {
	return errors.Is(err, ErrArgumentMismatch)
}
