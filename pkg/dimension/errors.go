package dimension

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is matched by every dimension mismatch.
	ErrIncompatible = errors.New("incompatible dimensions")
	// ErrIllFormed is matched by every structurally invalid power or unit.
	ErrIllFormed = errors.New("ill-formed unit")
)

// MismatchError reports an operation between two non-equivalent units.
type MismatchError struct {
	Op    string
	Left  Unit
	Right Unit
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cannot %s: dimension %s is not %s", e.Op, e.Left, e.Right)
}

func (e *MismatchError) Unwrap() error { return ErrIncompatible }

func NewMismatchError(op string, left, right Unit) *MismatchError {
	return &MismatchError{Op: op, Left: left, Right: right}
}

// IllFormedError reports a power or unit that violates the data model.
type IllFormedError struct {
	Reason string
}

func (e *IllFormedError) Error() string {
	return fmt.Sprintf("ill-formed unit: %s", e.Reason)
}

func (e *IllFormedError) Unwrap() error { return ErrIllFormed }

func NewIllFormedError(reason string) *IllFormedError {
	return &IllFormedError{Reason: reason}
}
