package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced identity does not exist.
var ErrNotFound = errors.New("not found")

// ConstraintError reports a uniqueness, foreign-key, or check violation
// surfaced by the database.
type ConstraintError struct {
	Constraint string
	Detail     string
}

func (e *ConstraintError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("constraint violation (%s): %s", e.Constraint, e.Detail)
	}
	return fmt.Sprintf("constraint violation (%s)", e.Constraint)
}

// ConnectionError reports that the database is unreachable.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "database unreachable: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
