// Package store persists a validated dataset in PostgreSQL and exposes the
// connection handling shared by the load and query phases.
package store

import (
	"errors"
	"fmt"
)

// ErrSchemaConflict signals that the database already holds dataset tables
// and the caller did not ask to replace them. Retrying without an explicit
// reset cannot succeed.
var ErrSchemaConflict = errors.New("schema conflict")

// UnavailableError wraps a store connectivity or execution failure. It is the
// one retryable error class; the caller decides whether to retry.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func unavailable(op string, err error) error {
	return &UnavailableError{Op: op, Err: err}
}
