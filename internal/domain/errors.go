// Error taxonomy shared by the services, repositories and the HTTP layer.
// Typed errors let handlers map failures onto distinct responses: a
// ValidationError is a bad input, a ReferentialError a missing referenced
// entity, a StorageError a rejected or failed store operation, and
// ErrNotConfirmed the normal outcome of a declined confirmation.

package domain

import (
	"errors"
	"fmt"
)

// ErrNotConfirmed reports that the confirmation step returned a negative
// decision. The staged write is rolled back; this is not a system failure.
var ErrNotConfirmed = errors.New("entry not confirmed")

// ValidationError reports an input that violates a business rule. It is
// always raised before any storage write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ReferentialError reports a referenced entity that does not exist.
type ReferentialError struct {
	Entity string
	Key    string
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Entity, e.Key)
}

// StorageError wraps a failure from the underlying store. Any staged write
// has been rolled back by the time it is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
