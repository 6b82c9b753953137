package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is a normal outcome for single-row lookups and zero-match
// updates. Callers render a fallback view instead of propagating it.
var ErrNotFound = errors.New("record not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StorageError wraps an unexpected persistence failure with the operation
// and table that produced it. The cause is never swallowed.
type StorageError struct {
	Op    string
	Table string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, table string, err error) error {
	return &StorageError{Op: op, Table: table, Err: err}
}

// ValidationError rejects malformed input before it reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
