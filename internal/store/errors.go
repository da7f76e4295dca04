package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by every store implementation. Callers test for
// them with errors.Is; the entity-specific errors wrap the generic ones.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicate     = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrCarNotFound is returned when no car has the requested ID.
	ErrCarNotFound = fmt.Errorf("%w: car", ErrNotFound)
	// ErrLookupNotFound is returned when no make, feature or body style has
	// the requested ID or name.
	ErrLookupNotFound = fmt.Errorf("%w: lookup", ErrNotFound)
	// ErrNameExists is returned when a lookup name is already taken.
	ErrNameExists = fmt.Errorf("%w: name", ErrDuplicate)
)

// IsNotFoundError reports whether err wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err wraps ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError records which table and operation failed.
type StoreError struct {
	Entity    string // table, e.g. "car" or "car_make"
	Operation string // e.g. "create", "search"
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
