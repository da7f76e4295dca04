// Package service provides the catalog use cases: car management and search,
// and management of the make, feature and body style lookups.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Business rule violations are returned as domain errors (NotFound, InvalidRequest, ...)
// 2. Unexpected store failures are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps domain errors to HTTP status codes and error bodies
var (
	// ErrNilDependency is returned by constructors given a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)

// ServiceError is a custom error type for unexpected service failures.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func nilDependency(name string) error {
	return fmt.Errorf("%w: %s", ErrNilDependency, name)
}
