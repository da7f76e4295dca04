package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to API clients. Every typed error below matches exactly
// one of these through errors.Is.
var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when a request payload violates a business rule.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAlreadyExists is returned when a uniqueness rule would be violated.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrConversion is returned when a record cannot be translated to or from
	// its API representation.
	ErrConversion = errors.New("resource conversion error")
)

// Resource names used in error messages.
const (
	ResourceCar            = "Car"
	ResourceCarDto         = "CarDto"
	ResourceCarDtoResponse = "CarDtoResponse"
)

// NotFoundError reports a missing entity looked up by Field = Value.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%v'", e.Resource, e.Field, e.Value)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidRequestError carries the message of the first violated validation rule.
type InvalidRequestError struct {
	Message string
}

// NewInvalidRequestError creates an InvalidRequestError.
func NewInvalidRequestError(message string) *InvalidRequestError {
	return &InvalidRequestError{Message: message}
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidRequest.
func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// AlreadyExistsError reports that Field = Value is already taken.
type AlreadyExistsError struct {
	Resource string
	Field    string
	Value    any
}

// NewAlreadyExistsError creates an AlreadyExistsError.
func NewAlreadyExistsError(resource, field string, value any) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, Field: field, Value: value}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists with %s : '%v'", e.Resource, e.Field, e.Value)
}

// Is reports whether target is ErrAlreadyExists.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ConversionError reports a failed translation from Source to Target.
// Err holds the underlying encoding error, if any.
type ConversionError struct {
	Source string
	Target string
	Err    error
}

// NewConversionError creates a ConversionError.
func NewConversionError(source, target string, err error) *ConversionError {
	return &ConversionError{Source: source, Target: target, Err: err}
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Error while serializing %s to %s", e.Source, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}
