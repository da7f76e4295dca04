package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kevinaldroniya/crudSonarCube/internal/api/shared"
	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
)

// Error categories reported in ErrorDetails.Message.
const (
	MessageNotFound        = "Resource not found"
	MessageFieldValidation = "Field Validation Error"
	MessageAlreadyExists   = "Resource already exists"
	MessageMalformedBody   = "Malformed JSON request"
	MessageTypeMismatch    = "typeMismatch"
	MessageConversion      = "Resource conversion error"
	MessageMethod          = "Method not allowed"
	MessageInternal        = "Internal error"

	detailsInternal = "An unexpected error occurred"
)

// MalformedBodyError reports a request body that could not be decoded.
// Field is set when the decoder could attribute the failure to one field.
type MalformedBodyError struct {
	Field string
	Err   error
}

func (e *MalformedBodyError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf(
			"Invalid value provided for field '%s'. Please ensure the value is correct and of the right type.",
			e.Field,
		)
	}
	return "Your request could not be processed due to invalid input."
}

func (e *MalformedBodyError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports a path or query parameter of the wrong type.
type TypeMismatchError struct {
	Value        string
	RequiredType string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Failed to convert value : '%s' to required type : '%s'", e.Value, e.RequiredType)
}

// FieldValidationError collects struct-tag violations of a request body.
type FieldValidationError struct {
	Fields []shared.FieldError
}

func (e *FieldValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("'%s' %s", f.Field, f.Message)
	}
	return strings.Join(parts, ", ")
}

// MethodNotAllowedError reports a known path requested with an unsupported
// method.
type MethodNotAllowedError struct {
	Method string
	Path   string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("Request method '%s' is not supported for path '%s'", e.Method, e.Path)
}

// classify maps err onto an HTTP status, an error category and the typed
// error that determined them. Unknown errors are internal.
func classify(err error) (int, string, error) {
	var (
		notFound      *domain.NotFoundError
		invalid       *domain.InvalidRequestError
		alreadyExists *domain.AlreadyExistsError
		conversion    *domain.ConversionError
		malformed     *MalformedBodyError
		mismatch      *TypeMismatchError
		fields        *FieldValidationError
		method        *MethodNotAllowedError
	)

	switch {
	case errors.As(err, &malformed):
		return http.StatusBadRequest, MessageMalformedBody, malformed
	case errors.As(err, &mismatch):
		return http.StatusBadRequest, MessageTypeMismatch, mismatch
	case errors.As(err, &fields):
		return http.StatusBadRequest, MessageFieldValidation, fields
	case errors.As(err, &method):
		return http.StatusMethodNotAllowed, MessageMethod, method
	case errors.As(err, &notFound):
		return http.StatusNotFound, MessageNotFound, notFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest, MessageFieldValidation, invalid
	case errors.As(err, &alreadyExists):
		return http.StatusBadRequest, MessageAlreadyExists, alreadyExists
	case errors.As(err, &conversion):
		return http.StatusInternalServerError, MessageConversion, conversion
	default:
		return http.StatusInternalServerError, MessageInternal, nil
	}
}

// HandleAPIError writes the ErrorDetails response for err. It is the single
// place where errors become HTTP responses. The text of unclassified errors
// is only logged, never sent.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status, message, matched := classify(err)

	details := detailsInternal
	exception := fmt.Sprintf("%T", err)
	if matched != nil {
		details = matched.Error()
		exception = fmt.Sprintf("%T", matched)
	}

	body := shared.NewErrorDetails(r, status, message, details, exception)
	shared.RespondWithErrorAndLog(w, r, status, body, err)
}

// RouteNotFound answers requests that match no route.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, domain.NewNotFoundError("Route", "path", r.URL.Path))
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, &MethodNotAllowedError{Method: r.Method, Path: r.URL.Path})
}
