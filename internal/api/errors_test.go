package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaldroniya/crudSonarCube/internal/api/shared"
	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name              string
		err               error
		expectedStatus    int
		expectedMessage   string
		expectedDetails   string
		expectedException string
	}{
		{
			name:              "not found",
			err:               domain.NewNotFoundError("Car", "id", int64(4)),
			expectedStatus:    http.StatusNotFound,
			expectedMessage:   "Resource not found",
			expectedDetails:   "Car not found with id : '4'",
			expectedException: "*domain.NotFoundError",
		},
		{
			name:              "invalid request",
			err:               domain.NewInvalidRequestError("'make' must not be empty"),
			expectedStatus:    http.StatusBadRequest,
			expectedMessage:   "Field Validation Error",
			expectedDetails:   "'make' must not be empty",
			expectedException: "*domain.InvalidRequestError",
		},
		{
			name: "struct validation",
			err: &FieldValidationError{Fields: []shared.FieldError{
				{Field: "name", Message: "must not be empty"},
				{Field: "code", Message: "is invalid"},
			}},
			expectedStatus:    http.StatusBadRequest,
			expectedMessage:   "Field Validation Error",
			expectedDetails:   "'name' must not be empty, 'code' is invalid",
			expectedException: "*api.FieldValidationError",
		},
		{
			name:              "already exists",
			err:               domain.NewAlreadyExistsError("Car Make", "name", "Toyota"),
			expectedStatus:    http.StatusBadRequest,
			expectedMessage:   "Resource already exists",
			expectedDetails:   "Car Make already exists with name : 'Toyota'",
			expectedException: "*domain.AlreadyExistsError",
		},
		{
			name:              "malformed body without field",
			err:               &MalformedBodyError{Err: errors.New("unexpected EOF")},
			expectedStatus:    http.StatusBadRequest,
			expectedMessage:   "Malformed JSON request",
			expectedDetails:   "Your request could not be processed due to invalid input.",
			expectedException: "*api.MalformedBodyError",
		},
		{
			name:              "malformed body with field",
			err:               &MalformedBodyError{Field: "year"},
			expectedStatus:    http.StatusBadRequest,
			expectedMessage:   "Malformed JSON request",
			expectedDetails:   "Invalid value provided for field 'year'. Please ensure the value is correct and of the right type.",
			expectedException: "*api.MalformedBodyError",
		},
		{
			name:              "type mismatch",
			err:               &TypeMismatchError{Value: "abc", RequiredType: "int64"},
			expectedStatus:    http.StatusBadRequest,
			expectedMessage:   "typeMismatch",
			expectedDetails:   "Failed to convert value : 'abc' to required type : 'int64'",
			expectedException: "*api.TypeMismatchError",
		},
		{
			name:              "conversion",
			err:               domain.NewConversionError("Car", "CarDto", errors.New("bad json")),
			expectedStatus:    http.StatusInternalServerError,
			expectedMessage:   "Resource conversion error",
			expectedDetails:   "Error while serializing Car to CarDto",
			expectedException: "*domain.ConversionError",
		},
		{
			name:              "method not allowed",
			err:               &MethodNotAllowedError{Method: http.MethodPost, Path: "/car/4"},
			expectedStatus:    http.StatusMethodNotAllowed,
			expectedMessage:   "Method not allowed",
			expectedDetails:   "Request method 'POST' is not supported for path '/car/4'",
			expectedException: "*api.MethodNotAllowedError",
		},
		{
			name:              "wrapped domain error",
			err:               fmt.Errorf("handler: %w", domain.NewNotFoundError("Car Make", "make", "Unknown")),
			expectedStatus:    http.StatusNotFound,
			expectedMessage:   "Resource not found",
			expectedDetails:   "Car Make not found with make : 'Unknown'",
			expectedException: "*domain.NotFoundError",
		},
		{
			name:              "unexpected error keeps its text private",
			err:               service.NewServiceError("car", "list", "store operation failed", errors.New("pq: relation \"car\" does not exist")),
			expectedStatus:    http.StatusInternalServerError,
			expectedMessage:   "Internal error",
			expectedDetails:   "An unexpected error occurred",
			expectedException: "*service.ServiceError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/car/4", nil)
			w := httptest.NewRecorder()

			HandleAPIError(w, req, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			details := decodeErrorDetails(t, w)
			assert.Equal(t, fmt.Sprintf("%d", tt.expectedStatus), details.Status)
			assert.Equal(t, http.StatusText(tt.expectedStatus), details.Error)
			assert.Equal(t, tt.expectedMessage, details.Message)
			assert.Equal(t, tt.expectedDetails, details.Details)
			assert.Equal(t, tt.expectedException, details.Exception)
			assert.Equal(t, "/car/4", details.Path)
			assert.False(t, details.Timestamp.IsZero())
		})
	}
}

func TestRouterFallbacks(t *testing.T) {
	r := chi.NewRouter()
	r.NotFound(RouteNotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Route("/car", func(r chi.Router) {
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {})
	})

	t.Run("unknown path", func(t *testing.T) {
		w := serve(t, r, http.MethodGet, "/trucks", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		details := decodeErrorDetails(t, w)
		assert.Equal(t, "Route not found with path : '/trucks'", details.Details)
		assert.Equal(t, "/trucks", details.Path)
	})

	t.Run("unsupported method", func(t *testing.T) {
		w := serve(t, r, http.MethodPost, "/car/4", "")

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		details := decodeErrorDetails(t, w)
		assert.Equal(t, "Method not allowed", details.Message)
		assert.Equal(t, "*api.MethodNotAllowedError", details.Exception)
	})
}
