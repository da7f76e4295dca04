package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kevinaldroniya/crudSonarCube/internal/platform/logger"
	"github.com/kevinaldroniya/crudSonarCube/internal/redact"
)

// ErrorDetails defines the body of every error response.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	// Status is the HTTP status code as a string, e.g. "404".
	Status string `json:"status"`
	// Error is the HTTP reason phrase.
	Error string `json:"error"`
	// Message names the error category.
	Message string `json:"message"`
	// Details is the specific, human-readable cause.
	Details   string `json:"details"`
	Path      string `json:"path"`
	Exception string `json:"exception"`
}

// NewErrorDetails fills in the status, reason phrase and path for r.
func NewErrorDetails(r *http.Request, status int, message, details, exception string) ErrorDetails {
	return ErrorDetails{
		Timestamp: time.Now().UTC(),
		Status:    fmt.Sprintf("%d", status),
		Error:     http.StatusText(status),
		Message:   message,
		Details:   details,
		Path:      r.URL.Path,
		Exception: exception,
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithText writes a plain-text response, used for confirmation messages.
func RespondWithText(w http.ResponseWriter, r *http.Request, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		logger.FromContext(r.Context()).Error("failed to write text response",
			slog.String("error", err.Error()))
	}
}

// RespondWithErrorAndLog writes body as a JSON error response and logs the
// underlying error, which never reaches the client unless it is already part
// of body.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: Logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	body ErrorDetails,
	err error,
) {
	traceID := logger.TraceIDFromContext(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", body.Message),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, body)
}
