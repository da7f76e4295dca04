package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/kevinaldroniya/crudSonarCube/internal/api"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/logger"
)

// NewRecoverMiddleware turns a handler panic into a 500 ErrorDetails
// response. http.ErrAbortHandler is re-raised so the server can abort the
// connection as usual.
func NewRecoverMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// ALLOW-PANIC
					panic(rec)
				}

				logger.FromContextOrDefault(r.Context(), base).Error("handler panicked",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))

				api.HandleAPIError(w, r, fmt.Errorf("recovered from panic: %v", rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
