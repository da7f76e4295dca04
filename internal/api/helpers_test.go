package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaldroniya/crudSonarCube/internal/api/shared"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCarRouter mounts h on the same paths the server uses.
func newCarRouter(h *CarHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/car", func(r chi.Router) {
		r.Get("/", h.ListCars)
		r.Post("/", h.CreateCar)
		r.Get("/findBySomeFields", h.FindBySomeFields)
		r.Get("/findByCustomQuery", h.FindByCustomQuery)
		r.Get("/findByCustomQueryV2", h.FindByCustomQueryV2)
		r.Get("/{id}", h.GetCar)
		r.Put("/{id}", h.UpdateCar)
		r.Patch("/{id}/status", h.UpdateCarStatus)
		r.Delete("/{id}", h.DeleteCar)
	})
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeErrorDetails(t *testing.T, w *httptest.ResponseRecorder) shared.ErrorDetails {
	t.Helper()

	var details shared.ErrorDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details), w.Body.String())
	return details
}
