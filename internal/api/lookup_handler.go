package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaldroniya/crudSonarCube/internal/api/shared"
	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/service"
)

// LookupHandler serves the CRUD endpoints of one lookup kind. The same
// handler type backs /makes, /car-feature and /car-body-style.
type LookupHandler struct {
	lookups service.LookupService
	kind    domain.LookupKind
	logger  *slog.Logger
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(lookups service.LookupService, logger *slog.Logger) *LookupHandler {
	if lookups == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("lookups cannot be nil for LookupHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LookupHandler")
	}

	return &LookupHandler{
		lookups: lookups,
		kind:    lookups.Kind(),
		logger: logger.With(
			slog.String("component", "lookup_handler"),
			slog.String("kind", lookups.Kind().Key),
		),
	}
}

// Routes registers the collection and item routes on r.
func (h *LookupHandler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET requests on the collection
func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	lookups, err := h.lookups.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lookups)
}

// Get handles GET /{id} requests. Soft-deleted records are still returned.
func (h *LookupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lookup, err := h.lookups.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lookup)
}

// Create handles POST requests on the collection
func (h *LookupHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lookup, err := h.lookups.Create(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, lookup)
}

// Update handles PUT /{id} requests
func (h *LookupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lookup, err := h.lookups.Update(r.Context(), id, req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lookup)
}

// Delete handles DELETE /{id} requests
func (h *LookupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	msg, err := h.lookups.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithText(w, r, http.StatusOK, msg)
}

// decodeRequest reads a LookupRequest. Feature endpoints also take the name
// from the "feature" field when "name" is absent.
func (h *LookupHandler) decodeRequest(r *http.Request) (LookupRequest, error) {
	var req LookupRequest
	if err := decodeBody(r, &req); err != nil {
		return req, err
	}
	if h.kind == domain.FeatureKind && req.Name == "" {
		req.Name = req.Feature
	}
	return req, validateBody(&req)
}
