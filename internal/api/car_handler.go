package api

import (
	"log/slog"
	"net/http"

	"github.com/kevinaldroniya/crudSonarCube/internal/api/shared"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/logger"
	"github.com/kevinaldroniya/crudSonarCube/internal/service"
)

// CarHandler handles car-related HTTP requests
type CarHandler struct {
	cars   service.CarService
	logger *slog.Logger
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(cars service.CarService, logger *slog.Logger) *CarHandler {
	if cars == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cars cannot be nil for CarHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CarHandler")
	}

	return &CarHandler{
		cars:   cars,
		logger: logger.With(slog.String("component", "car_handler")),
	}
}

// ListCars handles GET /car requests
func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cars)
}

// GetCar handles GET /car/{id} requests
func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	car, err := h.cars.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, car)
}

// CreateCar handles POST /car requests
// The body is validated by the service so that rule violations are
// reported one at a time in a fixed order.
func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CarRequest
	if err := decodeBody(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	car, err := h.cars.Create(r.Context(), &req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("car created", slog.Int64("car_id", car.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, car)
}

// UpdateCar handles PUT /car/{id} requests
func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CarRequest
	if err := decodeBody(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	car, err := h.cars.Update(r.Context(), id, &req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, car)
}

// UpdateCarStatus handles PATCH /car/{id}/status requests
func (h *CarHandler) UpdateCarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CarStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	car, err := h.cars.UpdateStatus(r.Context(), id, req.CarStatus)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, car)
}

// DeleteCar handles DELETE /car/{id} requests
// It permanently removes the car and answers with a plain-text confirmation.
func (h *CarHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	msg, err := h.cars.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithText(w, r, http.StatusOK, msg)
}

// FindBySomeFields handles GET /car/findBySomeFields requests.
// The make parameter must name an existing make exactly.
func (h *CarHandler) FindBySomeFields(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, dto.MakeMatchExact)
}

// FindByCustomQuery handles GET /car/findByCustomQuery requests.
// The make parameter matches any make whose name contains it.
func (h *CarHandler) FindByCustomQuery(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, dto.MakeMatchContains)
}

// FindByCustomQueryV2 handles GET /car/findByCustomQueryV2 requests.
func (h *CarHandler) FindByCustomQueryV2(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, dto.MakeMatchExact)
}

func (h *CarHandler) search(w http.ResponseWriter, r *http.Request, match dto.MakeMatch) {
	params, err := parseSearchParams(r, match)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.cars.Search(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, page)
}
