package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/logger"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// CarService provides car management and search.
type CarService interface {
	// List returns every car. One undecodable record fails the whole call.
	List(ctx context.Context) ([]*dto.CarResponse, error)

	// Get returns the car with the given ID or a NotFoundError.
	Get(ctx context.Context, id int64) (*dto.CarResponse, error)

	// Create validates req, resolves its make by name and stores a new
	// active car.
	Create(ctx context.Context, req *dto.CarRequest) (*dto.CarResponse, error)

	// Update validates req and replaces every mutable field of an existing car.
	// The status is kept.
	Update(ctx context.Context, id int64, req *dto.CarRequest) (*dto.CarResponse, error)

	// UpdateStatus moves a car to status. Any status may follow any other.
	UpdateStatus(ctx context.Context, id int64, status domain.CarStatus) (*dto.CarResponse, error)

	// Delete permanently removes a car and returns a confirmation message.
	Delete(ctx context.Context, id int64) (string, error)

	// Search returns one page of cars matching params.
	Search(ctx context.Context, params dto.SearchParams) (*dto.Page[*dto.CarResponse], error)
}

// CarServiceConfig tunes a CarService.
type CarServiceConfig struct {
	DefaultPageSize int
	MaxPageSize     int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

const carServiceName = "car"

// carServiceImpl implements the CarService interface
type carServiceImpl struct {
	cars   store.CarStore
	makes  store.LookupStore
	cfg    CarServiceConfig
	logger *slog.Logger
}

// NewCarService creates a new CarService.
// It returns an error if a store is nil or if makes does not persist car
// makes. A nil logger falls back to slog.Default().
func NewCarService(
	cars store.CarStore,
	makes store.LookupStore,
	cfg CarServiceConfig,
	logger *slog.Logger,
) (CarService, error) {
	if cars == nil {
		return nil, nilDependency("cars")
	}
	if makes == nil {
		return nil, nilDependency("makes")
	}
	if makes.Kind() != domain.MakeKind {
		return nil, fmt.Errorf("makes store persists %q, want %q", makes.Kind().Key, domain.MakeKind.Key)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &carServiceImpl{
		cars:   cars,
		makes:  makes,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "car_service")),
	}, nil
}

// Ensure carServiceImpl implements CarService
var _ CarService = (*carServiceImpl)(nil)

func (s *carServiceImpl) List(ctx context.Context) ([]*dto.CarResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cars, err := s.cars.List(ctx)
	if err != nil {
		log.Error("failed to list cars", slog.String("error", err.Error()))
		return nil, NewServiceError(carServiceName, "list", "failed to list cars", err)
	}

	return toCarResponses(cars, readConversion)
}

func (s *carServiceImpl) Get(ctx context.Context, id int64) (*dto.CarResponse, error) {
	car, err := s.getCar(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	return toCarResponse(car, readConversion)
}

func (s *carServiceImpl) Create(ctx context.Context, req *dto.CarRequest) (*dto.CarResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ValidateCarRequest(req); err != nil {
		log.Debug("car request rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	carMake, err := s.resolveMake(ctx, "create", req.Make)
	if err != nil {
		return nil, err
	}

	car, err := toCarRecord(req, carMake)
	if err != nil {
		return nil, err
	}
	car.Status = string(domain.CarStatusActive)
	car.CreatedAt = s.cfg.Now().UTC().Unix()

	if err := s.cars.Create(ctx, car); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			// The make disappeared between resolution and insert
			return nil, domain.NewNotFoundError(domain.MakeKind.Resource, "make", req.Make)
		}
		log.Error("failed to create car", slog.String("error", err.Error()))
		return nil, NewServiceError(carServiceName, "create", "failed to save car", err)
	}

	log.Info("car created",
		slog.Int64("car_id", car.ID),
		slog.String("make", carMake.Name))

	return toCarResponse(car, writeConversion)
}

func (s *carServiceImpl) Update(ctx context.Context, id int64, req *dto.CarRequest) (*dto.CarResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ValidateCarRequest(req); err != nil {
		log.Debug("car request rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	existing, err := s.getCar(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	carMake, err := s.resolveMake(ctx, "update", req.Make)
	if err != nil {
		return nil, err
	}

	car, err := toCarRecord(req, carMake)
	if err != nil {
		return nil, err
	}
	car.ID = existing.ID
	car.Status = existing.Status
	car.CreatedAt = existing.CreatedAt
	car.Touch(s.cfg.Now())

	if err := s.cars.Update(ctx, car); err != nil {
		return nil, s.mapCarStoreError(ctx, "update", id, err)
	}

	log.Info("car updated", slog.Int64("car_id", id))

	return toCarResponse(car, writeConversion)
}

func (s *carServiceImpl) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CarStatus,
) (*dto.CarResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !status.IsValid() {
		return nil, domain.NewInvalidRequestError(
			fmt.Sprintf("'carStatus' must be one of %s", joinStatuses()))
	}

	car, err := s.getCar(ctx, "update_status", id)
	if err != nil {
		return nil, err
	}

	previous := car.Status
	car.SetStatus(status, s.cfg.Now())

	if err := s.cars.UpdateStatus(ctx, id, status, *car.UpdatedAt); err != nil {
		return nil, s.mapCarStoreError(ctx, "update_status", id, err)
	}

	log.Info("car status changed",
		slog.Int64("car_id", id),
		slog.String("from", previous),
		slog.String("to", string(status)))

	return toCarResponse(car, writeConversion)
}

func (s *carServiceImpl) Delete(ctx context.Context, id int64) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.cars.Delete(ctx, id); err != nil {
		return "", s.mapCarStoreError(ctx, "delete", id, err)
	}

	log.Info("car deleted", slog.Int64("car_id", id))

	return fmt.Sprintf("Car with id: %d deleted successfully", id), nil
}

func (s *carServiceImpl) Search(
	ctx context.Context,
	params dto.SearchParams,
) (*dto.Page[*dto.CarResponse], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	filter := store.CarFilter{
		Model:      params.Model,
		Year:       params.Year,
		IsElectric: params.IsElectric,
		Page:       params.Page,
		Size:       params.Size,
		Sort:       domain.NewCarSort(params.SortBy, params.SortDirection),
	}

	if params.Status != "" {
		status := domain.ParseCarStatusOrDefault(params.Status)
		filter.Status = &status
	}

	if params.Make != "" {
		switch params.MakeMatch {
		case dto.MakeMatchContains:
			filter.MakeName = params.Make
		default:
			carMake, err := s.resolveMake(ctx, "search", params.Make)
			if err != nil {
				return nil, err
			}
			filter.MakeID = &carMake.ID
		}
	}

	filter = filter.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	cars, total, err := s.cars.Search(ctx, filter)
	if err != nil {
		log.Error("failed to search cars", slog.String("error", err.Error()))
		return nil, NewServiceError(carServiceName, "search", "failed to search cars", err)
	}

	content, err := toCarResponses(cars, readConversion)
	if err != nil {
		return nil, err
	}

	log.Debug("car search completed",
		slog.Int("page", filter.Page),
		slog.Int("size", filter.Size),
		slog.Int64("total", total))

	page := dto.NewPage(content, filter.Page, filter.Size, total)
	return &page, nil
}

// getCar loads a car, translating a missing record into a NotFoundError.
func (s *carServiceImpl) getCar(ctx context.Context, operation string, id int64) (*domain.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapCarStoreError(ctx, operation, id, err)
	}
	return car, nil
}

// resolveMake finds a make by exact name regardless of its active flag.
func (s *carServiceImpl) resolveMake(ctx context.Context, operation, name string) (*domain.Lookup, error) {
	carMake, err := s.makes.GetByName(ctx, name)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.NewNotFoundError(domain.MakeKind.Resource, "make", name)
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to resolve make",
			slog.String("make", name),
			slog.String("error", err.Error()))
		return nil, NewServiceError(carServiceName, operation, "failed to resolve make", err)
	}
	return carMake, nil
}

func (s *carServiceImpl) mapCarStoreError(ctx context.Context, operation string, id int64, err error) error {
	if store.IsNotFoundError(err) {
		return domain.NewNotFoundError(domain.ResourceCar, "id", id)
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("car store operation failed",
		slog.String("operation", operation),
		slog.Int64("car_id", id),
		slog.String("error", err.Error()))
	return NewServiceError(carServiceName, operation, "store operation failed", err)
}

func joinStatuses() string {
	names := make([]string, len(domain.CarStatuses))
	for i, status := range domain.CarStatuses {
		names[i] = string(status)
	}
	return strings.Join(names, ", ")
}
