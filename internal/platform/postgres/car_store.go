package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/logger"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// PostgresCarStore implements the store.CarStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCarStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCarStore creates a new PostgreSQL implementation of the CarStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCarStore(db store.DBTX, logger *slog.Logger) *PostgresCarStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCarStore{
		db:     db,
		logger: logger.With(slog.String("component", "car_store")),
	}
}

// Ensure PostgresCarStore implements store.CarStore interface
var _ store.CarStore = (*PostgresCarStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCar reads one carSelect row.
func scanCar(row rowScanner) (*domain.Car, error) {
	var (
		car           domain.Car
		carMake       domain.Lookup
		carUpdatedAt  sql.NullInt64
		makeUpdatedAt sql.NullInt64
		makeDeletedAt sql.NullInt64
	)

	err := row.Scan(
		&car.ID,
		&car.MakeID,
		&car.Model,
		&car.Year,
		&car.Price,
		&car.IsElectric,
		&car.Features,
		&car.EngineSpecs,
		&car.PreviousOwner,
		&car.Warranty,
		&car.MaintenanceDates,
		&car.Dimensions,
		&car.Status,
		&car.CreatedAt,
		&carUpdatedAt,
		&carMake.ID,
		&carMake.Name,
		&carMake.IsActive,
		&carMake.CreatedAt,
		&makeUpdatedAt,
		&makeDeletedAt,
	)
	if err != nil {
		return nil, err
	}

	car.UpdatedAt = nullInt64Ptr(carUpdatedAt)
	carMake.UpdatedAt = nullInt64Ptr(makeUpdatedAt)
	carMake.DeletedAt = nullInt64Ptr(makeDeletedAt)
	car.Make = &carMake

	return &car, nil
}

// scanCars drains rows into a slice. The result is never nil.
func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	cars := []*domain.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cars, nil
}

// List implements store.CarStore.List
func (s *PostgresCarStore) List(ctx context.Context) ([]*domain.Car, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := carSelect + `
		ORDER BY c.id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list cars", slog.String("error", err.Error()))
		return nil, store.NewStoreError("car", "list", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	cars, err := scanCars(rows)
	if err != nil {
		log.Error("failed to scan cars", slog.String("error", err.Error()))
		return nil, store.NewStoreError("car", "list", "scan failed", err)
	}

	log.Debug("listed cars", slog.Int("count", len(cars)))
	return cars, nil
}

// GetByID implements store.CarStore.GetByID
// Returns store.ErrCarNotFound if the car does not exist.
func (s *PostgresCarStore) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving car by ID", slog.Int64("car_id", id))

	query := carSelect + `
		WHERE c.id = $1`

	car, err := scanCar(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("car not found", slog.Int64("car_id", id))
			return nil, store.ErrCarNotFound
		}

		log.Error("failed to get car",
			slog.String("error", err.Error()),
			slog.Int64("car_id", id))
		return nil, store.NewStoreError("car", "get", "query failed", MapError(err))
	}

	return car, nil
}

// Create implements store.CarStore.Create
// Returns store.ErrInvalidEntity if the make reference does not exist.
func (s *PostgresCarStore) Create(ctx context.Context, car *domain.Car) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO car (make_id, model, year, price, is_electric, features, engine_specs,
			previous_owner, warranty, maintenance_dates, dimensions, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		car.MakeID,
		car.Model,
		car.Year,
		car.Price,
		car.IsElectric,
		car.Features,
		car.EngineSpecs,
		car.PreviousOwner,
		car.Warranty,
		car.MaintenanceDates,
		car.Dimensions,
		car.Status,
		car.CreatedAt,
		car.UpdatedAt,
	).Scan(&car.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during car creation",
				slog.String("error", err.Error()),
				slog.Int64("make_id", car.MakeID))
			return fmt.Errorf("%w: make with ID %d not found", store.ErrInvalidEntity, car.MakeID)
		}

		log.Error("failed to create car",
			slog.String("error", err.Error()),
			slog.Int64("make_id", car.MakeID))
		return store.NewStoreError("car", "create", "insert failed", MapError(err))
	}

	log.Info("car created successfully",
		slog.Int64("car_id", car.ID),
		slog.Int64("make_id", car.MakeID),
		slog.String("status", car.Status))
	return nil
}

// Update implements store.CarStore.Update
// Returns store.ErrCarNotFound if the car does not exist.
func (s *PostgresCarStore) Update(ctx context.Context, car *domain.Car) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE car
		SET make_id = $2, model = $3, year = $4, price = $5, is_electric = $6,
			features = $7, engine_specs = $8, previous_owner = $9, warranty = $10,
			maintenance_dates = $11, dimensions = $12, status = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		car.ID,
		car.MakeID,
		car.Model,
		car.Year,
		car.Price,
		car.IsElectric,
		car.Features,
		car.EngineSpecs,
		car.PreviousOwner,
		car.Warranty,
		car.MaintenanceDates,
		car.Dimensions,
		car.Status,
		car.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: make with ID %d not found", store.ErrInvalidEntity, car.MakeID)
		}

		log.Error("failed to update car",
			slog.String("error", err.Error()),
			slog.Int64("car_id", car.ID))
		return store.NewStoreError("car", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCarNotFound); err != nil {
		log.Debug("car not found for update", slog.Int64("car_id", car.ID))
		return err
	}

	log.Info("car updated successfully", slog.Int64("car_id", car.ID))
	return nil
}

// UpdateStatus implements store.CarStore.UpdateStatus
// Returns store.ErrCarNotFound if the car does not exist.
func (s *PostgresCarStore) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.CarStatus,
	updatedAt int64,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE car
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id, string(status), updatedAt)
	if err != nil {
		log.Error("failed to update car status",
			slog.String("error", err.Error()),
			slog.Int64("car_id", id),
			slog.String("status", string(status)))
		return store.NewStoreError("car", "update_status", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCarNotFound); err != nil {
		return err
	}

	log.Info("car status updated",
		slog.Int64("car_id", id),
		slog.String("status", string(status)))
	return nil
}

// Delete implements store.CarStore.Delete
// Returns store.ErrCarNotFound if the car does not exist.
func (s *PostgresCarStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM car WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete car",
			slog.String("error", err.Error()),
			slog.Int64("car_id", id))
		return store.NewStoreError("car", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCarNotFound); err != nil {
		return err
	}

	log.Info("car deleted", slog.Int64("car_id", id))
	return nil
}

// Search implements store.CarStore.Search
// The count and row queries share one predicate builder.
func (s *PostgresCarStore) Search(
	ctx context.Context,
	filter store.CarFilter,
) ([]*domain.Car, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	countQuery, countArgs := buildCarCountQuery(filter)

	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Error("failed to count cars", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("car", "search", "count failed", MapError(err))
	}

	query, args := buildCarSearchQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to search cars", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("car", "search", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	cars, err := scanCars(rows)
	if err != nil {
		log.Error("failed to scan cars", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("car", "search", "scan failed", err)
	}

	log.Debug("searched cars",
		slog.Int("page", filter.Page),
		slog.Int("size", filter.Size),
		slog.Int("returned", len(cars)),
		slog.Int64("total", total))
	return cars, total, nil
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
