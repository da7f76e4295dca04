package store

import (
	"context"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
)

// CarStore defines the interface for car data persistence.
// Every car returned by a read method has its Make attached.
type CarStore interface {
	// List returns every car ordered by ID. An empty store yields an empty slice.
	List(ctx context.Context) ([]*domain.Car, error)

	// GetByID retrieves a car by its ID.
	// Returns ErrCarNotFound if the car does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Car, error)

	// Create inserts a new car and sets car.ID to the assigned identifier.
	// Returns ErrInvalidEntity if car.MakeID does not reference a stored make.
	Create(ctx context.Context, car *domain.Car) error

	// Update replaces every mutable column of an existing car.
	// Returns ErrCarNotFound if the car does not exist.
	Update(ctx context.Context, car *domain.Car) error

	// UpdateStatus sets only the status and update timestamp of a car.
	// Returns ErrCarNotFound if the car does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.CarStatus, updatedAt int64) error

	// Delete permanently removes a car.
	// Returns ErrCarNotFound if the car does not exist.
	Delete(ctx context.Context, id int64) error

	// Search returns one page of cars matching filter together with the total
	// number of matching cars.
	Search(ctx context.Context, filter CarFilter) ([]*domain.Car, int64, error)
}
