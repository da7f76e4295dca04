package store

import (
	"context"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
)

// LookupStore defines the persistence interface shared by makes, features and
// body styles. One instance serves one kind. Soft-deleted records remain
// visible to every read method.
type LookupStore interface {
	// Kind reports which lookup entity this store persists.
	Kind() domain.LookupKind

	// List returns every record ordered by ID.
	List(ctx context.Context) ([]*domain.Lookup, error)

	// GetByID retrieves a record by its ID.
	// Returns ErrLookupNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Lookup, error)

	// GetByName retrieves a record by exact, case-sensitive name.
	// Returns ErrLookupNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Lookup, error)

	// Create inserts a record and sets lookup.ID.
	// Returns ErrNameExists if the name is taken.
	Create(ctx context.Context, lookup *domain.Lookup) error

	// Update persists name, active flag and timestamps of an existing record.
	// Returns ErrLookupNotFound if it does not exist, ErrNameExists if the new
	// name is held by another record.
	Update(ctx context.Context, lookup *domain.Lookup) error
}
