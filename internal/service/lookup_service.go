package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/dto"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/logger"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// LookupService manages one kind of lookup: makes, features or body styles.
type LookupService interface {
	// Kind reports which lookup entity the service manages.
	Kind() domain.LookupKind

	// List returns every record, soft-deleted ones included.
	List(ctx context.Context) ([]*dto.LookupResponse, error)

	// Get returns the record with the given ID or a NotFoundError.
	Get(ctx context.Context, id int64) (*dto.LookupResponse, error)

	// Create stores a new active record. Names are unique.
	Create(ctx context.Context, name string) (*dto.LookupResponse, error)

	// Update renames a record. Keeping the current name is allowed; taking
	// the name of another record is not.
	Update(ctx context.Context, id int64, name string) (*dto.LookupResponse, error)

	// Delete soft-deletes a record and returns a confirmation message.
	Delete(ctx context.Context, id int64) (string, error)
}

// lookupServiceImpl implements the LookupService interface
type lookupServiceImpl struct {
	lookups store.LookupStore
	kind    domain.LookupKind
	now     func() time.Time
	logger  *slog.Logger
}

// NewLookupService creates a LookupService for the kind persisted by lookups.
// A nil now defaults to time.Now and a nil logger to slog.Default().
func NewLookupService(
	lookups store.LookupStore,
	now func() time.Time,
	logger *slog.Logger,
) (LookupService, error) {
	if lookups == nil {
		return nil, nilDependency("lookups")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	kind := lookups.Kind()
	return &lookupServiceImpl{
		lookups: lookups,
		kind:    kind,
		now:     now,
		logger: logger.With(
			slog.String("component", "lookup_service"),
			slog.String("kind", kind.Key),
		),
	}, nil
}

// Ensure lookupServiceImpl implements LookupService
var _ LookupService = (*lookupServiceImpl)(nil)

func (s *lookupServiceImpl) Kind() domain.LookupKind {
	return s.kind
}

func (s *lookupServiceImpl) List(ctx context.Context) ([]*dto.LookupResponse, error) {
	lookups, err := s.lookups.List(ctx)
	if err != nil {
		return nil, s.storeFailure(ctx, "list", err)
	}

	responses := make([]*dto.LookupResponse, 0, len(lookups))
	for _, l := range lookups {
		responses = append(responses, toLookupResponse(l))
	}
	return responses, nil
}

func (s *lookupServiceImpl) Get(ctx context.Context, id int64) (*dto.LookupResponse, error) {
	lookup, err := s.get(ctx, "get", id)
	if err != nil {
		return nil, err
	}
	return toLookupResponse(lookup), nil
}

func (s *lookupServiceImpl) Create(ctx context.Context, name string) (*dto.LookupResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lookup, err := domain.NewLookup(name, s.now())
	if err != nil {
		return nil, err
	}

	// Fast path for a friendly message; the unique constraint decides races
	if taken, err := s.nameHolder(ctx, "create", name); err != nil {
		return nil, err
	} else if taken != nil {
		return nil, s.nameExists(name)
	}

	if err := s.lookups.Create(ctx, lookup); err != nil {
		if store.IsDuplicateError(err) {
			return nil, s.nameExists(name)
		}
		return nil, s.storeFailure(ctx, "create", err)
	}

	log.Info("lookup created",
		slog.Int64("id", lookup.ID),
		slog.String("name", lookup.Name))

	return toLookupResponse(lookup), nil
}

func (s *lookupServiceImpl) Update(ctx context.Context, id int64, name string) (*dto.LookupResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if isBlank(name) {
		return nil, domain.NewInvalidRequestError("'name' must not be empty")
	}

	lookup, err := s.get(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	taken, err := s.nameHolder(ctx, "update", name)
	if err != nil {
		return nil, err
	}
	if taken != nil && taken.ID != id {
		return nil, s.nameExists(name)
	}

	lookup.Rename(name, s.now())

	if err := s.lookups.Update(ctx, lookup); err != nil {
		switch {
		case store.IsDuplicateError(err):
			return nil, s.nameExists(name)
		case store.IsNotFoundError(err):
			return nil, s.notFound(id)
		}
		return nil, s.storeFailure(ctx, "update", err)
	}

	log.Info("lookup renamed", slog.Int64("id", id), slog.String("name", name))

	return toLookupResponse(lookup), nil
}

func (s *lookupServiceImpl) Delete(ctx context.Context, id int64) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lookup, err := s.get(ctx, "delete", id)
	if err != nil {
		return "", err
	}

	lookup.SoftDelete(s.now())

	if err := s.lookups.Update(ctx, lookup); err != nil {
		if store.IsNotFoundError(err) {
			return "", s.notFound(id)
		}
		return "", s.storeFailure(ctx, "delete", err)
	}

	log.Info("lookup soft-deleted", slog.Int64("id", id))

	return fmt.Sprintf("%s successfully deleted!", s.kind.Resource), nil
}

func (s *lookupServiceImpl) get(ctx context.Context, operation string, id int64) (*domain.Lookup, error) {
	lookup, err := s.lookups.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, s.notFound(id)
		}
		return nil, s.storeFailure(ctx, operation, err)
	}
	return lookup, nil
}

// nameHolder returns the record currently named name, or nil if there is none.
func (s *lookupServiceImpl) nameHolder(ctx context.Context, operation, name string) (*domain.Lookup, error) {
	lookup, err := s.lookups.GetByName(ctx, name)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, s.storeFailure(ctx, operation, err)
	}
	return lookup, nil
}

func (s *lookupServiceImpl) notFound(id int64) error {
	return domain.NewNotFoundError(s.kind.Resource, "id", id)
}

func (s *lookupServiceImpl) nameExists(name string) error {
	return domain.NewAlreadyExistsError(s.kind.Resource, "name", name)
}

func (s *lookupServiceImpl) storeFailure(ctx context.Context, operation string, err error) error {
	logger.FromContextOrDefault(ctx, s.logger).Error("lookup store operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()))
	return NewServiceError(s.kind.Key, operation, "store operation failed", err)
}
