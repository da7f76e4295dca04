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

// lookupTables maps each lookup kind to its table.
var lookupTables = map[string]string{
	domain.MakeKind.Key:      "car_make",
	domain.FeatureKind.Key:   "car_feature",
	domain.BodyStyleKind.Key: "car_body_style",
}

// PostgresLookupStore implements the store.LookupStore interface for one
// lookup kind using a PostgreSQL database as the storage backend.
type PostgresLookupStore struct {
	db     store.DBTX
	kind   domain.LookupKind
	table  string
	logger *slog.Logger
}

// NewPostgresLookupStore creates a PostgreSQL LookupStore for kind.
// It panics if db is nil or kind has no table.
func NewPostgresLookupStore(db store.DBTX, kind domain.LookupKind, logger *slog.Logger) *PostgresLookupStore {
	if db == nil {
		panic("db cannot be nil")
	}

	table, ok := lookupTables[kind.Key]
	if !ok {
		panic(fmt.Sprintf("unknown lookup kind %q", kind.Key))
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLookupStore{
		db:    db,
		kind:  kind,
		table: table,
		logger: logger.With(
			slog.String("component", "lookup_store"),
			slog.String("table", table),
		),
	}
}

// Ensure PostgresLookupStore implements store.LookupStore interface
var _ store.LookupStore = (*PostgresLookupStore)(nil)

// Kind implements store.LookupStore.Kind
func (s *PostgresLookupStore) Kind() domain.LookupKind {
	return s.kind
}

func (s *PostgresLookupStore) selectQuery(where string) string {
	return fmt.Sprintf(`
		SELECT id, name, is_active, created_at, updated_at, deleted_at
		FROM %s
		%s`, s.table, where)
}

func scanLookup(row rowScanner) (*domain.Lookup, error) {
	var (
		lookup    domain.Lookup
		updatedAt sql.NullInt64
		deletedAt sql.NullInt64
	)

	if err := row.Scan(
		&lookup.ID,
		&lookup.Name,
		&lookup.IsActive,
		&lookup.CreatedAt,
		&updatedAt,
		&deletedAt,
	); err != nil {
		return nil, err
	}

	lookup.UpdatedAt = nullInt64Ptr(updatedAt)
	lookup.DeletedAt = nullInt64Ptr(deletedAt)
	return &lookup, nil
}

// List implements store.LookupStore.List
func (s *PostgresLookupStore) List(ctx context.Context) ([]*domain.Lookup, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, s.selectQuery("ORDER BY id ASC"))
	if err != nil {
		log.Error("failed to list lookups", slog.String("error", err.Error()))
		return nil, store.NewStoreError(s.table, "list", "query failed", MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	lookups := []*domain.Lookup{}
	for rows.Next() {
		lookup, err := scanLookup(rows)
		if err != nil {
			return nil, store.NewStoreError(s.table, "list", "scan failed", err)
		}
		lookups = append(lookups, lookup)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(s.table, "list", "iteration failed", err)
	}

	return lookups, nil
}

// GetByID implements store.LookupStore.GetByID
func (s *PostgresLookupStore) GetByID(ctx context.Context, id int64) (*domain.Lookup, error) {
	return s.getOne(ctx, "WHERE id = $1", id)
}

// GetByName implements store.LookupStore.GetByName
func (s *PostgresLookupStore) GetByName(ctx context.Context, name string) (*domain.Lookup, error) {
	return s.getOne(ctx, "WHERE name = $1", name)
}

func (s *PostgresLookupStore) getOne(ctx context.Context, where string, arg any) (*domain.Lookup, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	lookup, err := scanLookup(s.db.QueryRowContext(ctx, s.selectQuery(where), arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lookup not found", slog.Any("key", arg))
			return nil, store.ErrLookupNotFound
		}
		log.Error("failed to get lookup",
			slog.String("error", err.Error()),
			slog.Any("key", arg))
		return nil, store.NewStoreError(s.table, "get", "query failed", MapError(err))
	}
	return lookup, nil
}

// Create implements store.LookupStore.Create
// Returns store.ErrNameExists if the name is already taken.
func (s *PostgresLookupStore) Create(ctx context.Context, lookup *domain.Lookup) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		INSERT INTO %s (name, is_active, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, s.table)

	err := s.db.QueryRowContext(
		ctx,
		query,
		lookup.Name,
		lookup.IsActive,
		lookup.CreatedAt,
		lookup.UpdatedAt,
		lookup.DeletedAt,
	).Scan(&lookup.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("lookup name already exists", slog.String("name", lookup.Name))
			return fmt.Errorf("%w: %v", store.ErrNameExists, err)
		}
		log.Error("failed to create lookup",
			slog.String("error", err.Error()),
			slog.String("name", lookup.Name))
		return store.NewStoreError(s.table, "create", "insert failed", MapError(err))
	}

	log.Info("lookup created",
		slog.Int64("id", lookup.ID),
		slog.String("name", lookup.Name))
	return nil
}

// Update implements store.LookupStore.Update
func (s *PostgresLookupStore) Update(ctx context.Context, lookup *domain.Lookup) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $2, is_active = $3, updated_at = $4, deleted_at = $5
		WHERE id = $1
	`, s.table)

	result, err := s.db.ExecContext(
		ctx,
		query,
		lookup.ID,
		lookup.Name,
		lookup.IsActive,
		lookup.UpdatedAt,
		lookup.DeletedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrNameExists, err)
		}
		log.Error("failed to update lookup",
			slog.String("error", err.Error()),
			slog.Int64("id", lookup.ID))
		return store.NewStoreError(s.table, "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrLookupNotFound); err != nil {
		return err
	}

	log.Info("lookup updated",
		slog.Int64("id", lookup.ID),
		slog.Bool("is_active", lookup.IsActive))
	return nil
}
