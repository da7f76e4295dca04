package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// SQLSTATE codes of the integrity violations the catalog schema can raise.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// violation describes how an integrity violation surfaces as a store error.
type violation struct {
	sentinel error
	kind     string
}

var violations = map[string]violation{
	uniqueViolationCode:     {store.ErrDuplicate, "unique"},
	foreignKeyViolationCode: {store.ErrInvalidEntity, "foreign key"},
	checkViolationCode:      {store.ErrInvalidEntity, "check"},
	notNullViolationCode:    {store.ErrInvalidEntity, "not null"},
}

// MapError translates driver errors into the store sentinel errors so that
// callers can test them with errors.Is. Errors it does not recognize are
// returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	pgErr := asPgError(err)
	if pgErr == nil {
		return err
	}
	v, ok := violations[pgErr.Code]
	if !ok {
		return err
	}

	subject := pgErr.ConstraintName
	if subject == "" {
		subject = pgErr.ColumnName
	}
	return fmt.Errorf("%w: %s violation on %s: %v", v.sentinel, v.kind, subject, err)
}

// IsUniqueViolation reports whether err carries a unique constraint violation,
// e.g. a second make with the same name.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolationCode)
}

// IsForeignKeyViolation reports whether err carries a foreign key violation,
// e.g. a car referencing a make that does not exist.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolationCode)
}

func hasCode(err error, code string) bool {
	pgErr := asPgError(err)
	return pgErr != nil && pgErr.Code == code
}

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

// CheckRowsAffected returns notFound (store.ErrNotFound when nil) if an
// UPDATE or DELETE touched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return errors.New("no result to check")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	if notFound == nil {
		return store.ErrNotFound
	}
	return notFound
}
