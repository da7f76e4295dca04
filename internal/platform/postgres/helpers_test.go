package postgres

import "github.com/jackc/pgx/v5/pgconn"

// newPgError builds a PostgreSQL error with the given SQLSTATE code.
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		ConstraintName: "test_constraint",
	}
}
