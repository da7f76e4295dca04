package testdb

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/postgres"
	"github.com/kevinaldroniya/crudSonarCube/internal/redact"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection checks and migrations.
const TestTimeout = 10 * time.Second

// Open connects to the test database and applies all migrations. The test is
// skipped when no database URL is configured, except in CI where a missing
// database is a failure. The connection is closed when the test ends.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if IsCI() {
			t.Fatalf("no test database configured: set %s or %s", EnvTestDatabaseURL, EnvDatabaseURL)
		}
		t.Skipf("skipping database test: %s not set", EnvTestDatabaseURL)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open database %s", redact.DSN(dbURL))
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, db.PingContext(ctx), "failed to reach database %s", redact.DSN(dbURL))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, postgres.RunMigrations(ctx, db, postgres.MigrateUp, logger),
		"failed to apply migrations")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back, so tests
// never observe each other's writes.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
