package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// Supported migration commands.
const (
	MigrateUp      = "up"
	MigrateDown    = "down"
	MigrateStatus  = "status"
	MigrateVersion = "version"
)

// gooseRunContext is a seam for testing goose.RunContext.
var gooseRunContext = func(ctx context.Context, command string, db *sql.DB, dir string) error {
	return goose.RunContext(ctx, command, db, dir)
}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// It does not exit; the error is returned to the caller instead.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// RunMigrations runs a goose command against the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus, MigrateVersion:
	default:
		return fmt.Errorf("unsupported migration command %q", command)
	}

	if logger == nil {
		logger = slog.Default()
	}

	// Use a correlation ID for all migration logs to allow tracing the entire operation
	migrationLogger := logger.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("component", "migrations"),
		slog.String("command", command),
	)

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	start := time.Now()
	migrationLogger.Info("starting migration operation")

	if err := gooseRunContext(ctx, command, db, "."); err != nil {
		migrationLogger.Error("migration failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	migrationLogger.Info("migration operation completed",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
