package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kevinaldroniya/crudSonarCube/internal/config"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/postgres"
)

const migrateUp = postgres.MigrateUp

// errMemoryMigrations is returned when a migration command is requested for
// the in-memory driver, which has no schema.
var errMemoryMigrations = errors.New("migrations require the postgres database driver")

// applyMigrations is a seam over postgres.RunMigrations for tests.
var applyMigrations = func(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if err := postgres.RunMigrations(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	return nil
}

// handleMigrations executes a single migration command requested with the
// -migrate flag and returns without starting the server.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return errMemoryMigrations
	}

	logger.Info("Executing migrations", slog.String("command", command))

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	return applyMigrations(ctx, db, command, logger)
}
