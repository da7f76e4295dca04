package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/kevinaldroniya/crudSonarCube/internal/config"
	"github.com/kevinaldroniya/crudSonarCube/internal/domain"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/memory"
	"github.com/kevinaldroniya/crudSonarCube/internal/platform/postgres"
	"github.com/kevinaldroniya/crudSonarCube/internal/service"
	"github.com/kevinaldroniya/crudSonarCube/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	// db is nil for the memory driver.
	db *sql.DB

	// Stores (using interfaces for proper abstraction)
	carStore     store.CarStore
	lookupStores map[string]store.LookupStore

	// Service interfaces
	carService     service.CarService
	lookupServices map[string]service.LookupService

	// now is the clock shared by every service.
	now func() time.Time
}

// newApplication creates a new application instance with all dependencies initialized.
// db must be non-nil for the postgres driver and is ignored for the memory driver.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		lookupStores:   make(map[string]store.LookupStore, len(domain.LookupKinds)),
		lookupServices: make(map[string]service.LookupService, len(domain.LookupKinds)),
		now:            time.Now,
	}

	if err := app.initStores(); err != nil {
		return nil, err
	}

	var err error
	app.carService, err = service.NewCarService(
		app.carStore,
		app.lookupStores[domain.MakeKind.Key],
		service.CarServiceConfig{
			DefaultPageSize: cfg.Search.DefaultPageSize,
			MaxPageSize:     cfg.Search.MaxPageSize,
			Now:             app.now,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create car service: %w", err)
	}

	for _, kind := range domain.LookupKinds {
		svc, err := service.NewLookupService(app.lookupStores[kind.Key], app.now, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s service: %w", kind.Key, err)
		}
		app.lookupServices[kind.Key] = svc
	}

	logger.Info("Application initialized successfully",
		slog.String("database_driver", cfg.Database.Driver))
	return app, nil
}

// initStores builds the stores for the configured driver.
func (app *application) initStores() error {
	switch app.config.Database.Driver {
	case config.DriverMemory:
		makes := memory.NewLookupStore(domain.MakeKind)
		app.lookupStores[domain.MakeKind.Key] = makes
		app.lookupStores[domain.FeatureKind.Key] = memory.NewLookupStore(domain.FeatureKind)
		app.lookupStores[domain.BodyStyleKind.Key] = memory.NewLookupStore(domain.BodyStyleKind)
		app.carStore = memory.NewCarStore(makes)

	case config.DriverPostgres:
		if app.db == nil {
			return fmt.Errorf("postgres driver requires a database connection")
		}
		for _, kind := range domain.LookupKinds {
			app.lookupStores[kind.Key] = postgres.NewPostgresLookupStore(app.db, kind, app.logger)
		}
		app.carStore = postgres.NewPostgresCarStore(app.db, app.logger)

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}
	return nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}
}
