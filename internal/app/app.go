// Package app defines the App struct that composes the module's main
// dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - repositories bound to that pool
package app

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/database"
	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
)

// App is the container that holds shared resources. Nothing in it is
// global; commands receive an App and pass its parts down explicitly.
type App struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	Repos *repository.Repositories
}

// New connects to the database and builds the repositories on its pool.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*App, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Repos:         repository.NewRepositories(db.Pool),
	}, nil
}

// Bootstrap loads config from the environment and builds the logger and
// the App. It is what cmd/lightbnb calls before running a command.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	loggerService := loggerPkg.NewLoggerService(cfg.Observability)
	logger := loggerPkg.NewLoggerWithService(cfg.Observability, loggerService)

	a, err := New(ctx, cfg, &logger, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return nil, err
	}
	return a, nil
}

// Shutdown closes the pool and flushes New Relic data.
func (a *App) Shutdown() error {
	defer a.LoggerService.Shutdown()

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	return nil
}
