package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/fin_assist/internal/core/ports/repositories"
	"github.com/SscSPs/fin_assist/internal/platform/config"
	"github.com/SscSPs/fin_assist/internal/repositories/database/pgsql"
	"github.com/SscSPs/fin_assist/internal/repositories/database/sqlite"
	"github.com/SscSPs/fin_assist/internal/repositories/memory"
	"github.com/SscSPs/fin_assist/pkg/database"
)

// store is the opened data backend and its release function.
type store struct {
	repos portsrepo.RepositoryProvider
	close func()
}

// openStore connects the backend selected by DATA_BACKEND and brings its
// schema up to date.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.DataBackend {
	case config.BackendPostgres:
		logger.Info("Running database migrations...")
		applied, err := pgsql.RunMigrations(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		logMigrations(logger, applied)

		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return &store{
			repos: pgsql.NewRepositoryProvider(pool),
			close: func() { database.ClosePgxPool(pool) },
		}, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		logger.Info("Running database migrations...", slog.String("path", cfg.SQLitePath))
		applied, err := sqlite.RunMigrations(cfg.SQLitePath)
		if err != nil {
			closeDB(db, logger)
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		logMigrations(logger, applied)

		if cfg.EnableDBCheck {
			if err := db.PingContext(ctx); err != nil {
				closeDB(db, logger)
				return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
			}
		}
		return &store{
			repos: sqlite.NewRepositoryProvider(db),
			close: func() { closeDB(db, logger) },
		}, nil

	case config.BackendMemory:
		logger.Warn("Using in-memory store; data is lost on restart")
		return &store{
			repos: memory.NewRepositoryProvider(memory.NewStore()),
			close: func() {},
		}, nil
	}
	return nil, fmt.Errorf("unsupported data backend %q", cfg.DataBackend)
}

func logMigrations(logger *slog.Logger, applied bool) {
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
}

func closeDB(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Error closing database", slog.String("error", err.Error()))
	}
}
