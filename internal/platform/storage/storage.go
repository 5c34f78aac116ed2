// Package storage opens the repository provider selected by STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/warehouse_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/warehouse_management_app/internal/platform/config"
	"github.com/SscSPs/warehouse_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/warehouse_management_app/internal/repositories/memory"
	"github.com/SscSPs/warehouse_management_app/pkg/database"
)

// Options controls what Open does besides connecting.
type Options struct {
	// Migrate applies pending schema migrations before returning.
	Migrate bool
}

// Open connects to the configured store. The returned close func is never nil.
func Open(ctx context.Context, cfg *config.Config, opts Options) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		slog.Info("Using in-memory storage")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil

	case config.StoragePostgres:
		if opts.Migrate {
			slog.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				return portsrepo.RepositoryProvider{}, func() {}, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
			MaxConns:        20,
			MaxConnLifetime: time.Hour,
			ConnectTimeout:  5 * time.Second,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, func() {}, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
	return portsrepo.RepositoryProvider{}, func() {}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
