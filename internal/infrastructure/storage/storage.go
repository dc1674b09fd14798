// Package storage selects the durable slot store backend from configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/dentaltrack/backend/internal/adapters/cache"
	"github.com/dentaltrack/backend/internal/adapters/database"
	"github.com/dentaltrack/backend/internal/adapters/localstore"
	"github.com/dentaltrack/backend/internal/domain/providers"
	"github.com/dentaltrack/backend/internal/infrastructure/clients/postgres"
	"github.com/dentaltrack/backend/internal/infrastructure/clients/redis"
	"github.com/dentaltrack/backend/internal/infrastructure/clients/sqlite"
	"github.com/dentaltrack/backend/pkg/config"
)

// NewSlotStore opens the slot store named by cfg.Storage.Driver. The caller
// owns the returned store and must Close it.
func NewSlotStore(ctx context.Context, cfg *config.Config) (providers.SlotStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return localstore.New(cfg.Storage.DataDir)

	case config.DriverSQLite:
		client, err := sqlite.NewClient(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite client: %w", err)
		}
		store, err := database.NewSlotAdapter(ctx, client.DB(), "sqlite3", client.Close)
		if err != nil {
			client.Close()
			return nil, err
		}
		return store, nil

	case config.DriverPostgres:
		client, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("postgres client: %w", err)
		}
		store, err := database.NewSlotAdapter(ctx, client.DB(), "postgres", client.Close)
		if err != nil {
			client.Close()
			return nil, err
		}
		return store, nil

	case config.DriverRedis:
		client, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis client: %w", err)
		}
		return cache.NewSlotAdapter(client, ""), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
