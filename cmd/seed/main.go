// Command seed restores every collection in the configured slot store to
// the bundled demo dataset. Useful for first-time setup and for putting a
// demo environment back into a known state.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dentaltrack/backend/internal/adapters/collection"
	"github.com/dentaltrack/backend/internal/infrastructure/observability"
	"github.com/dentaltrack/backend/internal/infrastructure/storage"
	"github.com/dentaltrack/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("dentaltrack-seed", cfg.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slotStore, err := storage.NewSlotStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open slot store")
	}

	collections := collection.NewCollections(slotStore, *logger)
	defer collections.Close()

	if err := collections.ResetAll(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to reset collections")
	}

	logger.Info().Str("driver", cfg.Storage.Driver).Msg("all collections reset to seed data")
}
