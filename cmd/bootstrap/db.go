package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"reminder-scheduler/internal/infra/db"
	"reminder-scheduler/internal/infra/kv"
	"reminder-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

const storeSetupTimeout = 10 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the KV store selected by STORE_DRIVER.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kv.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return newPostgresStore(lc, cfg, logger)
	case config.StoreDriverBolt:
		return newBoltStore(lc, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newBoltStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kv.Store, error) {
	store, err := kv.OpenBolt(cfg.Store.Path, cfg.Store.OpenTimeout)
	if err != nil {
		return nil, err
	}
	logger.Info("bolt store opened", "path", cfg.Store.Path)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func newPostgresStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kv.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeSetupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	store := kv.NewPostgresStore(pool)
	if err := store.Migrate(ctx); err != nil {
		cleanup()
		return nil, err
	}
	logger.Info("postgres store ready", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return store, nil
}
