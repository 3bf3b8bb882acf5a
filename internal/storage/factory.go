package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/yourname/fittracker/internal"
	"github.com/yourname/fittracker/internal/config"
)

// NewStateRepository opens the backend named by cfg.StorageBackend.
func NewStateRepository(ctx context.Context, cfg *config.Config, logger internal.Logger) (StateRepository, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileStorage(cfg.DataFile, logger)
	case "sqlite":
		return NewSQLiteStorage(ctx, cfg.SQLitePath, cfg.StorageKey, logger)
	case "postgres":
		return NewPostgresStorage(ctx, cfg.PostgresDSN, cfg.StorageKey, logger)
	case "redis":
		return NewRedisStorage(ctx, &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.StorageKey, logger)
	case "memory":
		return NewMemoryStorage(), nil
	}
	return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
}
