package cache

import (
	"context"
	"log/slog"

	"catchpac/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis. Connectivity problems are logged, not
// fatal: the service runs without its cache.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("unable to reach redis", "addr", cfg.Addr, "error", err)
	} else {
		slog.Info("connected to redis", "addr", cfg.Addr)
	}

	return client
}
