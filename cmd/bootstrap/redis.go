package bootstrap

import (
	"context"

	"catchpac/internal/infra/cache"
	"catchpac/internal/pkg/config"
	"catchpac/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewPricingCache,
			fx.As(new(queries.PricingCache)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewPricingCache(client *redis.Client, cfg config.Config) *cache.PricingCache {
	return cache.NewPricingCache(client, cfg.Pricing.CacheTTL)
}
