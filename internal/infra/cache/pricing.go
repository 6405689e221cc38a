package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"catchpac/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const pricingKey = "pricing:rollup:v1"

// PricingCache stores the computed market rollup in Redis for a short TTL.
// Every failure is soft: a broken cache degrades to recomputation, never to
// an error for the caller.
type PricingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPricingCache(client *redis.Client, ttl time.Duration) *PricingCache {
	return &PricingCache{client: client, ttl: ttl}
}

func (c *PricingCache) Get(ctx context.Context) ([]queries.CategoryPricing, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, pricingKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("pricing cache read failed", "error", err)
		}
		return nil, false
	}

	var rollup []queries.CategoryPricing
	if err := json.Unmarshal(payload, &rollup); err != nil {
		slog.Warn("pricing cache payload corrupt", "error", err)
		return nil, false
	}
	return rollup, true
}

func (c *PricingCache) Set(ctx context.Context, rollup []queries.CategoryPricing) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(rollup)
	if err != nil {
		slog.Warn("pricing cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, pricingKey, payload, c.ttl).Err(); err != nil {
		slog.Warn("pricing cache write failed", "error", err)
	}
}
