package queries

import (
	"context"
	"log/slog"
	"math"
	"time"

	"catchpac/internal/domain/request"
	"catchpac/internal/pkg/clock"
)

const (
	recentWindow = 7 * 24 * time.Hour
	priorWindow  = 14 * 24 * time.Hour
)

type PricingReadStore interface {
	// SamplesSince returns every quote created at or after since, tagged
	// with its parent request's category.
	SamplesSince(ctx context.Context, since time.Time) ([]PricingSample, error)
}

// PricingCache is a best-effort cache for the computed rollup. A miss or a
// cache failure falls back to the direct computation.
type PricingCache interface {
	Get(ctx context.Context) ([]CategoryPricing, bool)
	Set(ctx context.Context, rollup []CategoryPricing)
}

type PricingQueries interface {
	MarketPricing(ctx context.Context) ([]CategoryPricing, error)
}

type pricingQueriesImpl struct {
	repo  PricingReadStore
	cache PricingCache
	clock clock.Clock
}

func NewPricingQueries(repo PricingReadStore, cache PricingCache, clock clock.Clock) PricingQueries {
	return &pricingQueriesImpl{repo: repo, cache: cache, clock: clock}
}

// MarketPricing computes the per-category rollup over the trailing two
// weeks of quotes: average unit price and delivery days over the last 7
// days, and the week-over-week price change against the 14..7 day window.
// Categories with no recent samples are omitted.
func (q *pricingQueriesImpl) MarketPricing(ctx context.Context) ([]CategoryPricing, error) {
	if rollup, ok := q.cache.Get(ctx); ok {
		return rollup, nil
	}

	now := q.clock.Now()
	samples, err := q.repo.SamplesSince(ctx, now.Add(-priorWindow))
	if err != nil {
		return nil, err
	}

	rollup := ComputeRollup(samples, now)
	q.cache.Set(ctx, rollup)
	return rollup, nil
}

type categoryWindow struct {
	prices       []int64
	deliveryDays []int
	priorPrices  []int64
}

// ComputeRollup partitions samples into the recent (last 7 days) and prior
// (14..7 days ago) windows per category and averages them. When the prior
// window is empty the prior average defaults to the recent average, which
// yields a 0% change without dividing by zero.
func ComputeRollup(samples []PricingSample, now time.Time) []CategoryPricing {
	recentCutoff := now.Add(-recentWindow)
	priorCutoff := now.Add(-priorWindow)

	windows := make(map[string]*categoryWindow)
	for _, cat := range request.Categories() {
		windows[cat.String()] = &categoryWindow{}
	}

	for _, s := range samples {
		w, ok := windows[s.Category]
		if !ok {
			slog.Warn("pricing sample with unknown category skipped", "category", s.Category)
			continue
		}
		switch {
		case !s.CreatedAt.Before(recentCutoff):
			w.prices = append(w.prices, s.UnitPrice)
			w.deliveryDays = append(w.deliveryDays, s.DeliveryDays)
		case !s.CreatedAt.Before(priorCutoff):
			w.priorPrices = append(w.priorPrices, s.UnitPrice)
		}
	}

	rollup := make([]CategoryPricing, 0, len(windows))
	for _, cat := range request.Categories() {
		w := windows[cat.String()]
		if len(w.prices) == 0 {
			continue
		}

		avgPrice := int64(math.Round(meanInt64(w.prices)))
		priorAvg := meanInt64(w.priorPrices)
		if len(w.priorPrices) == 0 {
			priorAvg = float64(avgPrice)
		}

		changePercent := 0
		if priorAvg > 0 {
			changePercent = int(math.Round((float64(avgPrice) - priorAvg) / priorAvg * 100))
		}

		rollup = append(rollup, CategoryPricing{
			Category:        cat.String(),
			AvgUnitPrice:    avgPrice,
			ChangePercent:   changePercent,
			AvgDeliveryDays: int(math.Round(meanInt(w.deliveryDays))),
			SampleCount:     len(w.prices),
		})
	}
	return rollup
}

func meanInt64(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
