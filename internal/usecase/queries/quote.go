package queries

import (
	"context"

	"github.com/google/uuid"
)

type QuoteQueries interface {
	// ListBySeller returns the seller's own quotes, newest first, each with
	// its parent request snapshot.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerQuoteView, error)
}

type quoteQueriesImpl struct {
	repo QuoteReadStore
}

func NewQuoteQueries(repo QuoteReadStore) QuoteQueries {
	return &quoteQueriesImpl{repo: repo}
}

func (q *quoteQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerQuoteView, error) {
	views, err := q.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Request = maskAnonymous(v.Request)
	}
	return views, nil
}
