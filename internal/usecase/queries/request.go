package queries

import (
	"context"
	"sort"

	"catchpac/internal/domain/user"
	"catchpac/internal/infra"
	"catchpac/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound = errs.New("request not found")
	ErrInvalidSort     = errs.New("invalid sort key")
)

// anonymousCompany replaces the buyer's company on requests posted
// anonymously. The stored value is untouched; only read models are masked.
const anonymousCompany = "익명"

func maskAnonymous(v *RequestView) *RequestView {
	if v == nil || !v.IsAnonymous {
		return v
	}
	masked := *v
	masked.BuyerCompany = anonymousCompany
	return &masked
}

func maskAnonymousItems(items []*RequestListItem) []*RequestListItem {
	for i, item := range items {
		if item.IsAnonymous {
			masked := *item
			masked.BuyerCompany = anonymousCompany
			items[i] = &masked
		}
	}
	return items
}

// QuoteSort selects the ordering of quotes on a request detail view.
type QuoteSort string

const (
	SortByPrice    QuoteSort = "price"
	SortByDelivery QuoteSort = "delivery"
)

func NewQuoteSort(s string) (QuoteSort, error) {
	switch QuoteSort(s) {
	case SortByPrice, SortByDelivery:
		return QuoteSort(s), nil
	case "":
		return SortByPrice, nil
	default:
		return "", ErrInvalidSort
	}
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*RequestListItem, error)
	ListOpen(ctx context.Context) ([]*RequestListItem, error)
}

type QuoteReadStore interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*QuoteView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*SellerQuoteView, error)
}

type RequestQueries interface {
	// List is role-dependent: buyers see their own requests, sellers see all
	// open ones. Newest first either way.
	List(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*RequestListItem, error)
	GetDetail(ctx context.Context, id uuid.UUID, sortBy QuoteSort) (*RequestDetailView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	quotes   QuoteReadStore
}

func NewRequestQueries(requests RequestReadStore, quotes QuoteReadStore) RequestQueries {
	return &requestQueriesImpl{requests: requests, quotes: quotes}
}

func (q *requestQueriesImpl) List(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*RequestListItem, error) {
	if actorRole == user.RoleBuyer {
		return q.requests.ListByBuyer(ctx, actorID)
	}
	items, err := q.requests.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return maskAnonymousItems(items), nil
}

func (q *requestQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID, sortBy QuoteSort) (*RequestDetailView, error) {
	requestView, err := q.requests.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	quotes, err := q.quotes.ListByRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &RequestDetailView{
		Request: maskAnonymous(requestView),
		Quotes:  SortQuotes(quotes, sortBy),
	}
	if len(quotes) > 0 {
		detail.CheapestQuoteID = topQuoteID(quotes, SortByPrice)
		detail.FastestQuoteID = topQuoteID(quotes, SortByDelivery)
	}
	return detail, nil
}

// SortQuotes orders quotes ascending by the chosen key. The input slice is
// not mutated; ordering is a display concern and is never persisted.
func SortQuotes(quotes []*QuoteView, sortBy QuoteSort) []*QuoteView {
	sorted := make([]*QuoteView, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sortBy == SortByDelivery {
			return sorted[i].DeliveryDays < sorted[j].DeliveryDays
		}
		return sorted[i].UnitPrice < sorted[j].UnitPrice
	})
	return sorted
}

func topQuoteID(quotes []*QuoteView, sortBy QuoteSort) *uuid.UUID {
	top := SortQuotes(quotes, sortBy)[0]
	id := top.ID
	return &id
}
