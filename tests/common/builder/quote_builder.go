//go:build unit || e2e

package builder

import (
	"time"

	"catchpac/internal/domain/quote"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteBuilder struct {
	RequestID       uuid.UUID
	SellerID        uuid.UUID
	SellerCompany   string
	UnitPrice       int64
	DeliveryDays    int
	RequestQuantity int
	InStock         bool
	Note            *string
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		RequestID:       uuid.New(),
		SellerID:        uuid.New(),
		SellerCompany:   "대한부품상사",
		UnitPrice:       450000,
		DeliveryDays:    14,
		RequestQuantity: 4,
		InStock:         true,
	}
}

func (q *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(q)
	return q
}

func (q *QuoteBuilder) WithUnitPrice(price int64) *QuoteBuilder {
	q.UnitPrice = price
	return q
}

func (q *QuoteBuilder) WithDeliveryDays(days int) *QuoteBuilder {
	q.DeliveryDays = days
	return q
}

func (q *QuoteBuilder) WithRequestQuantity(quantity int) *QuoteBuilder {
	q.RequestQuantity = quantity
	return q
}

func (q *QuoteBuilder) BuildDomain() (*quote.Quote, error) {
	return quote.NewQuote(
		q.RequestID,
		q.SellerID,
		q.SellerCompany,
		q.UnitPrice,
		q.DeliveryDays,
		q.RequestQuantity,
		q.InStock,
		q.Note,
	)
}

func (q *QuoteBuilder) BuildView() *queries.QuoteView {
	return &queries.QuoteView{
		ID:            uuid.New(),
		RequestID:     q.RequestID,
		SellerID:      q.SellerID,
		SellerCompany: q.SellerCompany,
		UnitPrice:     q.UnitPrice,
		TotalPrice:    q.UnitPrice * int64(q.RequestQuantity),
		DeliveryDays:  q.DeliveryDays,
		InStock:       q.InStock,
		Note:          q.Note,
		CreatedAt:     time.Now(),
	}
}
