//go:build unit || e2e

package builder

import (
	"time"

	"catchpac/internal/domain/request"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	BuyerID         uuid.UUID
	BuyerCompany    string
	Category        string
	Maker           string
	PartNumber      string
	Quantity        int
	DesiredDelivery string
	Note            *string
	IsAnonymous     bool
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		BuyerID:         uuid.New(),
		BuyerCompany:    "한빛정밀",
		Category:        "BEARING",
		Maker:           "SKF",
		PartNumber:      "6204-2RS",
		Quantity:        4,
		DesiredDelivery: "2주 이내",
	}
}

func (r *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(r)
	return r
}

func (r *RequestBuilder) WithCategory(category string) *RequestBuilder {
	r.Category = category
	return r
}

func (r *RequestBuilder) WithMaker(maker string) *RequestBuilder {
	r.Maker = maker
	return r
}

func (r *RequestBuilder) WithQuantity(quantity int) *RequestBuilder {
	r.Quantity = quantity
	return r
}

func (r *RequestBuilder) WithPartNumber(partNumber string) *RequestBuilder {
	r.PartNumber = partNumber
	return r
}

func (r *RequestBuilder) BuildDomain() (*request.QuoteRequest, error) {
	category, err := request.NewCategory(r.Category)
	if err != nil {
		return nil, err
	}
	maker, err := request.NewMaker(r.Maker)
	if err != nil {
		return nil, err
	}

	return request.NewQuoteRequest(
		r.BuyerID,
		r.BuyerCompany,
		category,
		maker,
		r.PartNumber,
		r.Quantity,
		r.DesiredDelivery,
		r.Note,
		r.IsAnonymous,
	)
}

func (r *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:              uuid.New(),
		BuyerID:         r.BuyerID,
		BuyerCompany:    r.BuyerCompany,
		Category:        r.Category,
		Maker:           r.Maker,
		PartNumber:      r.PartNumber,
		Quantity:        r.Quantity,
		DesiredDelivery: r.DesiredDelivery,
		Note:            r.Note,
		IsAnonymous:     r.IsAnonymous,
		Status:          "OPEN",
		CreatedAt:       time.Now(),
	}
}
