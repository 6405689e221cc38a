package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Company string    `json:"company"`
	Role    string    `json:"role"`
	IsAdmin bool      `json:"is_admin"`
}

type RequestView struct {
	ID              uuid.UUID `json:"id"`
	BuyerID         uuid.UUID `json:"buyer_id"`
	BuyerCompany    string    `json:"buyer_company"`
	Category        string    `json:"category"`
	Maker           string    `json:"maker"`
	PartNumber      string    `json:"part_number"`
	Quantity        int       `json:"quantity"`
	DesiredDelivery string    `json:"desired_delivery"`
	Note            *string   `json:"note,omitempty"`
	IsAnonymous     bool      `json:"is_anonymous"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// RequestListItem carries the quote count so listings do not issue one count
// query per row.
type RequestListItem struct {
	RequestView
	QuoteCount int64 `json:"quote_count"`
}

type QuoteView struct {
	ID            uuid.UUID `json:"id"`
	RequestID     uuid.UUID `json:"request_id"`
	SellerID      uuid.UUID `json:"seller_id"`
	SellerCompany string    `json:"seller_company"`
	UnitPrice     int64     `json:"unit_price"`
	TotalPrice    int64     `json:"total_price"`
	DeliveryDays  int       `json:"delivery_days"`
	InStock       bool      `json:"in_stock"`
	Note          *string   `json:"note,omitempty"`
	IsSelected    bool      `json:"is_selected"`
	CreatedAt     time.Time `json:"created_at"`
}

// RequestDetailView is the request with its quotes in the caller's chosen
// order. CheapestQuoteID and FastestQuoteID let the presentation flag the
// top offer of either sort without re-deriving it.
type RequestDetailView struct {
	Request         *RequestView `json:"request"`
	Quotes          []*QuoteView `json:"quotes"`
	CheapestQuoteID *uuid.UUID   `json:"cheapest_quote_id,omitempty"`
	FastestQuoteID  *uuid.UUID   `json:"fastest_quote_id,omitempty"`
}

// SellerQuoteView is a seller's own quote joined with a snapshot of its
// parent request.
type SellerQuoteView struct {
	QuoteView
	Request *RequestView `json:"request,omitempty"`
}

type CategoryPricing struct {
	Category        string `json:"category"`
	AvgUnitPrice    int64  `json:"avg_unit_price"`
	ChangePercent   int    `json:"change_percent"`
	AvgDeliveryDays int    `json:"avg_delivery_days"`
	SampleCount     int    `json:"sample_count"`
}

// PricingSample is one quote row in the pricing window, tagged with its
// parent request's category.
type PricingSample struct {
	Category     string
	UnitPrice    int64
	DeliveryDays int
	CreatedAt    time.Time
}
