package quote

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidUnitPrice    = errors.New("unit price must be positive")
	ErrInvalidDeliveryDays = errors.New("delivery days must be positive")
	ErrInvalidQuantity     = errors.New("request quantity must be at least 1")
	ErrAlreadySelected     = errors.New("quote is already selected")
)

// Quote is a seller's priced, timed offer against a specific request.
// The total price is computed once at submission from the parent request's
// quantity and stored; it is never recomputed.
type Quote struct {
	id            uuid.UUID
	requestID     uuid.UUID
	sellerID      uuid.UUID
	sellerCompany string
	unitPrice     int64
	totalPrice    int64
	deliveryDays  int
	inStock       bool
	note          *string
	isSelected    bool
	createdAt     time.Time
}

func NewQuote(
	requestID uuid.UUID,
	sellerID uuid.UUID,
	sellerCompany string,
	unitPrice int64,
	deliveryDays int,
	requestQuantity int,
	inStock bool,
	note *string,
) (*Quote, error) {
	if unitPrice <= 0 {
		return nil, ErrInvalidUnitPrice
	}
	if deliveryDays <= 0 {
		return nil, ErrInvalidDeliveryDays
	}
	if requestQuantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return &Quote{
		id:            uuid.New(),
		requestID:     requestID,
		sellerID:      sellerID,
		sellerCompany: sellerCompany,
		unitPrice:     unitPrice,
		totalPrice:    unitPrice * int64(requestQuantity),
		deliveryDays:  deliveryDays,
		inStock:       inStock,
		note:          note,
	}, nil
}

// Select marks the quote as the buyer's chosen offer. One-way.
func (q *Quote) Select() error {
	if q.isSelected {
		return ErrAlreadySelected
	}
	q.isSelected = true
	return nil
}

func (q *Quote) ID() uuid.UUID         { return q.id }
func (q *Quote) RequestID() uuid.UUID  { return q.requestID }
func (q *Quote) SellerID() uuid.UUID   { return q.sellerID }
func (q *Quote) SellerCompany() string { return q.sellerCompany }
func (q *Quote) UnitPrice() int64      { return q.unitPrice }
func (q *Quote) TotalPrice() int64     { return q.totalPrice }
func (q *Quote) DeliveryDays() int     { return q.deliveryDays }
func (q *Quote) InStock() bool         { return q.inStock }
func (q *Quote) Note() *string         { return q.note }
func (q *Quote) IsSelected() bool      { return q.isSelected }
func (q *Quote) CreatedAt() time.Time  { return q.createdAt }
