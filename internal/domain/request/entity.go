package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidMaker    = errors.New("invalid maker")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrEmptyPartNumber = errors.New("part number must not be empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyDelivery   = errors.New("desired delivery must not be empty")
	ErrAlreadyClosed   = errors.New("request is already closed")
)

// QuoteRequest is a buyer's posted need for a specific part and quantity.
// The buyer company name is denormalized at creation time so listings do not
// need a join against users.
type QuoteRequest struct {
	id              uuid.UUID
	buyerID         uuid.UUID
	buyerCompany    string
	category        Category
	maker           Maker
	partNumber      string
	quantity        int
	desiredDelivery string
	note            *string
	isAnonymous     bool
	status          Status
	createdAt       time.Time
}

func NewQuoteRequest(
	buyerID uuid.UUID,
	buyerCompany string,
	category Category,
	maker Maker,
	partNumber string,
	quantity int,
	desiredDelivery string,
	note *string,
	isAnonymous bool,
) (*QuoteRequest, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !maker.IsValid() {
		return nil, ErrInvalidMaker
	}
	partNumber = strings.TrimSpace(partNumber)
	if partNumber == "" {
		return nil, ErrEmptyPartNumber
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	desiredDelivery = strings.TrimSpace(desiredDelivery)
	if desiredDelivery == "" {
		return nil, ErrEmptyDelivery
	}

	return &QuoteRequest{
		id:              uuid.New(),
		buyerID:         buyerID,
		buyerCompany:    buyerCompany,
		category:        category,
		maker:           maker,
		partNumber:      partNumber,
		quantity:        quantity,
		desiredDelivery: desiredDelivery,
		note:            note,
		isAnonymous:     isAnonymous,
		status:          StatusOpen,
	}, nil
}

// Close transitions OPEN -> CLOSED. The transition is one-way.
func (r *QuoteRequest) Close() error {
	if r.status == StatusClosed {
		return ErrAlreadyClosed
	}
	r.status = StatusClosed
	return nil
}

func (r *QuoteRequest) IsOpen() bool {
	return r.status == StatusOpen
}

func (r *QuoteRequest) ID() uuid.UUID           { return r.id }
func (r *QuoteRequest) BuyerID() uuid.UUID      { return r.buyerID }
func (r *QuoteRequest) BuyerCompany() string    { return r.buyerCompany }
func (r *QuoteRequest) Category() Category      { return r.category }
func (r *QuoteRequest) Maker() Maker            { return r.maker }
func (r *QuoteRequest) PartNumber() string      { return r.partNumber }
func (r *QuoteRequest) Quantity() int           { return r.quantity }
func (r *QuoteRequest) DesiredDelivery() string { return r.desiredDelivery }
func (r *QuoteRequest) Note() *string           { return r.note }
func (r *QuoteRequest) IsAnonymous() bool       { return r.isAnonymous }
func (r *QuoteRequest) Status() Status          { return r.status }
func (r *QuoteRequest) CreatedAt() time.Time    { return r.createdAt }
