package commands

import (
	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type UserSnapshot struct {
	ID      uuid.UUID
	Company string
	Role    string
}

type RequestSnapshot struct {
	ID       uuid.UUID
	BuyerID  uuid.UUID
	Quantity int
	Status   string
}

type QuoteSnapshot struct {
	ID         uuid.UUID
	RequestID  uuid.UUID
	SellerID   uuid.UUID
	IsSelected bool
}
