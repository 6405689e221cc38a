package request

import (
	"catchpac/internal/usecase/commands"
)

// SubmitQuoteRequest binds numeric fields as integers so malformed input
// fails at binding instead of flowing downstream as garbage values.
type SubmitQuoteRequest struct {
	UnitPrice    int64   `json:"unit_price" binding:"required,min=1"`
	DeliveryDays int     `json:"delivery_days" binding:"required,min=1"`
	InStock      bool    `json:"in_stock"`
	Note         *string `json:"note,omitempty"`
}

func (r SubmitQuoteRequest) ToParams() commands.SubmitQuoteParams {
	return commands.SubmitQuoteParams{
		UnitPrice:    r.UnitPrice,
		DeliveryDays: r.DeliveryDays,
		InStock:      r.InStock,
		Note:         trimmedNote(r.Note),
	}
}
