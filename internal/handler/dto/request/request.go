package request

import (
	"strings"

	"catchpac/internal/usecase/commands"
)

type CreateRequestRequest struct {
	Category        string  `json:"category" binding:"required"`
	Maker           string  `json:"maker" binding:"required"`
	PartNumber      string  `json:"part_number" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,min=1"`
	DesiredDelivery string  `json:"desired_delivery" binding:"required"`
	Note            *string `json:"note,omitempty"`
	IsAnonymous     bool    `json:"is_anonymous"`
}

func (r CreateRequestRequest) ToParams() commands.CreateRequestParams {
	return commands.CreateRequestParams{
		Category:        r.Category,
		Maker:           r.Maker,
		PartNumber:      strings.TrimSpace(r.PartNumber),
		Quantity:        r.Quantity,
		DesiredDelivery: strings.TrimSpace(r.DesiredDelivery),
		Note:            trimmedNote(r.Note),
		IsAnonymous:     r.IsAnonymous,
	}
}

func trimmedNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
