package commands

import (
	"context"

	"catchpac/internal/domain/request"
	"catchpac/internal/domain/user"
	"catchpac/internal/infra"
	"catchpac/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBuyerRoleRequired       = errs.New("buyer role required")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CommandUserReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.QuoteRequest) (uuid.UUID, error)
}

type CreateRequestParams struct {
	Category        string
	Maker           string
	PartNumber      string
	Quantity        int
	DesiredDelivery string
	Note            *string
	IsAnonymous     bool
}

type RequestCommands interface {
	// CreateRequest posts a new quote request for the buyer. The buyer
	// company is denormalized from the authoritative user record, not taken
	// from the caller.
	CreateRequest(ctx context.Context, buyerID uuid.UUID, params CreateRequestParams) (uuid.UUID, error)
}

type requestCommandsImpl struct {
	users    CommandUserReads
	requests RequestRepository
}

func NewRequestCommands(users CommandUserReads, requests RequestRepository) RequestCommands {
	return &requestCommandsImpl{users: users, requests: requests}
}

func (r *requestCommandsImpl) CreateRequest(ctx context.Context, buyerID uuid.UUID, params CreateRequestParams) (uuid.UUID, error) {
	buyer, err := r.users.UserByID(ctx, buyerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrUserNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if buyer.Role != user.RoleBuyer.String() {
		return uuid.Nil, ErrBuyerRoleRequired
	}

	category, err := request.NewCategory(params.Category)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	maker, err := request.NewMaker(params.Maker)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := request.NewQuoteRequest(
		buyerID,
		buyer.Company,
		category,
		maker,
		params.PartNumber,
		params.Quantity,
		params.DesiredDelivery,
		params.Note,
		params.IsAnonymous,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := r.requests.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}
