package commands

import (
	"context"
	"errors"
	"log/slog"

	"catchpac/internal/domain/quote"
	"catchpac/internal/domain/request"
	"catchpac/internal/domain/user"
	"catchpac/internal/infra"
	"catchpac/internal/infra/db"
	"catchpac/internal/pkg/errs"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSellerRoleRequired = errs.New("seller role required")
	ErrRequestNotFound    = errs.New("request not found")
	ErrRequestClosed      = errs.New("request is closed")
	ErrDuplicateQuote     = errs.New("seller already quoted this request")
	ErrQuoteNotFound      = errs.New("quote not found")
	ErrNotRequestOwner    = errs.New("only the request owner may select a quote")
)

type RequestWriteRepository interface {
	// FindForUpdate locks the request row for the duration of the
	// transaction so concurrent submissions and selections serialize.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*RequestSnapshot, error)
	Close(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type QuoteRepository interface {
	Create(ctx context.Context, tx db.DBTX, q *quote.Quote) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*QuoteSnapshot, error)
	MarkSelected(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type QuoteViews interface {
	FindQuoteByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error)
}

type SubmitQuoteParams struct {
	UnitPrice    int64
	DeliveryDays int
	InStock      bool
	Note         *string
}

type QuoteCommands interface {
	SubmitQuote(ctx context.Context, sellerID, requestID uuid.UUID, params SubmitQuoteParams) (*queries.QuoteView, error)
	// SelectQuote marks the quote selected and closes the request in one
	// transaction: the request is CLOSED iff exactly one quote is selected.
	SelectQuote(ctx context.Context, buyerID, requestID, quoteID uuid.UUID) error
}

type quoteCommandsImpl struct {
	users      CommandUserReads
	requests   RequestWriteRepository
	quotes     QuoteRepository
	quoteViews QuoteViews
	db         *pgxpool.Pool
}

func NewQuoteCommands(
	users CommandUserReads,
	requests RequestWriteRepository,
	quotes QuoteRepository,
	quoteViews QuoteViews,
	db *pgxpool.Pool,
) QuoteCommands {
	return &quoteCommandsImpl{
		users:      users,
		requests:   requests,
		quotes:     quotes,
		quoteViews: quoteViews,
		db:         db,
	}
}

func (c *quoteCommandsImpl) SubmitQuote(ctx context.Context, sellerID, requestID uuid.UUID, params SubmitQuoteParams) (*queries.QuoteView, error) {
	seller, err := c.users.UserByID(ctx, sellerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if seller.Role != user.RoleSeller.String() {
		return nil, ErrSellerRoleRequired
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	req, err := c.requests.FindForUpdate(ctx, tx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if req.Status != request.StatusOpen.String() {
		return nil, ErrRequestClosed
	}

	entity, err := quote.NewQuote(
		requestID,
		sellerID,
		seller.Company,
		params.UnitPrice,
		params.DeliveryDays,
		req.Quantity,
		params.InStock,
		params.Note,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	quoteID, err := c.quotes.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateQuote
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write so the response carries the stored timestamps
	view, err := c.quoteViews.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *quoteCommandsImpl) SelectQuote(ctx context.Context, buyerID, requestID, quoteID uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	req, err := c.requests.FindForUpdate(ctx, tx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if req.BuyerID != buyerID {
		return ErrNotRequestOwner
	}
	if req.Status != request.StatusOpen.String() {
		return ErrRequestClosed
	}

	qt, err := c.quotes.FindByID(ctx, tx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrQuoteNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if qt.RequestID != requestID {
		return ErrQuoteNotFound
	}

	if err := c.quotes.MarkSelected(ctx, tx, quoteID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.requests.Close(ctx, tx, requestID); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}
