package repository

import (
	"context"
	"time"

	"catchpac/internal/domain/quote"
	"catchpac/internal/infra"
	"catchpac/internal/infra/db"
	"catchpac/internal/pkg/pgconv"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type QuoteRepository struct {
	db db.DBTX
}

func NewQuoteRepository(db db.DBTX) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, tx db.DBTX, q *quote.Quote) (uuid.UUID, error) {
	const query = `
		INSERT INTO quote_responses
			(id, request_id, seller_id, seller_company, unit_price, total_price,
			 delivery_days, in_stock, note, is_selected)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		q.ID(),
		q.RequestID(),
		q.SellerID(),
		q.SellerCompany(),
		q.UnitPrice(),
		q.TotalPrice(),
		q.DeliveryDays(),
		q.InStock(),
		q.Note(),
		q.IsSelected(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create quote", err, infra.ClassifyPgErr(err))
	}
	return id, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.QuoteSnapshot, error) {
	const query = `
		SELECT id, request_id, seller_id, is_selected
		FROM quote_responses WHERE id = $1`

	var snap commands.QuoteSnapshot
	err := tx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.RequestID, &snap.SellerID, &snap.IsSelected)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}
	return &snap, nil
}

func (r *QuoteRepository) MarkSelected(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE quote_responses SET is_selected = TRUE WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark quote selected", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quote not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const quoteViewColumns = `
	id, request_id, seller_id, seller_company, unit_price, total_price,
	delivery_days, in_stock, note, is_selected, created_at`

// FindQuoteByID is the read-after-write view fetch used by commands.
func (r *QuoteRepository) FindQuoteByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	query := `SELECT ` + quoteViewColumns + ` FROM quote_responses WHERE id = $1`

	view, err := scanQuoteView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by ID", err)
	}
	return view, nil
}

// ListByRequest returns a request's quotes, newest first.
func (r *QuoteRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.QuoteView, error) {
	query := `SELECT ` + quoteViewColumns + `
		FROM quote_responses
		WHERE request_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes by request", err)
	}
	defer rows.Close()

	views := make([]*queries.QuoteView, 0)
	for rows.Next() {
		view, err := scanQuoteView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read quote rows", err)
	}
	return views, nil
}

// ListBySeller returns the seller's quotes joined with their parent request
// snapshots, newest first.
func (r *QuoteRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.SellerQuoteView, error) {
	const query = `
		SELECT q.id, q.request_id, q.seller_id, q.seller_company, q.unit_price, q.total_price,
		       q.delivery_days, q.in_stock, q.note, q.is_selected, q.created_at,
		       r.id, r.buyer_id, r.buyer_company, r.category, r.maker, r.part_number,
		       r.quantity, r.desired_delivery, r.note, r.is_anonymous, r.status, r.created_at
		FROM quote_responses q
		JOIN quote_requests r ON r.id = q.request_id
		WHERE q.seller_id = $1
		ORDER BY q.created_at DESC`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes by seller", err)
	}
	defer rows.Close()

	views := make([]*queries.SellerQuoteView, 0)
	for rows.Next() {
		var (
			view queries.SellerQuoteView
			req  queries.RequestView
		)
		err := rows.Scan(
			&view.ID,
			&view.RequestID,
			&view.SellerID,
			&view.SellerCompany,
			&view.UnitPrice,
			&view.TotalPrice,
			&view.DeliveryDays,
			&view.InStock,
			&view.Note,
			&view.IsSelected,
			&view.CreatedAt,
			&req.ID,
			&req.BuyerID,
			&req.BuyerCompany,
			&req.Category,
			&req.Maker,
			&req.PartNumber,
			&req.Quantity,
			&req.DesiredDelivery,
			&req.Note,
			&req.IsAnonymous,
			&req.Status,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan seller quote row", err)
		}
		view.Request = &req
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read seller quote rows", err)
	}
	return views, nil
}

// SamplesSince feeds the pricing rollup: one row per quote in the window,
// tagged with its request's category.
func (r *QuoteRepository) SamplesSince(ctx context.Context, since time.Time) ([]queries.PricingSample, error) {
	const query = `
		SELECT r.category, q.unit_price, q.delivery_days, q.created_at
		FROM quote_responses q
		JOIN quote_requests r ON r.id = q.request_id
		WHERE q.created_at >= $1`

	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pricing samples", err)
	}
	defer rows.Close()

	samples := make([]queries.PricingSample, 0)
	for rows.Next() {
		var s queries.PricingSample
		if err := rows.Scan(&s.Category, &s.UnitPrice, &s.DeliveryDays, &s.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing sample", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing samples", err)
	}
	return samples, nil
}

func scanQuoteView(row pgx.Row) (*queries.QuoteView, error) {
	var view queries.QuoteView
	err := row.Scan(
		&view.ID,
		&view.RequestID,
		&view.SellerID,
		&view.SellerCompany,
		&view.UnitPrice,
		&view.TotalPrice,
		&view.DeliveryDays,
		&view.InStock,
		&view.Note,
		&view.IsSelected,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
