package repository

import (
	"context"

	"catchpac/internal/domain/request"
	"catchpac/internal/infra"
	"catchpac/internal/infra/db"
	"catchpac/internal/pkg/pgconv"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(db db.DBTX) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.QuoteRequest) (uuid.UUID, error) {
	const query = `
		INSERT INTO quote_requests
			(id, buyer_id, buyer_company, category, maker, part_number,
			 quantity, desired_delivery, note, is_anonymous, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		req.ID(),
		req.BuyerID(),
		req.BuyerCompany(),
		req.Category().String(),
		req.Maker().String(),
		req.PartNumber(),
		req.Quantity(),
		req.DesiredDelivery(),
		req.Note(),
		req.IsAnonymous(),
		req.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create quote request", err, infra.ClassifyPgErr(err))
	}
	return id, nil
}

func (r *RequestRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*commands.RequestSnapshot, error) {
	const query = `
		SELECT id, buyer_id, quantity, status
		FROM quote_requests WHERE id = $1
		FOR UPDATE`

	var snap commands.RequestSnapshot
	err := tx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.BuyerID, &snap.Quantity, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock quote request", err)
	}
	return &snap, nil
}

func (r *RequestRepository) Close(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `UPDATE quote_requests SET status = 'CLOSED' WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to close quote request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

const requestViewColumns = `
	id, buyer_id, buyer_company, category, maker, part_number,
	quantity, desired_delivery, note, is_anonymous, status, created_at`

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	query := `SELECT ` + requestViewColumns + ` FROM quote_requests WHERE id = $1`

	view, err := scanRequestView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return view, nil
}

// ListByBuyer returns the buyer's own requests, newest first, with quote
// counts joined in a single query.
func (r *RequestRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*queries.RequestListItem, error) {
	const query = `
		SELECT r.id, r.buyer_id, r.buyer_company, r.category, r.maker, r.part_number,
		       r.quantity, r.desired_delivery, r.note, r.is_anonymous, r.status, r.created_at,
		       COUNT(q.id) AS quote_count
		FROM quote_requests r
		LEFT JOIN quote_responses q ON q.request_id = r.id
		WHERE r.buyer_id = $1
		GROUP BY r.id
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query, buyerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by buyer", err)
	}
	defer rows.Close()

	return collectRequestListItems(rows)
}

// ListOpen returns every OPEN request, newest first, for the seller view.
func (r *RequestRepository) ListOpen(ctx context.Context) ([]*queries.RequestListItem, error) {
	const query = `
		SELECT r.id, r.buyer_id, r.buyer_company, r.category, r.maker, r.part_number,
		       r.quantity, r.desired_delivery, r.note, r.is_anonymous, r.status, r.created_at,
		       COUNT(q.id) AS quote_count
		FROM quote_requests r
		LEFT JOIN quote_responses q ON q.request_id = r.id
		WHERE r.status = 'OPEN'
		GROUP BY r.id
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open requests", err)
	}
	defer rows.Close()

	return collectRequestListItems(rows)
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var view queries.RequestView
	err := row.Scan(
		&view.ID,
		&view.BuyerID,
		&view.BuyerCompany,
		&view.Category,
		&view.Maker,
		&view.PartNumber,
		&view.Quantity,
		&view.DesiredDelivery,
		&view.Note,
		&view.IsAnonymous,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func collectRequestListItems(rows pgx.Rows) ([]*queries.RequestListItem, error) {
	items := make([]*queries.RequestListItem, 0)
	for rows.Next() {
		var item queries.RequestListItem
		err := rows.Scan(
			&item.ID,
			&item.BuyerID,
			&item.BuyerCompany,
			&item.Category,
			&item.Maker,
			&item.PartNumber,
			&item.Quantity,
			&item.DesiredDelivery,
			&item.Note,
			&item.IsAnonymous,
			&item.Status,
			&item.CreatedAt,
			&item.QuoteCount,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return items, nil
}
