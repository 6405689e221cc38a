package queries

import (
	"context"

	"catchpac/internal/infra"
	"catchpac/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserReadStore
}

func NewUserQueries(repo UserReadStore) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.repo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
