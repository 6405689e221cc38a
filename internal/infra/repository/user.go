package repository

import (
	"context"

	"catchpac/internal/domain/user"
	"catchpac/internal/infra"
	"catchpac/internal/infra/db"
	"catchpac/internal/pkg/pgconv"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, name, company, role)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Name(),
		u.Company(),
		u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, infra.ClassifyPgErr(err))
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, name, company, role, is_admin, password_hash
		FROM users WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email.Value()).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Company,
		&view.Role,
		&view.IsAdmin,
		&hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, name, company, role, is_admin
		FROM users WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.Company,
		&view.Role,
		&view.IsAdmin,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// UserByID is the write-side snapshot read used by commands.
func (r *UserRepository) UserByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	const query = `SELECT id, company, role FROM users WHERE id = $1`

	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Company, &snap.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

// GrantAdminByEmail sets the admin flag on every user matching the email.
// Used by the setadmin CLI only.
func (r *UserRepository) GrantAdminByEmail(ctx context.Context, email string) (int64, error) {
	const query = `UPDATE users SET is_admin = TRUE WHERE email = $1`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to grant admin", err)
	}
	return tag.RowsAffected(), nil
}
