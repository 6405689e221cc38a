package commands

import (
	"context"

	"catchpac/internal/domain/user"
	"catchpac/internal/infra"
	"catchpac/internal/pkg/errs"
	"catchpac/internal/pkg/jwt"
	"catchpac/internal/pkg/password"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyUsed     = errs.New("email already in use")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
}

type RegisterParams struct {
	Email    string
	Password string
	Name     string
	Company  string
	Role     string
}

type AuthResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, credentials user.Credentials) (*AuthResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(params.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(params.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := user.NewUser(email, hash, params.Name, params.Company, role)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}

	return a.issueToken(entity.ID(), role, &queries.AuthorizedUserView{
		ID:      entity.ID(),
		Email:   email.Value(),
		Name:    entity.Name(),
		Company: entity.Company(),
		Role:    role.String(),
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*AuthResult, error) {
	view, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return a.issueToken(view.ID, role, view)
}

func (a *authCommandsImpl) issueToken(userID uuid.UUID, role user.Role, view *queries.AuthorizedUserView) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{Token: token, User: view}, nil
}
