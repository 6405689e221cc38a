//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"catchpac/internal/domain/user"
	"catchpac/internal/infra"
	"catchpac/internal/pkg/jwt"
	"catchpac/internal/pkg/password"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.String(1), args.Error(2)
}

func newAuthCommands(repo *MockUserRepository) commands.AuthCommands {
	return commands.NewAuthCommands(repo, jwt.NewService("test-secret", time.Hour))
}

func registerParams() commands.RegisterParams {
	return commands.RegisterParams{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "김철수",
		Company:  "한빛정밀",
		Role:     "BUYER",
	}
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := newAuthCommands(repo).Register(context.Background(), registerParams())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "buyer@example.com", result.User.Email)
		assert.Equal(t, "BUYER", result.User.Role)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(infra.WrapRepoErr("duplicate", assert.AnError, infra.KindDuplicateKey))

		_, err := newAuthCommands(repo).Register(context.Background(), registerParams())
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyUsed)
	})

	t.Run("invalid email", func(t *testing.T) {
		params := registerParams()
		params.Email = "not-an-email"

		_, err := newAuthCommands(new(MockUserRepository)).Register(context.Background(), params)
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("weak password", func(t *testing.T) {
		params := registerParams()
		params.Password = "12345"

		_, err := newAuthCommands(new(MockUserRepository)).Register(context.Background(), params)
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("invalid role", func(t *testing.T) {
		params := registerParams()
		params.Role = "ADMIN"

		_, err := newAuthCommands(new(MockUserRepository)).Register(context.Background(), params)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	view := &queries.AuthorizedUserView{
		ID:      uuid.New(),
		Email:   "buyer@example.com",
		Name:    "김철수",
		Company: "한빛정밀",
		Role:    "BUYER",
	}

	credentials := func(t *testing.T, pw string) user.Credentials {
		t.Helper()
		c, err := user.NewCredentials("buyer@example.com", pw)
		require.NoError(t, err)
		return c
	}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(view, hash, nil)

		result, err := newAuthCommands(repo).Login(context.Background(), credentials(t, "password123"))
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, view, result.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, mock.Anything).
			Return(nil, "", infra.WrapRepoErr("not found", assert.AnError, infra.KindNotFound))

		_, err := newAuthCommands(repo).Login(context.Background(), credentials(t, "password123"))
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, mock.Anything).Return(view, hash, nil)

		_, err := newAuthCommands(repo).Login(context.Background(), credentials(t, "wrongpass"))
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
