//go:build unit

package user_test

import (
	"testing"

	"catchpac/internal/domain/user"
	"catchpac/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestUser(t *testing.T) {
	t.Run("기본 성공 케이스", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "buyer@example.com", actual.Email().Value())
		assert.Equal(t, "한빛정밀", actual.Company())
		assert.Equal(t, user.RoleBuyer, actual.Role())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("이메일 검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "유효한 이메일 OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
		})

		for _, email := range []string{"", "invalid-email", "invalidemail.com"} {
			_, err := user.NewEmail(email)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, email)
		}
	})

	t.Run("역할 검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "BUYER 역할 OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("BUYER") },
			},
			{
				name:   "SELLER 역할 OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("SELLER") },
			},
			{
				name:   "잘못된 역할 NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("ADMIN") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "빈 역할 NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("필수 필드 검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "빈 이름 NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "빈 회사명 NG",
				mutate: func(b *builder.UserBuilder) { b.WithCompany("") },
				errIs:  user.ErrEmptyCompany,
			},
		})
	})
}

func TestPassword(t *testing.T) {
	t.Run("6자 이상 OK", func(t *testing.T) {
		pw, err := user.NewPassword("abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", pw.Value())
	})

	t.Run("6자 미만 NG", func(t *testing.T) {
		_, err := user.NewPassword("abc12")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("빈 비밀번호 NG", func(t *testing.T) {
		_, err := user.NewPassword("")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}
