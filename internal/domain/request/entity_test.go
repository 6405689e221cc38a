//go:build unit

package request_test

import (
	"testing"

	"catchpac/internal/domain/request"
	"catchpac/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RequestBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRequestBuilder()
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

func TestQuoteRequest(t *testing.T) {
	t.Run("기본 성공 케이스", func(t *testing.T) {
		actual, err := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, request.CategoryBearing, actual.Category())
		assert.Equal(t, request.MakerSKF, actual.Maker())
		assert.Equal(t, request.StatusOpen, actual.Status())
		assert.True(t, actual.IsOpen())
	})

	t.Run("카테고리 검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "고정 카테고리 OK",
				mutate: func(b *builder.RequestBuilder) { b.WithCategory("MOTOR") },
			},
			{
				name:   "미지원 카테고리 NG",
				mutate: func(b *builder.RequestBuilder) { b.WithCategory("GEARBOX") },
				errIs:  request.ErrInvalidCategory,
			},
			{
				name:   "빈 카테고리 NG",
				mutate: func(b *builder.RequestBuilder) { b.WithCategory("") },
				errIs:  request.ErrInvalidCategory,
			},
		})
	})

	t.Run("제조사 검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "고정 제조사 OK",
				mutate: func(b *builder.RequestBuilder) { b.WithMaker("SIEMENS") },
			},
			{
				name:   "OTHER 제조사 OK",
				mutate: func(b *builder.RequestBuilder) { b.WithMaker("OTHER") },
			},
			{
				name:   "미지원 제조사 NG",
				mutate: func(b *builder.RequestBuilder) { b.WithMaker("unknown") },
				errIs:  request.ErrInvalidMaker,
			},
		})
	})

	t.Run("수량과 품번 검증", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "수량 1 OK",
				mutate: func(b *builder.RequestBuilder) { b.WithQuantity(1) },
			},
			{
				name:   "수량 0 NG",
				mutate: func(b *builder.RequestBuilder) { b.WithQuantity(0) },
				errIs:  request.ErrInvalidQuantity,
			},
			{
				name:   "음수 수량 NG",
				mutate: func(b *builder.RequestBuilder) { b.WithQuantity(-3) },
				errIs:  request.ErrInvalidQuantity,
			},
			{
				name:   "빈 품번 NG",
				mutate: func(b *builder.RequestBuilder) { b.WithPartNumber("") },
				errIs:  request.ErrEmptyPartNumber,
			},
		})
	})

	t.Run("마감은 단방향", func(t *testing.T) {
		entity, err := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entity.Close())
		assert.Equal(t, request.StatusClosed, entity.Status())
		assert.False(t, entity.IsOpen())

		assert.ErrorIs(t, entity.Close(), request.ErrAlreadyClosed)
	})
}
