//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"catchpac/internal/domain/user"
	"catchpac/internal/handler/dto/request"
	"catchpac/internal/handler/dto/response"
	"catchpac/internal/usecase/queries"
	"catchpac/tests/common/authtest"
	"catchpac/tests/common/httptest"
	"catchpac/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestsURL = "/api/requests"
	quotesURL   = "/api/quotes"
	pricingURL  = "/api/pricing"
)

type marketplaceSuite struct {
	e2e.SharedSuite
}

func TestMarketplaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) loginBuyer(email, company string) string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, company, string(user.RoleBuyer))
}

func (s *marketplaceSuite) loginSeller(email, company string) string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, company, string(user.RoleSeller))
}

func (s *marketplaceSuite) createRequest(token string, quantity int) uuid.UUID {
	t := s.T()
	body := request.CreateRequestRequest{
		Category:        "BEARING",
		Maker:           "SKF",
		PartNumber:      "6204-2RS",
		Quantity:        quantity,
		DesiredDelivery: "2주 이내",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreatedResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	require.NotEqual(t, uuid.Nil, created.ID)
	return created.ID
}

func (s *marketplaceSuite) submitQuote(token string, requestID uuid.UUID, unitPrice int64, deliveryDays int) *stdhttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%s/quotes", requestsURL, requestID),
		request.SubmitQuoteRequest{UnitPrice: unitPrice, DeliveryDays: deliveryDays, InStock: true},
		token)
}

func (s *marketplaceSuite) TestQuoteLifecycle() {
	s.Run("견적 요청부터 선택까지 전체 흐름", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")

		requestID := s.createRequest(buyerToken, 4)

		// Seller submits a quote; total is unit price times request quantity.
		w := s.submitQuote(sellerToken, requestID, 450000, 14)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var submitted queries.QuoteView
		httptest.DecodeResponseBody(t, w.Body, &submitted)
		require.Equal(t, int64(1_800_000), submitted.TotalPrice)
		require.Equal(t, "대한부품상사", submitted.SellerCompany)

		// Buyer sees the quote on the detail view, request still open.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", requestsURL, requestID), nil, buyerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var detail queries.RequestDetailView
		httptest.DecodeResponseBody(t, w.Body, &detail)
		require.Equal(t, "OPEN", detail.Request.Status)
		require.Len(t, detail.Quotes, 1)
		require.False(t, detail.Quotes[0].IsSelected)

		// Buyer selects the quote.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/quotes/%s/select", requestsURL, requestID, submitted.ID), nil, buyerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Selection closes the request and marks the quote.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", requestsURL, requestID), nil, buyerToken)
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &detail)
		require.Equal(t, "CLOSED", detail.Request.Status)
		require.True(t, detail.Quotes[0].IsSelected)
	})

	s.Run("마감된 요청에는 견적 제출 불가", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")
		lateSellerToken := s.loginSeller("late@example.com", "서울산업")

		requestID := s.createRequest(buyerToken, 4)

		w := s.submitQuote(sellerToken, requestID, 450000, 14)
		require.Equal(t, http.StatusCreated, w.Code)
		var submitted queries.QuoteView
		httptest.DecodeResponseBody(t, w.Body, &submitted)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/quotes/%s/select", requestsURL, requestID, submitted.ID), nil, buyerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = s.submitQuote(lateSellerToken, requestID, 400000, 7)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("같은 요청에 중복 견적 불가", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")

		requestID := s.createRequest(buyerToken, 4)

		w := s.submitQuote(sellerToken, requestID, 450000, 14)
		require.Equal(t, http.StatusCreated, w.Code)

		w = s.submitQuote(sellerToken, requestID, 440000, 10)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "already quoted")
	})

	s.Run("요청 소유자만 견적 선택 가능", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		otherBuyerToken := s.loginBuyer("other@example.com", "부산기계")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")

		requestID := s.createRequest(buyerToken, 4)
		w := s.submitQuote(sellerToken, requestID, 450000, 14)
		require.Equal(t, http.StatusCreated, w.Code)
		var submitted queries.QuoteView
		httptest.DecodeResponseBody(t, w.Body, &submitted)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/quotes/%s/select", requestsURL, requestID, submitted.ID), nil, otherBuyerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("판매자는 요청을 생성할 수 없음", func() {
		t := s.T()

		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")

		body := request.CreateRequestRequest{
			Category:        "BEARING",
			Maker:           "SKF",
			PartNumber:      "6204-2RS",
			Quantity:        4,
			DesiredDelivery: "2주 이내",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body, sellerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *marketplaceSuite) TestRequestListing() {
	s.Run("구매자는 자기 요청만 조회", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		otherBuyerToken := s.loginBuyer("other@example.com", "부산기계")

		s.createRequest(buyerToken, 4)
		s.createRequest(buyerToken, 2)
		s.createRequest(otherBuyerToken, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, buyerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []*queries.RequestListItem
		httptest.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 2)
	})

	s.Run("판매자는 열린 요청 전체를 조회", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		otherBuyerToken := s.loginBuyer("other@example.com", "부산기계")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")

		s.createRequest(buyerToken, 4)
		s.createRequest(otherBuyerToken, 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, sellerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []*queries.RequestListItem
		httptest.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 2)
	})

	s.Run("견적 수가 목록에 포함됨", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")
		secondSellerToken := s.loginSeller("second@example.com", "서울산업")

		requestID := s.createRequest(buyerToken, 4)
		require.Equal(t, http.StatusCreated, s.submitQuote(sellerToken, requestID, 450000, 14).Code)
		require.Equal(t, http.StatusCreated, s.submitQuote(secondSellerToken, requestID, 430000, 20).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil, buyerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []*queries.RequestListItem
		httptest.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 1)
		require.Equal(t, int64(2), items[0].QuoteCount)
	})

	s.Run("정렬 파라미터에 따라 견적 순서가 바뀜", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")
		secondSellerToken := s.loginSeller("second@example.com", "서울산업")

		requestID := s.createRequest(buyerToken, 4)
		// cheap but slow vs expensive but fast
		require.Equal(t, http.StatusCreated, s.submitQuote(sellerToken, requestID, 400000, 21).Code)
		require.Equal(t, http.StatusCreated, s.submitQuote(secondSellerToken, requestID, 500000, 7).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s?sort=price", requestsURL, requestID), nil, buyerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var detail queries.RequestDetailView
		httptest.DecodeResponseBody(t, w.Body, &detail)
		require.Len(t, detail.Quotes, 2)
		require.Equal(t, int64(400000), detail.Quotes[0].UnitPrice)
		require.NotNil(t, detail.CheapestQuoteID)
		require.Equal(t, detail.Quotes[0].ID, *detail.CheapestQuoteID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s?sort=delivery", requestsURL, requestID), nil, buyerToken)
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &detail)
		require.Equal(t, 7, detail.Quotes[0].DeliveryDays)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s?sort=rating", requestsURL, requestID), nil, buyerToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *marketplaceSuite) TestSellerQuoteListing() {
	s.Run("판매자는 자기 견적 목록을 조회", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")

		first := s.createRequest(buyerToken, 4)
		second := s.createRequest(buyerToken, 2)
		require.Equal(t, http.StatusCreated, s.submitQuote(sellerToken, first, 450000, 14).Code)
		require.Equal(t, http.StatusCreated, s.submitQuote(sellerToken, second, 300000, 7).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, quotesURL, nil, sellerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []*queries.SellerQuoteView
		httptest.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 2)
		require.NotNil(t, items[0].Request)
	})

	s.Run("구매자는 판매자 견적 목록에 접근 불가", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, quotesURL, nil, buyerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *marketplaceSuite) TestMarketPricing() {
	s.Run("견적이 카테고리별 시세에 집계됨", func() {
		t := s.T()

		buyerToken := s.loginBuyer("buyer@example.com", "한빛정밀")
		sellerToken := s.loginSeller("seller@example.com", "대한부품상사")
		secondSellerToken := s.loginSeller("second@example.com", "서울산업")

		requestID := s.createRequest(buyerToken, 4)
		require.Equal(t, http.StatusCreated, s.submitQuote(sellerToken, requestID, 400000, 10).Code)
		require.Equal(t, http.StatusCreated, s.submitQuote(secondSellerToken, requestID, 600000, 20).Code)

		// Pricing is a public read, no token required.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rollup []*queries.CategoryPricing
		httptest.DecodeResponseBody(t, w.Body, &rollup)
		require.Len(t, rollup, 1)
		require.Equal(t, "BEARING", rollup[0].Category)
		require.Equal(t, int64(500000), rollup[0].AvgUnitPrice)
		require.Equal(t, 15, rollup[0].AvgDeliveryDays)
		require.Equal(t, 2, rollup[0].SampleCount)
	})

	s.Run("견적이 없으면 빈 시세", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pricingURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var rollup []*queries.CategoryPricing
		httptest.DecodeResponseBody(t, w.Body, &rollup)
		require.Empty(t, rollup)
	})
}
