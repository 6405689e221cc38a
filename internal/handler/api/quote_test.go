//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"catchpac/internal/handler/api"
	reqdto "catchpac/internal/handler/dto/request"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"
	"catchpac/tests/common/builder"
	"catchpac/tests/common/httptest"
	"catchpac/tests/common/testutil"
	commandsmock "catchpac/tests/mock/commands"
	queriesmock "catchpac/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.QuoteHandler
	sellerID     uuid.UUID
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.sellerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockQueries)

	withUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.sellerID)
			h(c)
		}
	}
	s.router.POST("/api/requests/:id/quotes", withUser(s.handler.SubmitQuote))
	s.router.POST("/api/requests/:id/quotes/:quoteID/select", withUser(s.handler.SelectQuote))
	s.router.GET("/api/quotes", withUser(s.handler.ListMyQuotes))
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestSubmitQuote() {
	requestID := uuid.New()
	url := fmt.Sprintf("/api/requests/%s/quotes", requestID)

	reqBody := reqdto.SubmitQuoteRequest{
		UnitPrice:    450000,
		DeliveryDays: 14,
		InStock:      true,
	}
	returnView := builder.NewQuoteBuilder().BuildView()

	s.Run("success: returns 201 with the created quote", func() {
		s.mockCommands.EXPECT().
			SubmitQuote(gomock.Any(), s.sellerID, requestID, reqBody.ToParams()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.TotalPrice, response.TotalPrice)
	})

	s.Run("error: 400 on non-numeric unit price", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("unit_price", "45만원"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on zero delivery days", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("delivery_days", 0))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 403 when caller is not a seller", func() {
		s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), s.sellerID, requestID, gomock.Any()).
			Return(nil, commands.ErrSellerRoleRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 409 on duplicate quote", func() {
		s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), s.sellerID, requestID, gomock.Any()).
			Return(nil, commands.ErrDuplicateQuote).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already quoted")
	})

	s.Run("error: 409 on closed request", func() {
		s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), s.sellerID, requestID, gomock.Any()).
			Return(nil, commands.ErrRequestClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "closed")
	})

	s.Run("error: 404 on unknown request", func() {
		s.mockCommands.EXPECT().SubmitQuote(gomock.Any(), s.sellerID, requestID, gomock.Any()).
			Return(nil, commands.ErrRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *QuoteHandlerTestSuite) TestSelectQuote() {
	requestID := uuid.New()
	quoteID := uuid.New()
	url := fmt.Sprintf("/api/requests/%s/quotes/%s/select", requestID, quoteID)

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().
			SelectQuote(gomock.Any(), s.sellerID, requestID, quoteID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when caller does not own the request", func() {
		s.mockCommands.EXPECT().SelectQuote(gomock.Any(), s.sellerID, requestID, quoteID).
			Return(commands.ErrNotRequestOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 409 when the request is already closed", func() {
		s.mockCommands.EXPECT().SelectQuote(gomock.Any(), s.sellerID, requestID, quoteID).
			Return(commands.ErrRequestClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 on malformed quote id", func() {
		badURL := fmt.Sprintf("/api/requests/%s/quotes/not-a-uuid/select", requestID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, badURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *QuoteHandlerTestSuite) TestListMyQuotes() {
	s.Run("success: returns the seller's quotes", func() {
		view := builder.NewQuoteBuilder().BuildView()
		items := []*queries.SellerQuoteView{{QuoteView: *view}}
		s.mockQueries.EXPECT().ListBySeller(gomock.Any(), s.sellerID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes", nil, "")

		var response []*queries.SellerQuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(view.ID, response[0].ID)
	})
}
