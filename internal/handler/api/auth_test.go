//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"catchpac/internal/domain/user"
	"catchpac/internal/handler/api"
	resdto "catchpac/internal/handler/dto/response"
	"catchpac/internal/pkg/config"
	"catchpac/internal/pkg/jwt"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())

	s.router.POST("/api/auth/register", s.handler.Register)
	s.router.POST("/api/auth/login", s.handler.Login)
	s.router.POST("/api/auth/logout", s.handler.Logout)
	s.router.GET("/api/auth/me", func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/api/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO("BUYER")
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns 201 with token and profile", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToParams()).
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 409 with fixed message on duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmailAlreadyUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "이미 사용 중인 이메일입니다")
	})

	s.Run("error: 400 with fixed message on invalid email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, user.ErrInvalidEmail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "올바른 이메일 형식이 아닙니다")
	})

	s.Run("error: 400 with fixed message on weak password", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, user.ErrPasswordTooWeak).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "비밀번호가 너무 약합니다")
	})

	s.Run("error: 400 on missing fields", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("company", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns 200 and sets cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.AuthResult{Token: "test-jwt-token", User: returnUser}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.User.Email)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 401 with fixed message on unknown email", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "등록되지 않은 이메일입니다")
	})

	s.Run("error: 401 with fixed message on wrong password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "비밀번호가 올바르지 않습니다")
	})

	s.Run("error: 400 on malformed email", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "not-an-email"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "올바른 이메일 형식이 아닙니다")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/api/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns the current profile", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when the user row is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
