package api

import (
	"errors"
	"net/http"

	"catchpac/internal/domain/user"
	reqdto "catchpac/internal/handler/dto/request"
	resdto "catchpac/internal/handler/dto/response"
	"catchpac/internal/handler/middleware"
	"catchpac/internal/pkg/config"
	"catchpac/internal/pkg/cookie"
	"catchpac/internal/pkg/jwt"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Identity failures keep the fixed Korean copy the frontend renders verbatim.
const (
	msgEmailInUse       = "이미 사용 중인 이메일입니다"
	msgInvalidEmail     = "올바른 이메일 형식이 아닙니다"
	msgWeakPassword     = "비밀번호가 너무 약합니다"
	msgWrongPassword    = "비밀번호가 올바르지 않습니다"
	msgUnknownEmail     = "등록되지 않은 이메일입니다"
	msgRegisterFallback = "회원가입 중 오류가 발생했습니다"
	msgLoginFallback    = "로그인 중 오류가 발생했습니다"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{"error": msgEmailInUse})
		case errors.Is(err, user.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
		case errors.Is(err, user.ErrPasswordTooWeak):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgWeakPassword})
		case errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrEmptyName),
			errors.Is(err, user.ErrEmptyCompany):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgRegisterFallback})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, user.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidEmail})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnknownEmail})
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgWrongPassword})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoginFallback})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())
	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
