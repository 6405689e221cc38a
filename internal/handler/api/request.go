package api

import (
	"errors"
	"net/http"

	reqdto "catchpac/internal/handler/dto/request"
	resdto "catchpac/internal/handler/dto/response"
	"catchpac/internal/handler/middleware"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(requestCommands commands.RequestCommands, requestQueries queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.requestCommands.CreateRequest(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBuyerRoleRequired):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only buyers can post quote requests",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.requestQueries.List(c.Request.Context(), userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	sortBy, err := queries.NewQuoteSort(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort parameter",
		})
		return
	}

	detail, err := h.requestQueries.GetDetail(c.Request.Context(), id, sortBy)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, detail)
}
