package api

import (
	"errors"
	"net/http"

	reqdto "catchpac/internal/handler/dto/request"
	"catchpac/internal/handler/middleware"
	"catchpac/internal/usecase/commands"
	"catchpac/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
	quoteQueries  queries.QuoteQueries
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands, quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
		quoteQueries:  quoteQueries,
	}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	var req reqdto.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteCommands.SubmitQuote(c.Request.Context(), userID, requestID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSellerRoleRequired):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only sellers can submit quotes",
			})
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errors.Is(err, commands.ErrRequestClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is already closed",
			})
		case errors.Is(err, commands.ErrDuplicateQuote):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You have already quoted this request",
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

	c.JSON(http.StatusCreated, view)
}

func (h *QuoteHandler) SelectQuote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}
	quoteID, err := uuid.Parse(c.Param("quoteID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quote ID format",
		})
		return
	}

	if err := h.quoteCommands.SelectQuote(c.Request.Context(), userID, requestID, quoteID); err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		case errors.Is(err, commands.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Quote not found",
			})
		case errors.Is(err, commands.ErrNotRequestOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the request owner can select a quote",
			})
		case errors.Is(err, commands.ErrRequestClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request is already closed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) ListMyQuotes(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	quotes, err := h.quoteQueries.ListBySeller(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, quotes)
}
