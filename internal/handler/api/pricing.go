package api

import (
	"net/http"

	"catchpac/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{pricingQueries: pricingQueries}
}

func (h *PricingHandler) MarketPricing(c *gin.Context) {
	rollup, err := h.pricingQueries.MarketPricing(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, rollup)
}
