package handlers

import (
	"net/http"

	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type payRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required"`
}

// Pay handles POST /payments/orders/:id.
func (h *Handlers) Pay(c *gin.Context) {
	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Payments.Pay(c.Request.Context(), customerID(c), orderID, req.Amount, req.Method)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// GetPayment handles GET /payments/orders/:id.
func (h *Handlers) GetPayment(c *gin.Context) {
	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	p, err := h.Payments.GetPayment(c.Request.Context(), customerID(c), orderID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
