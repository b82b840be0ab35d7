package handlers

import (
	"net/http"
	"strconv"

	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type checkoutRequest struct {
	AddressID uuid.UUID `json:"address_id" binding:"required"`
}

// Checkout handles POST /orders/checkout. The whole cart becomes one order,
// or nothing happens at all.
func (h *Handlers) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Orders.Checkout(c.Request.Context(), customerID(c), req.AddressID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

type addOrderRequest struct {
	ProductID uint      `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	AddressID uuid.UUID `json:"address_id" binding:"required"`
}

// AddOrder handles POST /orders, ordering a single product directly.
func (h *Handlers) AddOrder(c *gin.Context) {
	var req addOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.Orders.AddOrder(c.Request.Context(), customerID(c), req.ProductID, req.Quantity, req.AddressID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

// CancelOrder handles POST /orders/:id/cancel.
func (h *Handlers) CancelOrder(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	o, err := h.Orders.CancelOrder(c.Request.Context(), customerID(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// GetOrder handles GET /orders/:id.
func (h *Handlers) GetOrder(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	o, err := h.Orders.GetOrder(c.Request.Context(), customerID(c), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// ListOrders handles GET /orders. An optional canceled=true|false query
// filters by status; omitting it returns everything.
func (h *Handlers) ListOrders(c *gin.Context) {
	var canceled *bool
	if raw := c.Query("canceled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid canceled filter"})
			return
		}
		canceled = &v
	}

	orders, err := h.Orders.ListOrders(c.Request.Context(), customerID(c), canceled)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListSellerOrders handles GET /seller/orders, every order containing at
// least one of the seller's products.
func (h *Handlers) ListSellerOrders(c *gin.Context) {
	orders, err := h.Orders.ListSellerOrders(c.Request.Context(), sellerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// MarkDelivered handles PUT /seller/orders/:id/delivered.
func (h *Handlers) MarkDelivered(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.Orders.MarkDelivered(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
