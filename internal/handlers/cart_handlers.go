package handlers

import (
	"net/http"

	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type cartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// AddOrUpdateCartItem handles POST /cart/items. Quantity is a delta: positive
// adds to the line, negative subtracts, and a line driven to zero or below is
// removed.
func (h *Handlers) AddOrUpdateCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Carts.AddOrUpdateItem(c.Request.Context(), customerID(c), req.ProductID, req.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RemoveCartItem handles DELETE /cart/items/:productId.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	productID, err := utils.ToUint(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	updated, err := h.Carts.RemoveItem(c.Request.Context(), customerID(c), productID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetCart handles GET /cart.
func (h *Handlers) GetCart(c *gin.Context) {
	cart, err := h.Carts.GetCart(c.Request.Context(), customerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}
