package handlers

import (
	"net/http"

	"apparel-be/internal/address"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListAddresses handles GET /addresses.
func (h *Handlers) ListAddresses(c *gin.Context) {
	addresses, err := h.Addresses.ListAddresses(c.Request.Context(), customerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

type createAddressRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	AddressLine1 string  `json:"address_line1" binding:"required"`
	AddressLine2 *string `json:"address_line2"`
	City         string  `json:"city" binding:"required"`
	Province     string  `json:"province" binding:"required"`
	PostalCode   string  `json:"postal_code" binding:"required"`
	Country      string  `json:"country" binding:"required"`
	SetAsDefault bool    `json:"set_as_default"`
}

// CreateAddress handles POST /addresses.
func (h *Handlers) CreateAddress(c *gin.Context) {
	var req createAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addr, err := h.Addresses.CreateAddress(c.Request.Context(), customerID(c), address.CreateAddressInput{
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		Province:     req.Province,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, addr)
}

// DeleteAddress handles DELETE /addresses/:id. Addresses are deactivated, not
// removed, so past orders keep a valid reference.
func (h *Handlers) DeleteAddress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}

	if err := h.Addresses.DeactivateAddress(c.Request.Context(), customerID(c), id); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefaultAddress handles PUT /addresses/:id/default.
func (h *Handlers) SetDefaultAddress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid address id"})
		return
	}

	if err := h.Addresses.SetDefaultAddress(c.Request.Context(), customerID(c), id); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
