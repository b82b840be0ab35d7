package handlers

import (
	"net/http"

	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListCategories handles GET /categories.
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.Categories.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategory handles GET /categories/:id.
func (h *Handlers) GetCategory(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	cat, err := h.Categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

type createCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory handles POST /categories.
func (h *Handlers) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.Categories.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, cat)
}
