package routes

import (
	"net/http"

	"apparel-be/internal/handlers"
	"apparel-be/internal/metrics"
	"apparel-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the HTTP surface. Customer routes require the identity
// header; catalog reads are public.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimit())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"orders": gin.H{
				"checkouts_committed": metrics.CheckoutsCommitted.Load(),
				"checkouts_aborted":   metrics.CheckoutsAborted.Load(),
				"orders_canceled":     metrics.OrdersCanceled.Load(),
			},
		})
	})

	// public catalog
	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProduct)
	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:id", h.GetCategory)
	router.POST("/categories", h.CreateCategory)

	// customer-facing
	customer := router.Group("/")
	customer.Use(middleware.CustomerIdentity())
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart/items", h.AddOrUpdateCartItem)
		customer.DELETE("/cart/items/:productId", h.RemoveCartItem)

		customer.GET("/addresses", h.ListAddresses)
		customer.POST("/addresses", h.CreateAddress)
		customer.DELETE("/addresses/:id", h.DeleteAddress)
		customer.PUT("/addresses/:id/default", h.SetDefaultAddress)

		customer.POST("/orders/checkout", h.Checkout)
		customer.POST("/orders", h.AddOrder)
		customer.GET("/orders", h.ListOrders)
		customer.GET("/orders/:id", h.GetOrder)
		customer.POST("/orders/:id/cancel", h.CancelOrder)

		customer.POST("/payments/orders/:id", h.Pay)
		customer.GET("/payments/orders/:id", h.GetPayment)
	}

	// seller-facing
	seller := router.Group("/seller")
	seller.Use(middleware.SellerIdentity())
	{
		seller.POST("/products", h.CreateProduct)
		seller.PATCH("/products/:id", h.UpdateProduct)
		seller.GET("/orders", h.ListSellerOrders)
		seller.PUT("/orders/:id/delivered", h.MarkDelivered)
	}

	return router
}
