package handlers

import (
	"errors"
	"net/http"

	"apparel-be/internal/address"
	"apparel-be/internal/cart"
	"apparel-be/internal/category"
	"apparel-be/internal/logger"
	"apparel-be/internal/order"
	"apparel-be/internal/payment"
	"apparel-be/internal/product"
	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the HTTP surface over the domain services.
type Handlers struct {
	Products   product.Service
	Carts      cart.Service
	Addresses  address.Service
	Orders     order.Service
	Payments   payment.Service
	Categories category.Service
}

func New(
	products product.Service,
	carts cart.Service,
	addresses address.Service,
	orders order.Service,
	payments payment.Service,
	categories category.Service,
) *Handlers {
	return &Handlers{
		Products:   products,
		Carts:      carts,
		Addresses:  addresses,
		Orders:     orders,
		Payments:   payments,
		Categories: categories,
	}
}

// respondErr translates domain errors into HTTP status codes. Unknown errors
// get a 500 without leaking internals.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, address.ErrAddressNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, category.ErrCategoryNotFound),
		errors.Is(err, payment.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrOrderAlreadyCanceled),
		errors.Is(err, payment.ErrAlreadyPaid),
		errors.Is(err, category.ErrCategoryExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, cart.ErrCartEmpty),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidQuantity),
		errors.Is(err, payment.ErrOrderCanceled),
		errors.Is(err, payment.ErrAmountMismatch),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, category.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// customerID pulls the identity placed by the middleware. The middleware
// guarantees presence on protected routes.
func customerID(c *gin.Context) uint {
	id, _ := utils.GetCustomerIDFromContext(c.Request.Context())
	return id
}

func sellerID(c *gin.Context) uint {
	id, _ := utils.GetSellerIDFromContext(c.Request.Context())
	return id
}
