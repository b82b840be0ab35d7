package middleware

import (
	"net/http"

	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	customerIDHeader = "X-Customer-ID"
	sellerIDHeader   = "X-Seller-ID"
)

// CustomerIdentity reads the authenticated customer id forwarded by the edge
// proxy. Requests without one are rejected before any handler runs.
func CustomerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(customerIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + customerIDHeader + " header",
			})
			return
		}

		customerID, err := utils.ToUint(raw)
		if err != nil || customerID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid " + customerIDHeader + " header",
			})
			return
		}

		c.Request = c.Request.WithContext(
			utils.SetCustomerContext(c.Request.Context(), customerID),
		)

		c.Next()
	}
}

// SellerIdentity is the seller-facing counterpart of CustomerIdentity.
func SellerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(sellerIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + sellerIDHeader + " header",
			})
			return
		}

		sellerID, err := utils.ToUint(raw)
		if err != nil || sellerID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid " + sellerIDHeader + " header",
			})
			return
		}

		c.Request = c.Request.WithContext(
			utils.SetSellerContext(c.Request.Context(), sellerID),
		)

		c.Next()
	}
}
