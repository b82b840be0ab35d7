package middleware

import (
	"apparel-be/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id so log lines across layers can be
// correlated. An id supplied by the caller is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Request = c.Request.WithContext(
			logger.WithRequestID(c.Request.Context(), reqID),
		)
		c.Writer.Header().Set(requestIDHeader, reqID)

		c.Next()
	}
}
