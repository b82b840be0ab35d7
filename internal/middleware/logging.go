package middleware

import (
	"time"

	"apparel-be/internal/logger"
	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger emits one structured line per request after it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
		}
		if customerID, ok := utils.GetCustomerIDFromContext(c.Request.Context()); ok {
			fields = append(fields, zap.Uint("customer_id", customerID))
		}

		log := logger.FromCtx(c.Request.Context())
		if c.Writer.Status() >= 500 {
			log.Error("http request", fields...)
		} else {
			log.Info("http request", fields...)
		}
	}
}
