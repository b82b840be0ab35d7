package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"apparel-be/internal/logger"
	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	t.Run("GeneratesIDWhenMissing", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/test", func(c *gin.Context) {
			assert.NotEmpty(t, logger.RequestIDFrom(c.Request.Context()))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("PreservesExistingID", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/test", func(c *gin.Context) {
			assert.Equal(t, "test-id-123", logger.RequestIDFrom(c.Request.Context()))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "test-id-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
	})
}

func TestCustomerIdentity(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(CustomerIdentity())
		r.GET("/test", func(c *gin.Context) {
			customerID, ok := utils.GetCustomerIDFromContext(c.Request.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(42), customerID)
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("ValidHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Customer-ID", "42")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Customer-ID", "not-a-number")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ZeroID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Customer-ID", "0")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit())
	r.POST("/checkout", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// strict tier: burst of 5, then rejected
	var lastCode int
	for i := 0; i < burstStrict+1; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set("X-Request-ID", "rate-test")
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestResolveRateTier(t *testing.T) {
	newCtx := func(method, path string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(method, path, nil)
		return c
	}

	t.Run("MutatingOrderEndpoint", func(t *testing.T) {
		_, _, tier := resolveRateTier(newCtx("POST", "/orders/checkout"))
		assert.Equal(t, "strict", tier)
	})

	t.Run("ReadingOrders", func(t *testing.T) {
		_, _, tier := resolveRateTier(newCtx("GET", "/orders"))
		assert.Equal(t, "general", tier)
	})

	t.Run("Browsing", func(t *testing.T) {
		_, _, tier := resolveRateTier(newCtx("GET", "/products"))
		assert.Equal(t, "general", tier)
	})

	t.Run("InternalService", func(t *testing.T) {
		t.Setenv("INTERNAL_SECRET_KEY", "shhh")
		c := newCtx("POST", "/orders/checkout")
		c.Request.Header.Set("X-Service-Auth", "shhh")

		_, _, tier := resolveRateTier(c)
		assert.Equal(t, "internal", tier)
	})
}
