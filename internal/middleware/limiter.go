package middleware

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"apparel-be/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers
const (
	// checkout / payment / cancel
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// general browsing
	limitGeneral = rate.Limit(10)
	burstGeneral = 20

	// internal / trusted services
	limitInternal = rate.Limit(100)
	burstInternal = 200
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old entries from the visitors map to prevent memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit enforces a per-identity token bucket. Mutating order endpoints
// get the strict tier; everything else the general tier.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := resolveRateTier(c)

		var identity string
		if customerID, ok := utils.GetCustomerIDFromContext(c.Request.Context()); ok {
			identity = fmt.Sprintf("customer:%d", customerID)
		} else if sellerID, ok := utils.GetSellerIDFromContext(c.Request.Context()); ok {
			identity = fmt.Sprintf("seller:%d", sellerID)
		} else {
			identity = "ip:" + c.ClientIP()
		}

		// Same identity, separate quotas per tier.
		key := fmt.Sprintf("%s:%s", identity, tier)

		limiter := getVisitor(key, limit, burst)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": http.StatusText(http.StatusTooManyRequests),
			})
			return
		}

		c.Next()
	}
}

// resolveRateTier determines which rate limit policy applies to the request.
func resolveRateTier(c *gin.Context) (rate.Limit, int, string) {
	internalKey := os.Getenv("INTERNAL_SECRET_KEY")
	if internalKey != "" && c.GetHeader("X-Service-Auth") == internalKey {
		return limitInternal, burstInternal, "internal"
	}

	if c.Request.Method != http.MethodGet {
		switch {
		case pathHasPrefix(c, "/orders"), pathHasPrefix(c, "/checkout"), pathHasPrefix(c, "/payments"):
			return limitStrict, burstStrict, "strict"
		}
	}

	return limitGeneral, burstGeneral, "general"
}

func pathHasPrefix(c *gin.Context, prefix string) bool {
	p := c.Request.URL.Path
	return len(p) >= len(prefix) && p[:len(prefix)] == prefix
}
