package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// AIRateLimiter bounds how often a single user can hit the AI endpoints.
// Nothing de-duplicates overlapping generations, so the limiter is the only
// guard against a user fanning out remote calls.
func AIRateLimiter(requestsPerMinute int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	perSecond := rate.Limit(float64(requestsPerMinute) / 60.0)

	getLimiter := func(userID string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters[userID]
		if !ok {
			limiter = rate.NewLimiter(perSecond, requestsPerMinute)
			limiters[userID] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			userID = c.ClientIP()
		}

		if !getLimiter(userID).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many AI requests, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}
