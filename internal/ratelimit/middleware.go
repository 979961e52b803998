package ratelimit

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests beyond the limiter's budget with 429. Each scope
// (typically the route path) has its own budget per client address.
func Middleware(l *Limiter, scope string) gin.HandlerFunc {
	detail := "Rate limit exceeded: " + l.Describe()
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		state, err := l.Take(c.Request.Context(), key)
		if err != nil {
			// fail open
			log.Printf("rate limiter unavailable for %s: %v", key, err)
			c.Next()
			return
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(state.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(state.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(state.Reset, 10))
		if state.Reached {
			c.Header("Retry-After", strconv.FormatInt(retryAfter(state.Reset, time.Now()), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": detail})
			return
		}
		c.Next()
	}
}

// retryAfter is the whole seconds until reset (a unix timestamp), at least one.
func retryAfter(reset int64, now time.Time) int64 {
	if d := reset - now.Unix(); d > 1 {
		return d
	}
	return 1
}
