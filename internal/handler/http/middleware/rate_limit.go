package middleware

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
)

const rateLimitMessage = "too many requests, please try again later"

// NewLimiter builds a per-IP limiter allowing perMinute requests per minute.
func NewLimiter(perMinute float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(perMinute/60, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetBurst(max(1, int(perMinute)))
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage(rateLimitMessage)
	return lmt
}

// RateLimiter rejects requests over the limit with 429.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpErr := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpErr != nil {
			abort(c, http.StatusTooManyRequests, rateLimitMessage)
			return
		}
		c.Next()
	}
}
