package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware rejects a client IP with 429 once it exceeds the limiter's budget
// for this route group. Limiter errors let the request through.
func Middleware(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err, "scope", scope)
			c.Next()
			return
		}
		if !ok {
			slog.Warn("rate limit exceeded", "scope", scope, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
