package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"greenthumb_backend/internal/platform/ratelimit"
)

// NewAuthLimiter returns the limiter guarding public auth routes.
// Counters live in Redis when available so that every replica shares them.
func NewAuthLimiter(rdb *redis.Client, limit int, window time.Duration) ratelimit.Limiter {
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, "ratelimit", limit, window)
	}
	return ratelimit.NewMemoryLimiter(limit, window)
}
