package di

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "greenthumb_backend/internal/feature/auth/adapters"
	"greenthumb_backend/internal/feature/auth/usecase"
	"greenthumb_backend/internal/platform/session"
)

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the SQL database and prunes expired rows once.
func NewSessionRepository(ctx context.Context, rdb *redis.Client, db *gorm.DB) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}

	repo := authadapters.NewSessionGorm(db)
	if n, err := repo.DeleteExpired(ctx); err != nil {
		slog.Warn("failed to prune expired sessions", "error", err)
	} else if n > 0 {
		slog.Info("pruned expired sessions", "count", n)
	}
	return repo
}
