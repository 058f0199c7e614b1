package di

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authadapters "greenthumb_backend/internal/feature/auth/adapters"
	"greenthumb_backend/internal/feature/auth/domain/entity"
	"greenthumb_backend/internal/platform/config"
	"greenthumb_backend/internal/platform/ratelimit"
	"greenthumb_backend/internal/platform/session"
)

func TestNewSessionRepository_PrefersRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewSessionRepository(context.Background(), rdb, nil)
	assert.IsType(t, &session.SessionRedis{}, repo)
}

func TestNewSessionRepository_FallsBackToDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&authadapters.SessionModel{}))

	now := time.Now()
	require.NoError(t, db.Create(&authadapters.SessionModel{
		ID: "old", UserID: "u1", CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&authadapters.SessionModel{
		ID: "live", UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}).Error)

	repo := NewSessionRepository(context.Background(), nil, db)

	_, err = repo.FindByID(context.Background(), "old")
	assert.Error(t, err)
	s, err := repo.FindByID(context.Background(), "live")
	require.NoError(t, err)
	assert.IsType(t, &entity.Session{}, s)
}

func TestNewAuthLimiter(t *testing.T) {
	assert.IsType(t, &ratelimit.MemoryLimiter{}, NewAuthLimiter(nil, 5, time.Minute))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	assert.IsType(t, &ratelimit.RedisLimiter{}, NewAuthLimiter(rdb, 5, time.Minute))
}

func TestNewOAuthProviders(t *testing.T) {
	assert.Empty(t, NewOAuthProviders(&config.Config{}))

	providers := NewOAuthProviders(&config.Config{
		GoogleClientID:   "g-id",
		FacebookClientID: "f-id",
	})
	require.Len(t, providers, 2)
	assert.Equal(t, "google", providers[0].Name())
	assert.Equal(t, "facebook", providers[1].Name())
}
