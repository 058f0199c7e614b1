package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"greenthumb_backend/internal/feature/auth/domain/entity"
	"greenthumb_backend/internal/feature/auth/usecase"
)

// seedSession creates a test session in the database for testing.
func seedSession(t *testing.T, db *gorm.DB, id, userID string, expiresAt time.Time, revokedAt *time.Time) *entity.Session {
	t.Helper()

	session := &SessionModel{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
		RevokedAt: revokedAt,
	}
	require.NoError(t, db.Create(session).Error, "failed to seed session")

	return session.ToEntity()
}

func TestNewSessionGorm(t *testing.T) {
	repo := NewSessionGorm(setupTestDB(t))

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestSessionGorm_CreateAndFind(t *testing.T) {
	repo := NewSessionGorm(setupTestDB(t))
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	session := &entity.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		UserAgent: "Mozilla/5.0",
		IPAddress: "::1",
		CreatedAt: now,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.FindByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "Mozilla/5.0", got.UserAgent)
	assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))
	assert.True(t, got.IsValid())

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionGorm_Revoke(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionGorm(db)
	ctx := context.Background()
	seedSession(t, db, "sess-1", "user-1", time.Now().Add(time.Hour), nil)

	require.NoError(t, repo.Revoke(ctx, "sess-1"))

	got, err := repo.FindByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsRevoked())
	assert.False(t, got.IsValid())

	assert.ErrorIs(t, repo.Revoke(ctx, "missing"), usecase.ErrSessionNotFound)
}

func TestSessionGorm_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionGorm(db)
	ctx := context.Background()
	seedSession(t, db, "old-1", "user-1", time.Now().Add(-time.Hour), nil)
	seedSession(t, db, "old-2", "user-1", time.Now().Add(-2*time.Hour), nil)
	seedSession(t, db, "live", "user-1", time.Now().Add(time.Hour), nil)

	n, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = repo.FindByID(ctx, "live")
	assert.NoError(t, err)
	_, err = repo.FindByID(ctx, "old-1")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}
