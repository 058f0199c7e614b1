// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"greenthumb_backend/internal/feature/messages/domain/entity"
	"greenthumb_backend/internal/feature/messages/usecase"
)

// CachingMessageRepository decorates a MessageRepository with a Redis
// read-through cache for the board listing. Writes go to the inner
// repository first and then drop the cached listings.
type CachingMessageRepository struct {
	inner     usecase.MessageRepository
	rdb       redis.Cmdable
	ttl       time.Duration
	namespace string
}

var _ usecase.MessageRepository = (*CachingMessageRepository)(nil)

// NewCachingMessageRepository wraps inner. A nil rdb disables caching.
// If ttl is 0, it defaults to 30 seconds. If namespace is empty, it uses "messages".
func NewCachingMessageRepository(rdb redis.Cmdable, ttl time.Duration, inner usecase.MessageRepository, namespace string) *CachingMessageRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "messages"
	}
	return &CachingMessageRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// List serves the listing from cache, falling back to the inner repository.
func (c *CachingMessageRepository) List(ctx context.Context, limit int) ([]*entity.Message, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, limit)
	}

	key := c.listKey(limit)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []*entity.Message
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("failed to cache message list", "error", err)
		}
	}
	return out, nil
}

func (c *CachingMessageRepository) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	return c.inner.FindByID(ctx, id)
}

func (c *CachingMessageRepository) Create(ctx context.Context, m *entity.Message) error {
	if err := c.inner.Create(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMessageRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMessageRepository) listKey(limit int) string {
	return fmt.Sprintf("%s:list:%d", c.namespace, limit)
}

// invalidate drops every cached listing. Failures are logged; entries expire on their own.
func (c *CachingMessageRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.namespace+":list:*"); err != nil {
		slog.Warn("failed to invalidate message cache", "error", err)
	}
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMessageRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}
