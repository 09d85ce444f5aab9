// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"wordford/internal/feature/content/domain/entity"
	"wordford/internal/feature/content/usecase"
)

// CachingContentRepository decorates a ContentRepository with a Redis
// read-through cache of each page's content list.
// Writes go to the inner repository first and then drop the page's key.
type CachingContentRepository struct {
	inner     usecase.ContentRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ContentRepository = (*CachingContentRepository)(nil)

// NewCachingContentRepository decorates a ContentRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "content".
// A nil rdb makes every call go straight to inner.
func NewCachingContentRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ContentRepository, namespace string) *CachingContentRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "content"
	}
	return &CachingContentRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the content and invalidates the page's cached list.
func (c *CachingContentRepository) Create(ctx context.Context, content *entity.Content) error {
	if err := c.inner.Create(ctx, content); err != nil {
		return err
	}
	c.invalidate(ctx, content.PageID)
	return nil
}

// FindByID is not cached.
func (c *CachingContentRepository) FindByID(ctx context.Context, id uint) (*entity.Content, error) {
	return c.inner.FindByID(ctx, id)
}

// Delete removes the content and invalidates the page's cached list.
func (c *CachingContentRepository) Delete(ctx context.Context, content *entity.Content) error {
	if err := c.inner.Delete(ctx, content); err != nil {
		return err
	}
	c.invalidate(ctx, content.PageID)
	return nil
}

// ListByPage checks the cache first, then falls back to the inner repository.
func (c *CachingContentRepository) ListByPage(ctx context.Context, pageID uint) ([]entity.Content, error) {
	if c.rdb == nil {
		return c.inner.ListByPage(ctx, pageID)
	}

	key := c.cacheKey(pageID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Content
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("page content cache write failed", "key", key, "error", err)
		}
	}

	return out, nil
}

// invalidate drops the cached list of pageID. Failures are logged and otherwise ignored;
// the entry still expires after ttl.
func (c *CachingContentRepository) invalidate(ctx context.Context, pageID uint) {
	if c.rdb == nil {
		return
	}
	key := c.cacheKey(pageID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("page content cache invalidation failed", "key", key, "error", err)
	}
}

func (c *CachingContentRepository) cacheKey(pageID uint) string {
	return fmt.Sprintf("%s:page:%d", c.namespace, pageID)
}
