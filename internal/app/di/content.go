// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contentadapters "wordford/internal/feature/content/adapters"
	"wordford/internal/feature/content/usecase"
	"wordford/internal/platform/cache"
)

// NewContentRepository creates a ContentRepository.
// If Redis is available, page content reads are cached in it.
// Otherwise, every call goes to the database.
func NewContentRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ContentRepository {
	repo := contentadapters.NewContentRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingContentRepository(rdb, ttl, repo, "content")
}
