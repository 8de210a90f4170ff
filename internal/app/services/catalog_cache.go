package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dealora/dealora-core/internal/app/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const catalogVersionKey = "catalog:version"

// CatalogCache is a cache-aside layer over assembled catalog pages.
// Keys carry a version number that every coupon/store write bumps, so
// invalidation is one INCR instead of tracking individual keys. Cache
// failures fail open: the caller recomputes.
type CatalogCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCatalogCache(redisClient *redis.Client) *CatalogCache {
	return &CatalogCache{
		redis: redisClient,
		ttl:   time.Minute,
	}
}

func (c *CatalogCache) key(ctx context.Context, query *models.CatalogQuery) string {
	version, err := c.redis.Get(ctx, catalogVersionKey).Int64()
	if err != nil && err != redis.Nil {
		logrus.Warnf("catalog cache version read failed: %v", err)
	}
	return fmt.Sprintf("catalog:v%d:%s", version, query.CacheKey())
}

func (c *CatalogCache) Get(ctx context.Context, query *models.CatalogQuery) (*models.Pagination[[]models.CatalogItem], bool) {
	payload, err := c.redis.Get(ctx, c.key(ctx, query)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.Warnf("catalog cache read failed: %v", err)
		}
		return nil, false
	}

	var page models.Pagination[[]models.CatalogItem]
	if err := json.Unmarshal(payload, &page); err != nil {
		logrus.Warnf("catalog cache decode failed: %v", err)
		return nil, false
	}
	return &page, true
}

func (c *CatalogCache) Set(ctx context.Context, query *models.CatalogQuery, page *models.Pagination[[]models.CatalogItem]) {
	payload, err := json.Marshal(page)
	if err != nil {
		logrus.Warnf("catalog cache encode failed: %v", err)
		return
	}
	if err := c.redis.Set(ctx, c.key(ctx, query), payload, c.ttl).Err(); err != nil {
		logrus.Warnf("catalog cache write failed: %v", err)
	}
}

// Invalidate makes every cached page stale by bumping the version key.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.redis.Incr(ctx, catalogVersionKey).Err(); err != nil {
		logrus.Warnf("catalog cache invalidation failed: %v", err)
	}
}
