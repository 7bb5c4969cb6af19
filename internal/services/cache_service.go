package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"transactions-api/internal/config"
	"transactions-api/internal/database"
	"transactions-api/internal/models"
	"transactions-api/pkg/logging"

	"github.com/redis/go-redis/v9"
)

// CacheService keeps recent fetch results in Redis so rapid dashboard
// refreshes do not hammer the provider API. It is a read-through cache
// with a short TTL; cache errors are logged and otherwise ignored.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService returns a cache backed by the shared Redis client, or
// nil when Redis is disabled.
func NewCacheService() *CacheService {
	client := database.GetRedis()
	if client == nil {
		return nil
	}
	return &CacheService{
		client: client,
		ttl:    time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second,
	}
}

// FetchCacheKey builds the cache key for one merchant and fetch window.
// Search text is excluded: it is applied client-side and does not change
// what is fetched.
func FetchCacheKey(merchantID string, filters models.TransactionFilters) string {
	status := filters.Status
	if status == "" {
		status = statusFilterAll
	}
	return fmt.Sprintf("transactions:%s:%s:%d", merchantID, status, filters.DateRange)
}

// GetFetchResult looks up a cached fetch result
func (c *CacheService) GetFetchResult(ctx context.Context, key string) (*models.FetchResult, bool) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logging.Warnf("Cache read failed for %s: %v", key, err)
		}
		return nil, false
	}

	var result models.FetchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logging.Warnf("Cache entry for %s is corrupt, dropping: %v", key, err)
		c.client.Del(ctx, key)
		return nil, false
	}

	return &result, true
}

// StoreFetchResult caches a fetch result for the configured TTL
func (c *CacheService) StoreFetchResult(ctx context.Context, key string, result *models.FetchResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		logging.Warnf("Cache encode failed for %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logging.Warnf("Cache write failed for %s: %v", key, err)
	}
}
