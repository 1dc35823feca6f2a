package projects

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const listCacheKey = "projects:list"

// ListCache is an optional Redis read-through cache for the full project
// list. A nil *ListCache is valid and disables caching entirely, so the
// handlers never need to branch on configuration.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	if ttl == 0 {
		ttl = 30 * time.Second
	}
	return &ListCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached list and true on a fresh hit. Cache errors degrade
// to a miss; the store remains the source of truth.
func (c *ListCache) Get(ctx context.Context) ([]Project, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get: %v", err)
		}
		return nil, false
	}

	var items []Project
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[cache] decode: %v", err)
		return nil, false
	}
	return items, true
}

func (c *ListCache) Set(ctx context.Context, items []Project) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, listCacheKey, raw, c.ttl).Err(); err != nil {
		log.Printf("[cache] set: %v", err)
	}
}

// Invalidate drops the cached list; called after every successful create.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, listCacheKey).Err(); err != nil {
		log.Printf("[cache] invalidate: %v", err)
	}
}
