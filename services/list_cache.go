package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the unfiltered list endpoints. Writes invalidate the
// keys they can affect.
const (
	CacheKeyTodos      = "list:todos"
	CacheKeyHabits     = "list:habits"
	CacheKeyProjects   = "list:projects"
	CacheKeyCategories = "list:habit_categories"
)

// ListCache is a Redis-backed cache for list responses. A nil ListCache
// is valid and disables caching, so callers never have to guard for it.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache connects to Redis and returns a cache using the given TTL
// for every entry.
func NewListCache(redisURL string, ttl time.Duration) (*ListCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ListCache{client: client, ttl: ttl}, nil
}

func (lc *ListCache) Enabled() bool {
	return lc != nil && lc.client != nil
}

// Get unmarshals a cached entry into dest and reports whether it was a
// hit. Cache errors are logged and treated as misses.
func (lc *ListCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if !lc.Enabled() {
		return false
	}

	data, err := lc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("Cache read failed for %s: %v", key, err)
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("Cache decode failed for %s: %v", key, err)
		return false
	}
	return true
}

// Set stores a value under key. Failures are logged, never surfaced.
func (lc *ListCache) Set(ctx context.Context, key string, value interface{}) {
	if !lc.Enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Cache encode failed for %s: %v", key, err)
		return
	}

	if err := lc.client.Set(ctx, key, data, lc.ttl).Err(); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

// Invalidate drops the given keys.
func (lc *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if !lc.Enabled() || len(keys) == 0 {
		return
	}

	if err := lc.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache invalidation failed: %v", err)
	}
}

// Close closes the Redis connection.
func (lc *ListCache) Close() error {
	if !lc.Enabled() {
		return nil
	}
	return lc.client.Close()
}
