package config

import (
	"main/utils"
	"time"
)

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// Caching is optional: an empty RedisURL disables it.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		RedisURL: utils.GetEnvAsString("REDIS_URL", ""),
		TTL:      utils.GetEnvAsDuration("CACHE_TTL", 30*time.Second),
	}
}
