package cache

import (
	"log/slog"
	"time"
)

// Backend names.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds configuration for cache creation.
type Config struct {
	// RedisURL selects the Redis backend when set.
	RedisURL        string
	Prefix          string
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
}

// New creates a Redis cache when RedisURL is set and reachable, and a memory
// cache otherwise. It returns the name of the backend in use.
func New(cfg Config) (Cache, string) {
	if cfg.RedisURL != "" {
		rc, err := NewRedisCache(RedisOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
		if err == nil {
			return rc, BackendRedis
		}
		slog.Warn("redis unavailable, falling back to memory cache", "error", err)
	}

	return NewMemoryCache(cfg.DefaultTTL, cfg.CleanupInterval), BackendMemory
}
