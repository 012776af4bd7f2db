package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed cache. The client connects lazily on first use;
// network failures are logged at debug level and treated as misses.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis backend from a redis:// URL.
func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Redis{client: redis.NewClient(opts)}, nil
}

// Get returns the cached value, or a miss on any error.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Debug("Cache get failed", "key", key, "error", err)
		}
		return "", false
	}
	return val, true
}

// Set stores the value best-effort; failures are swallowed.
func (r *Redis) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Debug("Cache set failed", "key", key, "error", err)
	}
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
