package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore counts requests per key in fixed windows, shared across
// processes through Redis.
type RedisStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// RedisStoreOption customizes a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the Redis key namespace (default "ratelimit").
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) { s.prefix = strings.Trim(prefix, ":") }
}

// NewRedisStore creates a store allowing limit requests per window per
// key.
func NewRedisStore(client *redis.Client, limit int64, window time.Duration, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow implements Store with an INCR-based fixed window: the first
// request of a window sets the expiry, and requests beyond the limit
// are rejected until the window key expires.
func (s *RedisStore) Allow(ctx context.Context, key string) (Decision, error) {
	k := fmt.Sprintf("%s:%s", s.prefix, key)

	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("incrementing window counter: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("setting window expiry: %w", err)
		}
	}

	if n > s.limit {
		ttl, err := s.client.TTL(ctx, k).Result()
		if err != nil || ttl < 0 {
			ttl = s.window
		}
		return Decision{Allowed: false, RetryAfter: ttl}, nil
	}
	return Decision{Allowed: true}, nil
}
