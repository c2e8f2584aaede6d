package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for checkout request windows.
const requestKeyPrefix = "rl:checkout:"

// RedisStore is a Redis-backed fixed-window counter shared across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed counter store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Incr adds one hit for key. INCR and the expiry are pipelined; the expiry is
// only set when this hit opened the window, so the window boundary is stable
// under concurrent hits.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := requestKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", redisKey, err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, fmt.Errorf("expire %s: %w", redisKey, err)
		}
	}
	return count, nil
}
