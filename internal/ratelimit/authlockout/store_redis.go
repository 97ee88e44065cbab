// Package authlockout throttles failed password attempts per user. The
// signing path performs no automatic retries on decryption failure; this
// guard is what makes online brute-force probing of the password field —
// and with it, probing for a duress password's existence — expensive.
package authlockout

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"blocktrust/internal/platform/redis"
)

// RedisStore counts failures in Redis with a sliding expiry, so lockout state
// survives restarts and is shared across replicas.
type RedisStore struct {
	client *redis.Client
	window time.Duration
}

// NewRedis constructs a Redis-backed failure counter.
func NewRedis(client *redis.Client, window time.Duration) *RedisStore {
	return &RedisStore{client: client, window: window}
}

func (s *RedisStore) key(identifier string) string {
	return fmt.Sprintf("authlockout:%s", identifier)
}

// RecordFailure increments the failure count and returns the new total.
func (s *RedisStore) RecordFailure(ctx context.Context, identifier string) (int, error) {
	key := s.key(identifier)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("record auth failure: %w", err)
	}
	// Set the expiry on first failure only; later failures ride the window.
	if count == 1 {
		if err := s.client.Expire(ctx, key, s.window).Err(); err != nil {
			return int(count), fmt.Errorf("set lockout window: %w", err)
		}
	}
	return int(count), nil
}

// Failures returns the current failure count inside the window.
func (s *RedisStore) Failures(ctx context.Context, identifier string) (int, error) {
	count, err := s.client.Get(ctx, s.key(identifier)).Int()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get auth failures: %w", err)
	}
	return count, nil
}

// Clear wipes the failure count after a successful authentication.
func (s *RedisStore) Clear(ctx context.Context, identifier string) error {
	if err := s.client.Del(ctx, s.key(identifier)).Err(); err != nil {
		return fmt.Errorf("clear auth failures: %w", err)
	}
	return nil
}
