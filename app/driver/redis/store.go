// Package redis provides the Redis-backed implementation of the local
// key-value store used for cache persistence.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"vocablo/app/config"
	"vocablo/app/port"
)

const keyPrefix = "vocablo:kv:"

// Store implements port.KVStore on Redis. Entries carry a TTL so abandoned
// session snapshots age out on their own.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewStore connects to Redis and verifies the connection.
func NewStore(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis store connected", "addr", cfg.RedisAddr)

	return &Store{
		client: client,
		ttl:    cfg.SessionStorageTTL,
		logger: logger.With("component", "redis_store"),
	}, nil
}

// NewStoreWithClient wraps an existing client. Used by tests.
func NewStoreWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "redis_store"),
	}
}

var _ port.KVStore = (*Store)(nil)

// Get returns the value stored under key, or port.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, port.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Set stores the value under key with the configured TTL.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

// HealthCheck verifies the Redis connection.
func (s *Store) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}
