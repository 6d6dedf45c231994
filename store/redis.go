package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// redisKeyPrefix namespaces every key this store writes, so Clear only
// touches settings entries and never other data in the same database.
const redisKeyPrefix = "propkit:"

const redisDialTimeout = 5 * time.Second

// RedisStore persists keys in a Redis database. Writes are immediately
// durable from the client's point of view, so Sync is a no-op.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server described by dsn and verifies
// the connection with a ping before returning.
func NewRedisStore(dsn string) (*RedisStore, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis DSN: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logrus.WithField("addr", opt.Addr).Debug("connected to redis settings store")
	return &RedisStore{client: client}, nil
}

// Get retrieves a value by its key.
func (s *RedisStore) Get(key string) ([]byte, error) {
	value, err := s.client.Get(context.Background(), redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a key-value pair.
func (s *RedisStore) Set(key string, value []byte) error {
	return s.client.Set(context.Background(), redisKeyPrefix+key, value, 0).Err()
}

// Delete removes a key.
func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), redisKeyPrefix+key).Err()
}

// Exists checks if a key exists.
func (s *RedisStore) Exists(key string) (bool, error) {
	n, err := s.client.Exists(context.Background(), redisKeyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear removes every entry under the store's key prefix.
func (s *RedisStore) Clear() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan redis keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Sync is a no-op for the redis store.
func (s *RedisStore) Sync() error {
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
