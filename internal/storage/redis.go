package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisKVStore implements KVStore on a Redis client.  Values are
// stored without expiry; the selection store owns the key lifecycle.
type RedisKVStore struct {
	client *redis.Client
}

// NewRedisKVStore wraps an already-connected Redis client.
func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

// Get fetches the value at key, mapping redis.Nil onto ErrKeyNotFound.
func (r *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

// Set writes value at key.  Redis signals memory exhaustion with an
// "OOM" error prefix when maxmemory is configured without eviction;
// that case maps onto ErrQuotaExceeded so the caller can free space
// and retry.
func (r *RedisKVStore) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	if err != nil && strings.HasPrefix(err.Error(), "OOM") {
		return ErrQuotaExceeded
	}
	return err
}

// Remove deletes key.  Deleting a missing key is not an error.
func (r *RedisKVStore) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
