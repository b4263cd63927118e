// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	redisstore "github.com/taibuivan/restaurants/internal/platform/redis"
)

// RedisStore implements [Store] on top of plain Redis strings.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store; every key is namespaced by prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

/*
Get retrieves the value stored under key.

Returns:
  - string: Stored value
  - error: ErrNotFound if absent, connectivity errors otherwise
*/
func (store *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := store.client.Get(ctx, store.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis_kv_get_failed: %w", err)
	}
	return value, nil
}

// Set stores value without expiration.
func (store *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := store.client.Set(ctx, store.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis_kv_set_failed: %w", err)
	}
	return nil
}

// Ping implements [Store].
func (store *RedisStore) Ping(ctx context.Context) error {
	return redisstore.Ping(ctx, store.client)
}
