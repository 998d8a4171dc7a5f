package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "paddy:projection:"

// ProjectionCache stores read projection responses as JSON.
type ProjectionCache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	// Flush drops every cached projection.
	Flush(ctx context.Context) error
}

type RedisProjectionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProjectionCache(rdb *redis.Client, ttl time.Duration) *RedisProjectionCache {
	return &RedisProjectionCache{rdb: rdb, ttl: ttl}
}

func (c *RedisProjectionCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisProjectionCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

func (c *RedisProjectionCache) Flush(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// NoopProjectionCache never stores anything. Used when REDIS_URL is unset.
type NoopProjectionCache struct{}

func (NoopProjectionCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, nil
}

func (NoopProjectionCache) Set(context.Context, string, interface{}) error {
	return nil
}

func (NoopProjectionCache) Flush(context.Context) error {
	return nil
}
