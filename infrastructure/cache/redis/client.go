// ABOUTME: Redis cache implementation using go-redis, with optional RedisJSON storage
// ABOUTME: Lets several client processes share one response cache

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"articles-app-client/core/interfaces"
	"articles-app-client/pkg/config"
)

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client     *redis.Client
	json       *rejson.Handler
	defaultTTL time.Duration
}

// NewRedisCache creates a new Redis cache instance.
// When cfg.JSON is set, values are stored as RedisJSON documents so they can
// be inspected with JSON.GET; this requires the RedisJSON module.
func NewRedisCache(cfg config.RedisConfig, defaultTTL time.Duration) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}

	c := &RedisCache{
		client:     client,
		defaultTTL: defaultTTL,
	}

	if cfg.JSON {
		handler := rejson.NewReJSONHandler()
		handler.SetGoRedisClient(client)
		c.json = handler
	}

	return c, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.json != nil {
		return c.getJSON(key)
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.defaultTTL
	}

	if c.json == nil {
		return c.client.Set(ctx, key, value, ttl).Err()
	}

	if !json.Valid(value) {
		return fmt.Errorf("redis json cache: value for %s is not valid JSON", key)
	}
	if _, err := c.json.JSONSet(key, ".", json.RawMessage(value)); err != nil {
		return err
	}
	if ttl > 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}
	return nil
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	// Deleting a missing key is not an error for our use case
	return c.client.Del(ctx, key).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) getJSON(key string) ([]byte, error) {
	val, err := c.json.JSONGet(key, ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	switch v := val.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case nil:
		return nil, interfaces.ErrCacheMiss
	default:
		return nil, fmt.Errorf("redis json cache: unexpected value type %T", val)
	}
}
