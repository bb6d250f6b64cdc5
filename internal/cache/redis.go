package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when a key is absent.
var ErrMiss = errors.New("cache miss")

// Cache is a small JSON-over-Redis cache with key prefixing. A nil
// *Cache is a valid no-op cache so callers can run without Redis.
type Cache struct {
	client *redis.Client
	prefix string
}

func New(ctx context.Context, addr, password string, db int, prefix string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     20,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Cache{client: rdb, prefix: prefix}, nil
}

func (c *Cache) key(parts ...string) string {
	return c.prefix + ":" + strings.Join(parts, ":")
}

// Set marshals value as JSON and stores it under the prefixed key.
func (c *Cache) Set(ctx context.Context, value interface{}, ttl time.Duration, parts ...string) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(parts...), data, ttl).Err()
}

// Get unmarshals the stored JSON into dest, returning ErrMiss when the
// key is absent.
func (c *Cache) Get(ctx context.Context, dest interface{}, parts ...string) error {
	if c == nil {
		return ErrMiss
	}
	data, err := c.client.Get(ctx, c.key(parts...)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
