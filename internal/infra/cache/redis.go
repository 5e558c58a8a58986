package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient creates a go-redis client with the BFA's pool and timeout defaults.
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// Redis is a JSON-encoded TTL cache stored under a key prefix.
// Redis errors degrade to cache misses; they are logged, never returned.
type Redis[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedis wraps client as a cache. prefix namespaces every key ("mitra:reply:").
func NewRedis[T any](client *redis.Client, prefix string, ttl time.Duration, logger *zap.Logger) *Redis[T] {
	return &Redis[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

// Ping checks the connection.
func (c *Redis[T]) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *Redis[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis cache get failed", zap.String("key", key), zap.Error(err))
		}
		return zero, false
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		c.logger.Warn("redis cache entry undecodable", zap.String("key", key), zap.Error(err))
		return zero, false
	}
	return v, true
}

func (c *Redis[T]) Set(ctx context.Context, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("redis cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("redis cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Redis[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Warn("redis cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the underlying client.
func (c *Redis[T]) Close() error {
	return c.client.Close()
}
