package cache

import (
	"context"
	"log/slog"
	"time"

	"happnings/config"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedis creates a Redis-backed cache shared across instances. Backend
// errors are logged and degrade to misses so a Redis outage never fails a
// request.
func NewRedis(cfg *config.CacheConfig, logger *slog.Logger) (service.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "connect to redis")
	}

	return &redisCache{
		client: client,
		prefix: cfg.KeyPrefix,
		logger: logger,
	}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	return value, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *redisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		c.logger.Warn("redis delete failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Reset scans for keys under the configured prefix instead of FLUSHDB so a
// shared Redis instance is not wiped.
func (c *redisCache) Reset(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("redis reset delete failed", slog.String("key", iter.Val()), slog.Any("error", err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("redis reset scan failed", slog.Any("error", err))
	}
}

// Close releases the underlying connection pool.
func (c *redisCache) Close() error {
	return c.client.Close()
}
