package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/go-redis/redis/v8"
)

// redisCache implements [Cache] on top of a go-redis client. Values are
// stored as JSON.
type redisCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisCache connects to the Redis server described by cfg and verifies
// the connection with PING.
func NewRedisCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisCache").Str("address", cfg.RedisAddress).Msg("error connecting redis")
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddress, err)
	}
	log.Info().Str("func", "NewRedisCache").Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	return newRedisCache(client, log), nil
}

func newRedisCache(client *redis.Client, log *logger.Logger) *redisCache {
	return &redisCache{client: client, logger: log}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get %q: %w", key, err)
	}

	if err = json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decoding cached %q: %w", key, err)
	}

	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q for cache: %w", key, err)
	}

	if err = c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func (c *redisCache) DeleteByPrefix(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		var keys []string

		iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan %q: %w", prefix, err)
		}

		if err := c.Delete(ctx, keys...); err != nil {
			return err
		}
	}

	return nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
