package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"petcare/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	scopeName     = "cache"
	keyAttribute  = "cache.key"
	scanBatchSize = 100
)

// Nil is wrapped by Get on a miss.
var Nil = redis.Nil

// RedisCache stores JSON documents with a TTL in seconds. Strings are stored as-is.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Increment(ctx context.Context, key string, duration int) (count int64, err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, otl otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   otl,
	}
}

func (c *redisCache) start(ctx context.Context, operation, key string) (context.Context, otel.Scope) {
	ctx, scope := c.otel.NewScope(ctx, scopeName, scopeName+"."+operation)
	scope.SetAttribute(keyAttribute, key)

	return ctx, scope
}

func (c *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := c.start(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := encode(value)
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, key, payload, seconds(duration)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write cache entry")

		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}

// Get fills value from the cached entry. Misses are not traced as errors.
func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := c.start(ctx, "Get", key)
	defer scope.End()

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			scope.TraceError(err)
		}

		return fmt.Errorf("get %s: %w", key, err)
	}

	if err = decode(raw, value); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")

		return err
	}

	return nil
}

// Increment bumps a counter. The TTL is only set by the call that creates the key,
// so the window is fixed rather than sliding.
func (c *redisCache) Increment(ctx context.Context, key string, duration int) (count int64, err error) {
	ctx, scope := c.start(ctx, "Increment", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var counter *redis.IntCmd

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		counter = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, seconds(duration))

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("increment %s: %w", key, err)
	}

	return counter.Val(), nil
}

func (c *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := c.start(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}

// Clear removes every key matching pattern, scanning in batches instead of using KEYS.
func (c *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := c.start(ctx, "Clear", pattern)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		cursor  uint64
		removed int64
	)

	for {
		var keys []string

		keys, cursor, err = c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("scan %s: %w", pattern, err)
		}

		if len(keys) > 0 {
			deleted, delErr := c.client.Unlink(ctx, keys...).Result()
			if delErr != nil {
				err = delErr

				return fmt.Errorf("unlink %s: %w", pattern, err)
			}

			removed += deleted
		}

		if cursor == 0 {
			break
		}
	}

	log.Debug().Str("pattern", pattern).Int64("removed", removed).Msg("cache cleared")

	return nil
}

func encode(value any) ([]byte, error) {
	switch typed := value.(type) {
	case string:
		return []byte(typed), nil
	case []byte:
		return typed, nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}

	return payload, nil
}

func decode(raw []byte, value any) error {
	if target, ok := value.(*string); ok {
		*target = string(raw)

		return nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return fmt.Errorf("decode cache value: %w", err)
	}

	return nil
}

func seconds(duration int) time.Duration {
	return time.Duration(duration) * time.Second
}
