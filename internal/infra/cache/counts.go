package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ifuut-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const countsKey = "admin:counts"

// RedisCountsCache stores the dashboard counters as one JSON value with a TTL.
type RedisCountsCache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

func NewRedisCountsCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisCountsCache {
	key := countsKey
	if prefix != "" {
		key = prefix + ":" + countsKey
	}
	return &RedisCountsCache{client: client, key: key, ttl: ttl}
}

func (c *RedisCountsCache) Get(ctx context.Context) (*queries.CountsView, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var v queries.CountsView
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, err
	}
	return &v, true, nil
}

func (c *RedisCountsCache) Set(ctx context.Context, counts queries.CountsView) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *RedisCountsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}

// NoopCountsCache is used when no Redis URL is configured.
type NoopCountsCache struct{}

func (NoopCountsCache) Get(context.Context) (*queries.CountsView, bool, error) { return nil, false, nil }
func (NoopCountsCache) Set(context.Context, queries.CountsView) error          { return nil }
func (NoopCountsCache) Invalidate(context.Context) error                       { return nil }
