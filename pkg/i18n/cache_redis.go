package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces cache keys written by RedisCache.
const DefaultRedisPrefix = "i18n"

// RedisCache shares loaded translation groups between processes.
// Groups are stored as JSON under "{prefix}:{locale}:{group}".
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithRedisPrefix sets the key prefix.
// Default: "i18n".
func WithRedisPrefix(prefix string) RedisCacheOption {
	return func(c *RedisCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithRedisTTL sets how long entries are kept. Zero keeps them until
// deleted, so a deployment that ships new translations has to flush the
// prefix or set a TTL.
// Default: 0.
func WithRedisTTL(ttl time.Duration) RedisCacheOption {
	return func(c *RedisCache) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// NewRedisCache creates a cache backed by client.
// The client should be obtained from pkg/redis.Open.
func NewRedisCache(client redis.UniversalClient, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client: client,
		prefix: DefaultRedisPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the group stored for (locale, group), or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, locale, group string) (Node, error) {
	data, err := c.client.Get(ctx, c.key(locale, group)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, errors.Join(ErrInvalidResource, err)
	}
	return node, nil
}

// Put stores data for (locale, group).
func (c *RedisCache) Put(ctx context.Context, locale, group string, data Node) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(locale, group), raw, c.ttl).Err()
}

func (c *RedisCache) key(locale, group string) string {
	return c.prefix + ":" + locale + ":" + group
}

var _ Cache = (*RedisCache)(nil)
