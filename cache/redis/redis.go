package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/notmobil/backend/cache"
	"github.com/redis/go-redis/v9"
)

const summaryTTL = 10 * time.Minute

type RedisSummaryCache struct {
	client redis.UniversalClient
}

func NewRedisSummaryCache(ctx context.Context, devMode bool, redisEndpoint string) (*RedisSummaryCache, error) {
	var client redis.UniversalClient
	if devMode {
		client = redis.NewClient(&redis.Options{
			Addr: redisEndpoint,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: redisEndpoint,
			// Managed redis endpoints require TLS
			TLSConfig: &tls.Config{},
		})
	}

	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return &RedisSummaryCache{client: client}, nil
}

func buildSummaryKey(key string) string {
	return "summary:{" + key + "}"
}

func (c *RedisSummaryCache) GetSummary(ctx context.Context, key string) (string, error) {
	summary, err := c.client.Get(ctx, buildSummaryKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", cache.ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return summary, nil
}

func (c *RedisSummaryCache) SetSummary(ctx context.Context, key string, summary string) error {
	return c.client.Set(ctx, buildSummaryKey(key), summary, summaryTTL).Err()
}
