package share

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	slugKeyPrefix  = "gymsplit::share::"
	DefaultSlugTTL = 24 * time.Hour
)

// RedisSlugCache caches slug -> plan id. The mapping never changes once issued,
// so entries only need a TTL to bound memory.
type RedisSlugCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisSlugCache(redisClient *redis.Client, ttl time.Duration) *RedisSlugCache {
	return &RedisSlugCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *RedisSlugCache) Get(ctx context.Context, slug string) (int, bool, error) {
	planID, err := c.redisClient.Get(ctx, slugKeyPrefix+slug).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return planID, true, nil
}

func (c *RedisSlugCache) Set(ctx context.Context, slug string, planID int) error {
	return c.redisClient.Set(ctx, slugKeyPrefix+slug, planID, c.ttl).Err()
}
