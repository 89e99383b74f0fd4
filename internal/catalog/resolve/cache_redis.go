package resolve

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/chalkfarm/folio/internal/platform/constants"
)

// RedisCache implements ResultCache on a shared redis client.
//
// Two key families, both expiring:
//
//	catalog:isbn:{canonical}      -> book edition id (positive, long TTL)
//	catalog:isbn_miss:{canonical} -> "1"             (negative, short TTL)
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) GetResolved(context context.Context, canonical string) (int64, bool, error) {
	value, err := cache.client.Get(context, constants.RedisPrefixResolve+canonical).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// A corrupt entry is equivalent to no entry.
		return 0, false, nil
	}
	return id, true, nil
}

func (cache *RedisCache) GetMiss(context context.Context, canonical string) (bool, error) {
	err := cache.client.Get(context, constants.RedisPrefixResolveMiss+canonical).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (cache *RedisCache) SetResolved(context context.Context, canonical string, bookEditionID int64) error {
	return cache.client.Set(context,
		constants.RedisPrefixResolve+canonical,
		strconv.FormatInt(bookEditionID, 10),
		constants.ResolveCacheTTL,
	).Err()
}

func (cache *RedisCache) SetMiss(context context.Context, canonical string) error {
	return cache.client.Set(context,
		constants.RedisPrefixResolveMiss+canonical,
		"1",
		constants.ResolveMissTTL,
	).Err()
}
