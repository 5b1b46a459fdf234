// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glossabay/glossa/internal/platform/constants"
)

// # Redis Result Cache

// RedisResultCache implements ResultCache on a Redis client. Entries are
// JSON-encoded results keyed by a hash of the request triple, expiring
// after the configured TTL.
type RedisResultCache struct {
	client     *redis.Client
	timeToLive time.Duration
}

/*
NewRedisResultCache builds a ResultCache backed by Redis.

Parameters:
  - client: an already-connected Redis client.
  - timeToLive: entry lifetime; zero falls back to the default TTL.

Returns:
  - *RedisResultCache: the configured cache.
*/
func NewRedisResultCache(client *redis.Client, timeToLive time.Duration) *RedisResultCache {
	if timeToLive <= 0 {
		timeToLive = constants.DefaultCacheTTL
	}
	return &RedisResultCache{
		client:     client,
		timeToLive: timeToLive,
	}
}

// Get implements ResultCache. A missing key is (nil, nil).
func (cache *RedisResultCache) Get(ctx context.Context, request Request) (*Result, error) {
	raw, err := cache.client.Get(ctx, cache.key(request)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("translation_cache_get_failed: %w", err)
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("translation_cache_decode_failed: %w", err)
	}

	return &result, nil
}

// Set implements ResultCache.
func (cache *RedisResultCache) Set(ctx context.Context, request Request, result Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("translation_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, cache.key(request), raw, cache.timeToLive).Err(); err != nil {
		return fmt.Errorf("translation_cache_set_failed: %w", err)
	}

	return nil
}

func (cache *RedisResultCache) key(request Request) string {
	return constants.RedisPrefixTranslation + cacheKey(request)
}
