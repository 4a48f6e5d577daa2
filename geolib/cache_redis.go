package geolib

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisCacheNamespace = "geochain"

// RedisCache shares cached responses between several processes. Redis
// errors on reads degrade to a cache miss.
type RedisCache struct {
	client    redis.UniversalClient
	ctx       context.Context
	namespace string
	ttl       time.Duration
}

func (r *RedisCache) Get(key string) ([]byte, bool) {
	value, err := r.client.Get(r.ctx, r.key(key)).Bytes()
	if err != nil {
		return nil, false
	}

	return value, true
}

func (r *RedisCache) Has(key string) bool {
	count, err := r.client.Exists(r.ctx, r.key(key)).Result()

	return err == nil && count > 0
}

func (r *RedisCache) Set(key string, value []byte) error {
	compacted, err := compactCacheValue(value)
	if err != nil {
		return err
	}

	return r.client.Set(r.ctx, r.key(key), compacted, r.ttl).Err()
}

func (r *RedisCache) Remove(key string) error {
	err := r.client.Del(r.ctx, r.key(key)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}

	return err
}

func (r *RedisCache) key(key string) string {
	return r.namespace + ":" + cacheKey(key)
}

func NewRedisCache(client redis.UniversalClient, namespace string, ttl time.Duration) *RedisCache {
	if namespace == "" {
		namespace = DefaultRedisCacheNamespace
	}

	return &RedisCache{
		client:    client,
		ctx:       context.Background(),
		namespace: namespace,
		ttl:       ttl,
	}
}
