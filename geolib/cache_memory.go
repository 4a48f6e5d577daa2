package geolib

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// MemoryCache keeps up to a given amount of entries in memory. Entries
// expire after ttl, zero ttl means they live until evicted.
type MemoryCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func (m *MemoryCache) Get(key string) ([]byte, bool) {
	value, ok := m.cache.Get(cacheKey(key))
	if !ok {
		return nil, false
	}

	return append([]byte(nil), value.([]byte)...), true
}

func (m *MemoryCache) Has(key string) bool {
	_, ok := m.cache.Get(cacheKey(key))

	return ok
}

func (m *MemoryCache) Set(key string, value []byte) error {
	compacted, err := compactCacheValue(value)
	if err != nil {
		return err
	}

	m.cache.SetWithTTL(cacheKey(key), compacted, 1, m.ttl)

	// ristretto is eventually consistent
	m.cache.Wait()

	return nil
}

func (m *MemoryCache) Remove(key string) error {
	m.cache.Del(cacheKey(key))

	return nil
}

func (m *MemoryCache) Close() {
	m.cache.Close()
}

func NewMemoryCache(itemsCount uint, ttl time.Duration) (*MemoryCache, error) {
	if itemsCount == 0 {
		return nil, fmt.Errorf("items count should be positive")
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		MaxCost:            int64(itemsCount),
		NumCounters:        10 * int64(itemsCount),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create ristretto cache: %w", err)
	}

	return &MemoryCache{
		cache: cache,
		ttl:   ttl,
	}, nil
}
