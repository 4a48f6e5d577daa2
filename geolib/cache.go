package geolib

import (
	"bytes"
	"crypto/md5" // nolint: gosec
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// GetOrDefault returns a cached value or fallback if there is nothing
// under the key.
func GetOrDefault(cache Cache, key string, fallback []byte) []byte {
	if value, ok := cache.Get(key); ok {
		return value
	}

	return fallback
}

func cacheKey(key string) string {
	sum := md5.Sum([]byte(key)) // nolint: gosec

	return hex.EncodeToString(sum[:])
}

func compactCacheValue(value []byte) ([]byte, error) {
	buf := bytes.Buffer{}

	if err := json.Compact(&buf, value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCacheValue, err)
	}

	return buf.Bytes(), nil
}
