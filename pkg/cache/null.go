package cache

import (
	"context"
	"time"
)

// NullCache never stores anything, so every render is computed fresh.
// It backs --no-cache and the cache.backend = "none" configuration, and
// keeps pipeline tests independent of cache state.
type NullCache struct{}

// NewNullCache creates a cache that discards everything.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always reports a miss, forcing a re-render.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the artifact.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing; there is never anything to remove.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
