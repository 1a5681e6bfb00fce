// Package cache stores rendered identicon artifacts so repeated requests
// for the same input skip the render stage.
//
// The package provides a small Cache interface with several backends:
//   - FileCache: entries as files under a directory, for CLI usage
//   - RedisCache: shared cache for multi-instance service deployments
//   - NullCache: no-op cache for tests or when caching is disabled
//
// Cache keys are derived from the input digest plus the render options,
// so the same input cached at different sizes or formats occupies
// separate entries. Identicons are pure functions of their input, so
// entries never go stale; TTLs exist only to bound disk and memory use.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash([]byte(input)), cache.ArtifactKeyOpts{
//	    Format: "png",
//	    Size:   250,
//	})
//	if data, hit, err := c.Get(ctx, key); err == nil && hit {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Rendering is
// deterministic, so the TTL only bounds storage growth.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is the interface shared by all backends.
//
// Get returns the cached data and whether the key was present. A miss is
// not an error. Set stores data under key; a zero ttl means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
