package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts as files under a directory, one
// entry per cache key. It backs the CLI, where artifacts survive across
// invocations so regenerating an identicon skips the encode.
type FileCache struct {
	dir    string
	closed bool
}

// NewFileCache creates a file-backed artifact cache rooted at dir.
// The directory is created if it doesn't exist.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// artifactEntry is the on-disk shape of one cached artifact. The bytes
// are the encoded PNG or SVG; the expiry only bounds disk growth, since
// rendering is deterministic and entries never go stale.
type artifactEntry struct {
	Artifact  []byte    `json:"artifact"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Get retrieves a cached artifact. Missing, corrupt, and expired
// entries all report a miss; the latter two are removed on the way.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.closed {
		return nil, false, ErrClosed
	}
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry artifactEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores artifact bytes under key. A zero ttl means the entry never
// expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if c.closed {
		return ErrClosed
	}

	entry := artifactEntry{
		Artifact: data,
	}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, entryData, 0644)
}

// Delete removes a cached artifact. Deleting a missing key is not an
// error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if c.closed {
		return ErrClosed
	}
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close marks the cache closed; subsequent operations return ErrClosed.
// Entries stay on disk for the next invocation.
func (c *FileCache) Close() error {
	c.closed = true
	return nil
}

// path converts a cache key to a file path. The first two characters of
// the key hash pick a subdirectory so large caches don't pile every
// entry into one dir.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	subdir := hash[:2]
	filename := hash[2:] + ".json"
	return filepath.Join(c.dir, subdir, filename)
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
