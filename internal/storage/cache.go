package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// listCache memoizes directory listings keyed by a hash of the
// directory path and its modification time, so a UI polling loop doesn't
// re-stat and re-filter every file on every refresh when nothing has
// changed on disk. Never caches file contents, only filenames.
type listCache struct {
	mu      sync.Mutex
	entries map[uint64][]string
}

func newListCache() *listCache {
	return &listCache{entries: make(map[uint64][]string)}
}

func (c *listCache) key(dir string, modTime int64) uint64 {
	h := xxhash.New()
	fmt.Fprintf(h, "%s:%d", dir, modTime)
	return h.Sum64()
}

func (c *listCache) get(dir string) ([]string, bool) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, false
	}
	key := c.key(dir, info.ModTime().UnixNano())

	c.mu.Lock()
	defer c.mu.Unlock()
	names, ok := c.entries[key]
	return names, ok
}

func (c *listCache) put(dir string, names []string) {
	info, err := os.Stat(dir)
	if err != nil {
		return
	}
	key := c.key(dir, info.ModTime().UnixNano())

	c.mu.Lock()
	defer c.mu.Unlock()
	// Bound growth: a directory's mtime changes on every write, so stale
	// keys accumulate across the store's lifetime. Once more than 8 keys
	// are held, the whole map is cleared before the new entry is added.
	if len(c.entries) > 8 {
		c.entries = make(map[uint64][]string)
	}
	c.entries[key] = names
}
