package fs

import (
	"os"
	"sync"
	"unique"

	"go.trai.ch/carve/internal/core/ports"
)

var _ ports.StatCache = (*StatCache)(nil)

// statResult is a memoized stat outcome. Missing files are memoized too so a
// pass does not re-stat a path that was absent a moment ago.
type statResult struct {
	mtime int64
	ok    bool
}

// StatCache implements ports.StatCache. Entries live until Flush, which
// callers invoke at the start of each resolution pass.
type StatCache struct {
	mu      sync.Mutex
	entries map[unique.Handle[string]]statResult
}

// NewStatCache creates an empty StatCache.
func NewStatCache() *StatCache {
	return &StatCache{
		entries: make(map[unique.Handle[string]]statResult),
	}
}

// ModTime returns the last-modified time of path in Unix nanoseconds.
func (c *StatCache) ModTime(path string) (int64, bool) {
	handle := unique.Make(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, hit := c.entries[handle]; hit {
		return res.mtime, res.ok
	}

	res := statResult{}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		res = statResult{mtime: info.ModTime().UnixNano(), ok: true}
	}
	c.entries[handle] = res
	return res.mtime, res.ok
}

// Flush drops all memoized entries.
func (c *StatCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[unique.Handle[string]]statResult)
}
