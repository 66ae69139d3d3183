// Package modcache implements the compiled-module cache. It is the single
// process-wide owner of compiled FileModules, keyed by full path.
package modcache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleCache = (*Cache)(nil)

// entry is one cached compile outcome. A failed compile still has an entry:
// module keeps whatever the last successful compile produced (nil if none),
// and the recorded mtime/digest stop the same broken content from being
// recompiled, and warned about, on every pass.
type entry struct {
	module     *domain.FileModule
	generation uint64
	mtime      int64
	digest     uint64
}

// Cache implements ports.ModuleCache. All mutation happens behind one coarse
// mutex; compiled modules handed out are shared read-only views, and a
// replaced module is detected by its generation, never by pointer identity.
type Cache struct {
	parser ports.Parser
	stat   ports.StatCache
	logger ports.Logger

	mu         sync.Mutex
	entries    map[string]*entry
	generation uint64
}

// NewCache creates an empty Cache.
func NewCache(parser ports.Parser, stat ports.StatCache, logger ports.Logger) *Cache {
	return &Cache{
		parser:  parser,
		stat:    stat,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// IsCached reports whether an entry exists for the path, including entries
// recording a failed compile.
func (c *Cache) IsCached(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.entries[path]
	return exists
}

// Lookup returns the cached module and its generation without touching the
// filesystem.
func (c *Cache) Lookup(path string) (*domain.FileModule, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, exists := c.entries[path]
	if !exists {
		return nil, 0
	}
	return e.module, e.generation
}

// Evaluate returns the current compiled module for the path, recompiling
// when the on-disk modification time has advanced past the cached entry.
// A touch that leaves the content byte-identical refreshes the recorded
// mtime without recompiling. On compile failure the previous module is kept
// and nil is returned.
func (c *Cache) Evaluate(path string) (*domain.FileModule, uint64, int64) {
	mtime, ok := c.stat.ModTime(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[path]

	if !ok {
		// File vanished. The entry, if any, keeps its last module so prior
		// callers stay usable, but this pass observes an absence.
		if e != nil {
			return nil, e.generation, 0
		}
		return nil, 0, 0
	}

	if e != nil && mtime <= e.mtime {
		return e.module, e.generation, e.mtime
	}

	//nolint:gosec // Path was produced by the search-path resolver
	source, err := os.ReadFile(path)
	if err != nil {
		c.logger.Error(zerr.With(zerr.Wrap(err, "failed to read module"), "path", path))
		if e != nil {
			return nil, e.generation, mtime
		}
		c.entries[path] = &entry{mtime: mtime}
		return nil, 0, mtime
	}

	digest := xxhash.Sum64(source)
	if e != nil && digest == e.digest {
		e.mtime = mtime
		return e.module, e.generation, e.mtime
	}

	if e == nil {
		e = &entry{}
		c.entries[path] = e
	}
	e.mtime = mtime
	e.digest = digest

	c.logger.Debug(fmt.Sprintf("compiling library %q", path))
	module, err := c.parser.Parse(source, filepath.Dir(path), path)
	if err != nil {
		// Keep the old module on compile errors; the caller sees nil and
		// decides whether that deserves a user-visible warning.
		c.logger.Error(err)
		return nil, e.generation, mtime
	}

	c.generation++
	e.module = module
	e.generation = c.generation
	return e.module, e.generation, e.mtime
}

// Size returns the number of cache entries. Used by tests and diagnostics.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
