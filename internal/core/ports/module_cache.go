package ports

import "go.trai.ch/carve/internal/core/domain"

// ModuleCache defines the interface for the compiled-module cache. The cache
// is keyed by full path and owns the compiled modules; callers hold shared
// read-only views and detect replacement by comparing generations, not
// pointers.
//
//go:generate go run go.uber.org/mock/mockgen -source=module_cache.go -destination=mocks/mock_module_cache.go -package=mocks
type ModuleCache interface {
	// IsCached reports whether an entry exists for the path. Entries for
	// failed compiles count: a library that failed once is cached as a
	// failure and does not warn again.
	IsCached(path string) bool

	// Lookup returns the cached module and its generation. The module is
	// nil and the generation zero when the path has never been stored or
	// the last compile failed with no prior module to keep.
	Lookup(path string) (module *domain.FileModule, generation uint64)

	// Evaluate returns the current compiled module for the path,
	// recompiling when the on-disk state is newer than the cached entry and
	// returning the cached entry unchanged otherwise. On compile failure
	// the cache keeps whatever module it had before and the returned module
	// is nil. mtime is the on-disk modification time observed, 0 when the
	// file is gone.
	Evaluate(path string) (module *domain.FileModule, generation uint64, mtime int64)
}
