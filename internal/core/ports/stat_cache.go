package ports

// StatCache defines the interface for memoized modification-time lookups.
//
//go:generate go run go.uber.org/mock/mockgen -source=stat_cache.go -destination=mocks/mock_stat_cache.go -package=mocks
type StatCache interface {
	// ModTime returns the last-modified time of path in Unix nanoseconds.
	// ok is false for a missing or unreadable file. Results are memoized
	// until Flush to avoid redundant filesystem calls within one pass.
	ModTime(path string) (mtime int64, ok bool)

	// Flush drops all memoized entries. Callers invoke it at the start of
	// each resolution pass so changes on disk become visible.
	Flush()
}
