package ports

// PathResolver defines the interface for locating a reference on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// Resolve returns the first existing candidate for the given reference:
	// the base directory first, then the configured library search paths.
	// ok is false when no candidate exists. Resolution is deterministic and
	// idempotent for a given filesystem state.
	Resolve(basePath, reference string) (path string, ok bool)
}
