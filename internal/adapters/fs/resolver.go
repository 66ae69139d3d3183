// Package fs implements filesystem adapters: search-path resolution and the
// memoized stat cache.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/carve/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver with a same-directory-first search
// policy followed by the configured library paths.
type Resolver struct {
	searchPaths []string
}

// NewResolver creates a Resolver with the given library search paths.
func NewResolver(searchPaths []string) *Resolver {
	return &Resolver{searchPaths: searchPaths}
}

// Resolve returns the first existing candidate for the reference. An
// absolute reference resolves to itself when it exists; a relative reference
// is tried against the base directory first, then against each library
// search path in order.
func (r *Resolver) Resolve(basePath, reference string) (string, bool) {
	if filepath.IsAbs(reference) {
		if isRegular(reference) {
			return filepath.Clean(reference), true
		}
		return "", false
	}

	candidates := make([]string, 0, len(r.searchPaths)+1)
	if basePath != "" {
		candidates = append(candidates, filepath.Join(basePath, reference))
	}
	for _, dir := range r.searchPaths {
		candidates = append(candidates, filepath.Join(dir, reference))
	}

	for _, candidate := range candidates {
		if isRegular(candidate) {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate, true
			}
			return abs, true
		}
	}
	return "", false
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
