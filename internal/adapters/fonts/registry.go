// Package fonts implements the font registry the module system hands font
// files to. Fonts are registered fire-and-forget and are not module-cached.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
)

var _ ports.FontRegistry = (*Registry)(nil)

// Registry implements ports.FontRegistry with an in-memory table keyed by
// registered path.
type Registry struct {
	logger ports.Logger

	mu    sync.RWMutex
	files map[domain.InternedString]string // path -> family name
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger ports.Logger) *Registry {
	return &Registry{
		logger: logger,
		files:  make(map[domain.InternedString]string),
	}
}

// RegisterFontFile makes the font at path available to the renderer.
// Unreadable paths are reported and skipped; re-registration is a no-op.
func (r *Registry) RegisterFontFile(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		r.logger.Warn(fmt.Sprintf("can't read font with path %q", path))
		return
	}

	key := domain.NewInternedString(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.files[key]; exists {
		return
	}
	r.files[key] = familyName(path)
}

// IsRegistered reports whether the path has been registered.
func (r *Registry) IsRegistered(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.files[domain.NewInternedString(path)]
	return exists
}

// Count returns the number of registered font files.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.files)
}

// familyName derives a display family name from the file name: the base name
// without extension, with separators normalized to spaces.
func familyName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return base
}
