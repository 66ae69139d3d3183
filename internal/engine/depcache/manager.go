// Package depcache implements dependency resolution and recompilation
// tracking for a file module's external references.
package depcache

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
)

// Manager walks a file module's external-reference registry, resolves
// unresolved keys, drives the module cache for use references and tracks
// include freshness.
type Manager struct {
	resolver ports.PathResolver
	cache    ports.ModuleCache
	stat     ports.StatCache
	fonts    ports.FontRegistry
	parser   ports.Parser
	logger   ports.Logger
}

// NewManager creates a Manager from its collaborators.
func NewManager(
	resolver ports.PathResolver,
	cache ports.ModuleCache,
	stat ports.StatCache,
	fonts ports.FontRegistry,
	parser ports.Parser,
	logger ports.Logger,
) *Manager {
	return &Manager{
		resolver: resolver,
		cache:    cache,
		stat:     stat,
		fonts:    fonts,
		parser:   parser,
		logger:   logger,
	}
}

// ResolveExternals performs the one-time split of a freshly parsed module's
// external references: include references are located and read ahead for
// diagnostics, use references are classified and entered into the resolved
// index. The two resolutions are independent; a failure in one never blocks
// the other.
func (m *Manager) ResolveExternals(fm *domain.FileModule) {
	m.resolveIncludes(fm)
	m.resolveUses(fm)
}

// resolveIncludes locates each include reference and parses it for
// diagnostics. The parsed result is discarded: include content is tracked
// for freshness only, attachment to the including file's own tree is an
// extension point.
func (m *Manager) resolveIncludes(fm *domain.FileModule) {
	for _, ref := range fm.Externals() {
		if ref.Kind != domain.KindInclude {
			continue
		}

		fullPath, ok := m.resolver.Resolve(fm.BasePath(), ref.Path)
		if !ok {
			// A missing include is not fatal to the owning file.
			m.logger.Warn(fmt.Sprintf("can't open include file %q", ref.Path))
			continue
		}
		ref.SetResolved(fullPath)

		//nolint:gosec // Path was produced by the search-path resolver
		source, err := os.ReadFile(fullPath)
		if err != nil {
			m.logger.Warn(fmt.Sprintf("can't open include file %q", fullPath))
			return
		}
		if _, err := m.parser.Parse(source, filepath.Dir(fullPath), fullPath); err != nil {
			m.logger.Warn(fmt.Sprintf("can't parse include file %q", fullPath))
			return
		}
	}
}

// resolveUses classifies each use reference. Font files go to the font
// registry and never enter the resolved index; everything else is indexed
// under its as-written key, even when the file does not exist yet, so a
// later dependency pass can retry resolution.
func (m *Manager) resolveUses(fm *domain.FileModule) {
	for _, ref := range fm.Externals() {
		if ref.Kind != domain.KindUse {
			continue
		}

		if domain.IsFontPath(ref.Path) {
			m.fonts.RegisterFontFile(ref.Path)
			continue
		}

		fm.IndexUse(ref.Path, ref)
	}
}

// rename records a pending key promotion, applied after the pass so the
// index is never restructured mid-iteration.
type rename struct {
	oldKey string
	newKey string
}

// HandleDependencies checks every use dependency of the module, recompiling
// the stale ones, and returns the maximum modification time observed across
// them (0 if there are none). Callers compare the result against their own
// last-known value to decide whether a re-render is warranted.
//
// A re-entrant invocation for the same module, which happens when
// recompiling a dependency cascades back into an ancestor, is a no-op
// returning 0.
func (m *Manager) HandleDependencies(fm *domain.FileModule) int64 {
	release, ok := fm.BeginDependencyPass()
	if !ok {
		return 0
	}
	defer release()

	var renames []rename
	var latest int64

	// An entry that was previously missing still has a relative key; it is
	// relocated by searching the applicable paths before the cache is asked.
	for key, ref := range fm.ResolvedRefs() {
		filename := key
		wasMissing := false
		found := true

		if !filepath.IsAbs(filename) {
			wasMissing = true
			if fullPath, ok := m.resolver.Resolve(fm.BasePath(), filename); ok {
				renames = append(renames, rename{oldKey: key, newKey: fullPath})
				ref.SetResolved(fullPath)
				filename = fullPath
			} else {
				found = false
			}
		}

		if !found {
			// Key stays relative; the next pass retries.
			continue
		}

		wasCached := m.cache.IsCached(filename)
		_, oldGen := m.cache.Lookup(filename)
		newModule, newGen, mtime := m.cache.Evaluate(filename)
		if mtime > latest {
			latest = mtime
		}

		if newModule != nil && newGen != oldGen {
			m.logger.Debug(fmt.Sprintf("  %s: gen %d -> %d", filename, oldGen, newGen))
		} else {
			m.logger.Debug(fmt.Sprintf("  %s: gen %d", filename, oldGen))
		}

		// Warn only when the library broke just now. A library that was
		// already cached (even as a failure) warned before; a library that
		// was missing until this pass is part of an automatic reload and
		// stays quiet.
		if newModule == nil && !wasCached && !wasMissing {
			m.logger.Warn(fmt.Sprintf("failed to compile library %q", filename))
		}
	}

	// Relative keys that were located are republished under their full
	// path, so future passes skip re-resolution.
	for _, r := range renames {
		fm.PromoteKey(r.oldKey, r.newKey)
	}

	return latest
}

// IncludesChanged returns the maximum modification time across the module's
// include references (0 if there are none). Include freshness is independent
// of the module cache: an include's content is part of the including file's
// own parse, so it only matters for deciding whether that file itself is
// stale.
func (m *Manager) IncludesChanged(fm *domain.FileModule) int64 {
	var latest int64
	for _, ref := range fm.Externals() {
		if ref.Kind != domain.KindInclude {
			continue
		}
		if mtime := m.includeModified(ref); mtime > latest {
			latest = mtime
		}
	}
	return latest
}

// includeModified returns the modification time of an include reference, or
// 0 when the file is missing. Absence was already reported, if at all,
// during resolution.
func (m *Manager) includeModified(ref *domain.ExternalRef) int64 {
	mtime, ok := m.stat.ModTime(ref.Resolved())
	if !ok {
		return 0
	}
	return mtime
}
