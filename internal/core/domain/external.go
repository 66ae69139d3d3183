// Package domain contains the core domain models for the carve module system.
package domain

import (
	"path/filepath"
	"strings"
)

// ExternalKind discriminates the two kinds of external references a source
// file can declare.
type ExternalKind uint8

const (
	// KindUse references a separately compiled library module.
	KindUse ExternalKind = iota
	// KindInclude references a file whose content becomes part of the
	// including file's own parse.
	KindInclude
)

// String returns the keyword form of the kind as written in source.
func (k ExternalKind) String() string {
	switch k {
	case KindUse:
		return "use"
	case KindInclude:
		return "include"
	default:
		return "unknown"
	}
}

// ExternalRef is a single external reference declaration.
//
// Path is the reference exactly as written in the source file and never
// mutates. When a reference is located on disk, the full path is recorded
// separately; for use references the registry key is additionally promoted
// (see FileModule.PromoteKey).
type ExternalRef struct {
	Kind ExternalKind
	Path string

	resolved string
}

// SetResolved records the full path the reference was located at.
func (r *ExternalRef) SetResolved(path string) {
	r.resolved = path
}

// Resolved returns the located full path, or the as-written path if the
// reference has not been resolved yet.
func (r *ExternalRef) Resolved() string {
	if r.resolved != "" {
		return r.resolved
	}
	return r.Path
}

// IsFontPath reports whether the reference names a font file rather than a
// library module. Font files are handed to the font registry and never enter
// the module cache. The match is case-insensitive.
func IsFontPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".otf", ".ttf":
		return true
	default:
		return false
	}
}
