package domain

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// FileModule represents one parsed source file: its own scope plus the
// ordered list of external references it declares.
//
// The external registry has two views. Externals preserves declaration order
// and is never reordered. The resolved index maps a lookup key to a use
// reference; keys start out as the literal as-written string and are promoted
// to the full path once a search succeeds, so later dependency passes skip
// re-resolution. Promotion changes the key only, never the reference itself.
type FileModule struct {
	basePath    string
	displayName string

	externals []*ExternalRef

	resolvedKeys  []string
	resolvedIndex map[string]*ExternalRef

	scope []Statement

	handlingDependencies bool
}

// NewFileModule creates an empty FileModule. basePath is the directory used
// as the resolution root for the file's own references; displayName is the
// name used in diagnostics.
func NewFileModule(basePath, displayName string) *FileModule {
	return &FileModule{
		basePath:      basePath,
		displayName:   displayName,
		resolvedIndex: make(map[string]*ExternalRef),
	}
}

// BasePath returns the directory references are resolved against.
func (m *FileModule) BasePath() string {
	return m.basePath
}

// DisplayName returns the diagnostic name of the file.
func (m *FileModule) DisplayName() string {
	return m.displayName
}

// AddUse appends a use declaration exactly as parsed. No validation happens
// at this stage.
func (m *FileModule) AddUse(path string) {
	m.externals = append(m.externals, &ExternalRef{Kind: KindUse, Path: path})
}

// AddInclude appends an include declaration exactly as parsed.
func (m *FileModule) AddInclude(path string) {
	m.externals = append(m.externals, &ExternalRef{Kind: KindInclude, Path: path})
}

// Externals returns the external references in declaration order.
func (m *FileModule) Externals() []*ExternalRef {
	return m.externals
}

// UseModules returns the use references in declaration order.
func (m *FileModule) UseModules() []*ExternalRef {
	var uses []*ExternalRef
	for _, ref := range m.externals {
		if ref.Kind == KindUse {
			uses = append(uses, ref)
		}
	}
	return uses
}

// IndexUse inserts a use reference into the resolved index under the given
// key. Inserting an existing key is a no-op, which keeps repeated resolution
// passes idempotent.
func (m *FileModule) IndexUse(key string, ref *ExternalRef) {
	if _, exists := m.resolvedIndex[key]; exists {
		return
	}
	m.resolvedIndex[key] = ref
	m.resolvedKeys = append(m.resolvedKeys, key)
}

// ResolvedRefs iterates the resolved index in insertion order, which keeps
// diagnostics deterministic across passes.
func (m *FileModule) ResolvedRefs() iter.Seq2[string, *ExternalRef] {
	return func(yield func(string, *ExternalRef) bool) {
		for _, key := range m.resolvedKeys {
			if !yield(key, m.resolvedIndex[key]) {
				return
			}
		}
	}
}

// ResolvedKeys returns a snapshot of the current index keys in insertion
// order.
func (m *FileModule) ResolvedKeys() []string {
	keys := make([]string, len(m.resolvedKeys))
	copy(keys, m.resolvedKeys)
	return keys
}

// PromoteKey replaces a relative lookup key with its located full path. The
// reference keeps its position in the index; only the key changes. Promoting
// an unknown key is a no-op.
func (m *FileModule) PromoteKey(oldKey, newKey string) {
	ref, exists := m.resolvedIndex[oldKey]
	if !exists || oldKey == newKey {
		return
	}
	delete(m.resolvedIndex, oldKey)
	m.resolvedIndex[newKey] = ref
	for i, key := range m.resolvedKeys {
		if key == oldKey {
			m.resolvedKeys[i] = newKey
			break
		}
	}
}

// BeginDependencyPass acquires the per-file reentrancy guard. It returns
// ok=false when a pass for this file is already in progress, in which case
// the caller must treat the invocation as a no-op. The returned release
// function must be called on every exit path.
func (m *FileModule) BeginDependencyPass() (release func(), ok bool) {
	if m.handlingDependencies {
		return nil, false
	}
	m.handlingDependencies = true
	return func() { m.handlingDependencies = false }, true
}

// Scope accessors.

// AddStatement appends a statement to the file's own scope.
func (m *FileModule) AddStatement(st Statement) {
	m.scope = append(m.scope, st)
}

// Scope returns the file's own statements in declaration order.
func (m *FileModule) Scope() []Statement {
	return m.scope
}

// WriteTo dumps the module in source-like form: externals first, then the
// file's own scope. It implements io.WriterTo for the render --dump-ast path.
func (m *FileModule) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, ref := range m.externals {
		fmt.Fprintf(&sb, "%s <%s>\n", ref.Kind, ref.Path)
	}
	for _, st := range m.scope {
		switch st.Kind {
		case StmtAssign:
			fmt.Fprintf(&sb, "%s = %s;\n", st.Name, st.Value)
		case StmtCall:
			fmt.Fprintf(&sb, "%s(%s);\n", st.Name, strings.Join(st.Args, ", "))
		}
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
