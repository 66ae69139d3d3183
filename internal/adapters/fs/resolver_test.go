package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/carve/internal/adapters/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("// empty\n"), 0o644))
}

func TestResolver_SameDirectoryFirst(t *testing.T) {
	base := t.TempDir()
	lib := t.TempDir()
	writeFile(t, filepath.Join(base, "b.carve"))
	writeFile(t, filepath.Join(lib, "b.carve"))

	r := fs.NewResolver([]string{lib})

	path, ok := r.Resolve(base, "b.carve")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "b.carve"), path)
}

func TestResolver_FallsBackToSearchPaths(t *testing.T) {
	base := t.TempDir()
	libA := t.TempDir()
	libB := t.TempDir()
	writeFile(t, filepath.Join(libB, "b.carve"))

	r := fs.NewResolver([]string{libA, libB})

	path, ok := r.Resolve(base, "b.carve")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(libB, "b.carve"), path)
}

func TestResolver_MissingEverywhere(t *testing.T) {
	r := fs.NewResolver([]string{t.TempDir()})

	path, ok := r.Resolve(t.TempDir(), "nope.carve")
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestResolver_AbsoluteReference(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "abs.carve")
	writeFile(t, target)

	r := fs.NewResolver(nil)

	path, ok := r.Resolve(t.TempDir(), target)
	require.True(t, ok)
	assert.Equal(t, target, path)

	_, ok = r.Resolve(dir, filepath.Join(dir, "missing.carve"))
	assert.False(t, ok)
}

func TestResolver_DirectoriesDoNotMatch(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "b.carve"), 0o755))

	r := fs.NewResolver(nil)

	_, ok := r.Resolve(base, "b.carve")
	assert.False(t, ok)
}
