package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/carve/internal/adapters/fs"
)

func TestStatCache_MemoizesWithinPass(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b.carve")
	writeFile(t, path)

	c := fs.NewStatCache()

	first, ok := c.ModTime(path)
	require.True(t, ok)

	// Until the cache is flushed, the file's recorded mtime must not move
	// even if the file changes underneath.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	second, ok := c.ModTime(path)
	require.True(t, ok)
	assert.Equal(t, first, second)

	c.Flush()

	third, ok := c.ModTime(path)
	require.True(t, ok)
	assert.Greater(t, third, first)
}

func TestStatCache_MemoizesMisses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.carve")

	c := fs.NewStatCache()

	_, ok := c.ModTime(path)
	require.False(t, ok)

	// The miss is memoized; the file appearing mid-pass stays invisible.
	writeFile(t, path)
	_, ok = c.ModTime(path)
	assert.False(t, ok)

	c.Flush()

	mtime, ok := c.ModTime(path)
	require.True(t, ok)
	assert.Positive(t, mtime)
}
