package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/carve/internal/adapters/fs"
	"go.trai.ch/carve/internal/adapters/parser"
	"go.trai.ch/carve/internal/app"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports/mocks"
	"go.trai.ch/carve/internal/engine/depcache"
	"go.trai.ch/carve/internal/engine/eval"
	"go.trai.ch/carve/internal/engine/modcache"
)

// newApp wires an App against real filesystem collaborators with the given
// library search paths. Output is captured in the returned buffer.
func newApp(t *testing.T, searchPaths []string) (*app.App, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	fontReg := mocks.NewMockFontRegistry(ctrl)
	fontReg.EXPECT().RegisterFontFile(gomock.Any()).AnyTimes()

	p := parser.NewParser()
	stat := fs.NewStatCache()
	cache := modcache.NewCache(p, stat, log)
	resolver := fs.NewResolver(searchPaths)
	manager := depcache.NewManager(resolver, cache, stat, fontReg, p, log)
	evaluator := eval.NewEvaluator(domain.DefaultConfig(), log)

	a := app.New(p, manager, evaluator, stat, nil, log)
	var out bytes.Buffer
	a.SetOutput(&out)
	return a, &out
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRender_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "lib", "shapes.carve"), "side = 3;\n")
	write(t, filepath.Join(dir, "a.carve"), "use <lib/shapes.carve>\nsize = 10;\ncube(size);\nsphere(5);\n")

	a, out := newApp(t, nil)

	err := a.Render(context.Background(), filepath.Join(dir, "a.carve"), app.RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t, "root\n  cube(10)\n  sphere(5)\n", out.String())
}

func TestRender_DumpAST(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.carve"), "use <lib/shapes.carve>\ncube(1);\n")

	a, out := newApp(t, nil)

	err := a.Render(context.Background(), filepath.Join(dir, "a.carve"), app.RenderOptions{DumpAST: true})
	require.NoError(t, err)

	assert.Equal(t, "use <lib/shapes.carve>\ncube(1);\nroot\n  cube(1)\n", out.String())
}

func TestRender_MissingInput(t *testing.T) {
	a, _ := newApp(t, nil)

	err := a.Render(context.Background(), filepath.Join(t.TempDir(), "nope.carve"), app.RenderOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestRender_ParseError(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.carve"), "broken\n")

	a, out := newApp(t, nil)

	err := a.Render(context.Background(), filepath.Join(dir, "a.carve"), app.RenderOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParseFailed)
	assert.Empty(t, out.String())
}

func TestRender_RendersDespiteBrokenLibrary(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "bad.carve"), "not a statement\n")
	write(t, filepath.Join(dir, "a.carve"), "use <bad.carve>\ncube(1);\n")

	a, out := newApp(t, nil)

	// A library that fails to compile never aborts rendering the top-level
	// file.
	err := a.Render(context.Background(), filepath.Join(dir, "a.carve"), app.RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "root\n  cube(1)\n", out.String())
}

func TestRender_LibraryFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	lib := t.TempDir()
	write(t, filepath.Join(lib, "shapes.carve"), "side = 3;\n")
	write(t, filepath.Join(dir, "a.carve"), "use <shapes.carve>\ncube(1);\n")

	a, out := newApp(t, []string{lib})

	err := a.Render(context.Background(), filepath.Join(dir, "a.carve"), app.RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "root\n  cube(1)\n", out.String())
}
