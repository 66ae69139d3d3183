package depcache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/carve/internal/adapters/fs"
	"go.trai.ch/carve/internal/adapters/parser"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports/mocks"
	"go.trai.ch/carve/internal/engine/depcache"
	"go.trai.ch/carve/internal/engine/modcache"
)

// harness wires a Manager against real filesystem collaborators. The logger
// and font registry are mocks so tests can pin down exactly what gets
// reported; Debug and Error are always allowed.
type harness struct {
	manager *depcache.Manager
	stat    *fs.StatCache
	cache   *modcache.Cache
	logger  *mocks.MockLogger
	fonts   *mocks.MockFontRegistry
}

func newHarness(t *testing.T, searchPaths []string) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	fontReg := mocks.NewMockFontRegistry(ctrl)

	p := parser.NewParser()
	stat := fs.NewStatCache()
	cache := modcache.NewCache(p, stat, log)
	resolver := fs.NewResolver(searchPaths)

	return &harness{
		manager: depcache.NewManager(resolver, cache, stat, fontReg, p, log),
		stat:    stat,
		cache:   cache,
		logger:  log,
		fonts:   fontReg,
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// parse runs the real parser and the one-time external split, the way a
// freshly loaded top-level file goes through the system.
func (h *harness) parse(t *testing.T, dir, source string) *domain.FileModule {
	t.Helper()
	fm, err := parser.NewParser().Parse([]byte(source), dir, "a.carve")
	require.NoError(t, err)
	h.manager.ResolveExternals(fm)
	return fm
}

func TestResolveExternals_ClassifiesReferences(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "common.carve"), "size = 1;\n")
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "include <common.carve>\nuse <lib/b.carve>\n")

	// The use reference is indexed under its as-written key even though the
	// file does not exist yet.
	assert.Equal(t, []string{"lib/b.carve"}, fm.ResolvedKeys())

	// The include reference was located next to the owning file.
	include := fm.Externals()[0]
	assert.Equal(t, filepath.Join(dir, "common.carve"), include.Resolved())
}

func TestResolveExternals_Idempotent(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "use <lib/b.carve>\n")
	h.manager.ResolveExternals(fm)
	h.manager.ResolveExternals(fm)

	assert.Equal(t, []string{"lib/b.carve"}, fm.ResolvedKeys())
}

func TestResolveExternals_FontBypass(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, nil)
	h.fonts.EXPECT().RegisterFontFile("fonts/Foo.TTF").Times(1)

	fm := h.parse(t, dir, "use <fonts/Foo.TTF>\nuse <lib/b.carve>\n")

	// The font never enters the resolved index, so dependency passes skip it.
	assert.Equal(t, []string{"lib/b.carve"}, fm.ResolvedKeys())
	assert.Zero(t, h.manager.IncludesChanged(fm))
}

func TestResolveExternals_MissingIncludeDoesNotBlockUses(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, nil)
	h.logger.EXPECT().Warn(gomock.Any()).Times(1)

	fm := h.parse(t, dir, "include <nope.carve>\nuse <lib/b.carve>\n")

	assert.Equal(t, []string{"lib/b.carve"}, fm.ResolvedKeys())
}

func TestHandleDependencies_PromotesRelativeKeys(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib", "b.carve")
	write(t, libPath, "size = 10;\n")
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "use <lib/b.carve>\ncube(size);\n")

	latest := h.manager.HandleDependencies(fm)
	assert.Positive(t, latest)

	// The index key is now the full path; the declaration stays as written.
	assert.Equal(t, []string{libPath}, fm.ResolvedKeys())
	assert.Equal(t, "lib/b.carve", fm.Externals()[0].Path)

	module, _ := h.cache.Lookup(libPath)
	require.NotNil(t, module)

	// A second pass finds everything settled and reports the same time.
	h.stat.Flush()
	assert.Equal(t, latest, h.manager.HandleDependencies(fm))
}

func TestHandleDependencies_RetriesWhenLibraryAppears(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "use <late.carve>\n")

	// No warning at any point: the library is absent, then appears as part
	// of an ordinary reload.
	latest := h.manager.HandleDependencies(fm)
	assert.Zero(t, latest)
	assert.Equal(t, []string{"late.carve"}, fm.ResolvedKeys())

	write(t, filepath.Join(dir, "late.carve"), "size = 10;\n")
	h.stat.Flush()

	latest = h.manager.HandleDependencies(fm)
	assert.Positive(t, latest)
	assert.Equal(t, []string{filepath.Join(dir, "late.carve")}, fm.ResolvedKeys())

	module, _ := h.cache.Lookup(filepath.Join(dir, "late.carve"))
	assert.NotNil(t, module)
}

func TestHandleDependencies_BrokenLibraryWarnsOnce(t *testing.T) {
	dir := t.TempDir()
	brokenPath := filepath.Join(dir, "broken.carve")
	write(t, brokenPath, "not a statement\n")
	h := newHarness(t, nil)
	h.logger.EXPECT().Warn(gomock.Any()).Times(1)

	fm := domain.NewFileModule(dir, "a.carve")
	fm.AddUse(brokenPath)
	h.manager.ResolveExternals(fm)

	// The key is already absolute and nothing is cached yet, so the failed
	// compile is reported. The failure entry then suppresses the repeat.
	h.manager.HandleDependencies(fm)

	h.stat.Flush()
	h.manager.HandleDependencies(fm)
}

func TestHandleDependencies_BrokenRelativeLibraryStaysQuiet(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "broken.carve"), "not a statement\n")
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "use <broken.carve>\n")

	// The key was relative when the pass started, so even though the
	// compile fails the pass treats it as a fresh appearance, not a break.
	h.manager.HandleDependencies(fm)
}

func TestHandleDependencies_KeepsOldModuleAcrossBreakage(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "b.carve")
	write(t, libPath, "size = 10;\n")
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(libPath, past, past))
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "use <b.carve>\n")
	h.manager.HandleDependencies(fm)

	good, goodGen := h.cache.Lookup(libPath)
	require.NotNil(t, good)

	write(t, libPath, "broken\n")
	h.stat.Flush()
	h.manager.HandleDependencies(fm)

	kept, keptGen := h.cache.Lookup(libPath)
	assert.Same(t, good, kept)
	assert.Equal(t, goodGen, keptGen)
}

func TestHandleDependencies_ReentrantInvocationIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	resolver := mocks.NewMockPathResolver(ctrl)
	cache := mocks.NewMockModuleCache(ctrl)
	stat := mocks.NewMockStatCache(ctrl)
	fontReg := mocks.NewMockFontRegistry(ctrl)

	m := depcache.NewManager(resolver, cache, stat, fontReg, parser.NewParser(), log)

	fm := domain.NewFileModule("/proj", "a.carve")
	fm.AddUse("/proj/b.carve")
	fm.IndexUse("/proj/b.carve", fm.Externals()[0])

	cache.EXPECT().IsCached("/proj/b.carve").Return(true)
	cache.EXPECT().Lookup("/proj/b.carve").Return(nil, uint64(0))
	cache.EXPECT().Evaluate("/proj/b.carve").DoAndReturn(func(string) (*domain.FileModule, uint64, int64) {
		// A recompile cascading back into the same file must be a no-op.
		assert.Zero(t, m.HandleDependencies(fm))
		return nil, 0, int64(42)
	})

	assert.Equal(t, int64(42), m.HandleDependencies(fm))
}

func TestIncludesChanged_ReportsLatest(t *testing.T) {
	dir := t.TempDir()
	older := filepath.Join(dir, "older.carve")
	newer := filepath.Join(dir, "newer.carve")
	write(t, older, "a = 1;\n")
	write(t, newer, "b = 2;\n")

	t1 := time.Now().Add(-2 * time.Hour)
	t2 := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, t1, t1))
	require.NoError(t, os.Chtimes(newer, t2, t2))

	h := newHarness(t, nil)
	fm := h.parse(t, dir, "include <older.carve>\ninclude <newer.carve>\n")

	assert.Equal(t, t2.UnixNano(), h.manager.IncludesChanged(fm))
}

func TestIncludesChanged_NoIncludes(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "b.carve"), "a = 1;\n")
	h := newHarness(t, nil)

	fm := h.parse(t, dir, "use <b.carve>\n")

	assert.Zero(t, h.manager.IncludesChanged(fm))
}

func TestIncludesChanged_MissingIncludeContributesNothing(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.carve")
	write(t, present, "a = 1;\n")
	h := newHarness(t, nil)
	h.logger.EXPECT().Warn(gomock.Any()).Times(1)

	fm := h.parse(t, dir, "include <present.carve>\ninclude <gone.carve>\n")

	mtime, ok := h.stat.ModTime(present)
	require.True(t, ok)
	assert.Equal(t, mtime, h.manager.IncludesChanged(fm))
}

func TestHandleDependencies_SearchPathFallback(t *testing.T) {
	dir := t.TempDir()
	lib := t.TempDir()
	libPath := filepath.Join(lib, "shapes.carve")
	write(t, libPath, "size = 10;\n")
	h := newHarness(t, []string{lib})

	fm := h.parse(t, dir, "use <shapes.carve>\n")

	latest := h.manager.HandleDependencies(fm)
	assert.Positive(t, latest)
	assert.Equal(t, []string{libPath}, fm.ResolvedKeys())
}
