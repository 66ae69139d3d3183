// Package app implements the application layer for carve.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/carve/internal/adapters/watcher"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/carve/internal/engine/depcache"
	"go.trai.ch/carve/internal/engine/eval"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// debounceWindow coalesces editor write bursts into one reload.
const debounceWindow = 200 * time.Millisecond

// App represents the main application logic.
type App struct {
	parser    ports.Parser
	manager   *depcache.Manager
	evaluator *eval.Evaluator
	stat      ports.StatCache
	watcher   ports.Watcher
	logger    ports.Logger

	out io.Writer
}

// New creates a new App instance.
func New(
	parser ports.Parser,
	manager *depcache.Manager,
	evaluator *eval.Evaluator,
	stat ports.StatCache,
	w ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		parser:    parser,
		manager:   manager,
		evaluator: evaluator,
		stat:      stat,
		watcher:   w,
		logger:    logger,
		out:       os.Stdout,
	}
}

// SetOutput redirects the rendered tree output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	DumpAST bool
}

// Render compiles the given file, resolves and recompiles its dependencies
// and prints the instantiated node tree.
func (a *App) Render(_ context.Context, path string, opts RenderOptions) error {
	a.stat.Flush()

	fm, _, err := a.load(path)
	if err != nil {
		return err
	}

	depsMtime := a.manager.HandleDependencies(fm)
	includesMtime := a.manager.IncludesChanged(fm)
	a.logger.Debug(fmt.Sprintf("dependency mtime %d, include mtime %d", depsMtime, includesMtime))

	if opts.DumpAST {
		if _, err := fm.WriteTo(a.out); err != nil {
			return zerr.Wrap(err, "failed to write AST dump")
		}
	}

	root := a.evaluator.Instantiate(eval.NewContext(), fm)
	root.Dump(a.out)

	return nil
}

// Watch renders the given file and re-renders it whenever the file itself, a
// used library or an included file changes on disk.
func (a *App) Watch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve input path"), "path", path)
	}

	a.stat.Flush()
	fm, rootMtime, err := a.load(abs)
	if err != nil {
		// A broken file at startup is not fatal in watch mode; the next
		// write may fix it.
		a.logger.Error(err)
	}

	var lastDeps, lastIncludes int64
	if fm != nil {
		lastDeps = a.manager.HandleDependencies(fm)
		lastIncludes = a.manager.IncludesChanged(fm)
		root := a.evaluator.Instantiate(eval.NewContext(), fm)
		root.Dump(a.out)
	}

	trigger := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(debounceWindow, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	if err := a.watcher.Start(ctx, filepath.Dir(abs)); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			deb.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
				fm, rootMtime, lastDeps, lastIncludes = a.reload(abs, fm, rootMtime, lastDeps, lastIncludes)
			}
		}
	})

	return g.Wait()
}

// reload runs one auto-reload pass: re-parse the root file if it changed,
// re-run the dependency pass, and re-instantiate when anything advanced.
func (a *App) reload(abs string, fm *domain.FileModule, rootMtime, lastDeps, lastIncludes int64) (*domain.FileModule, int64, int64, int64) {
	a.stat.Flush()

	reparsed := false
	if mtime, ok := a.stat.ModTime(abs); ok && (fm == nil || mtime > rootMtime) {
		newFM, newMtime, err := a.load(abs)
		if err != nil {
			// Keep previewing the previous parse until the file is fixed.
			a.logger.Error(err)
		} else {
			fm, rootMtime = newFM, newMtime
			reparsed = true
		}
	}

	if fm == nil {
		return fm, rootMtime, lastDeps, lastIncludes
	}

	depsMtime := a.manager.HandleDependencies(fm)
	includesMtime := a.manager.IncludesChanged(fm)

	if reparsed || depsMtime > lastDeps || includesMtime > lastIncludes {
		a.logger.Info(fmt.Sprintf("reloading %s", fm.DisplayName()))
		root := a.evaluator.Instantiate(eval.NewContext(), fm)
		root.Dump(a.out)
	}

	if depsMtime > lastDeps {
		lastDeps = depsMtime
	}
	if includesMtime > lastIncludes {
		lastIncludes = includesMtime
	}
	return fm, rootMtime, lastDeps, lastIncludes
}

// load reads and parses the file at path and resolves its externals.
// It returns the parsed module and the file's modification time.
func (a *App) load(path string) (*domain.FileModule, int64, error) {
	//nolint:gosec // Path is the user-supplied input file
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "failed to read input file"), "path", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "failed to resolve input path"), "path", path)
	}

	fm, err := a.parser.Parse(source, filepath.Dir(abs), path)
	if err != nil {
		return nil, 0, err
	}

	a.manager.ResolveExternals(fm)

	mtime, _ := a.stat.ModTime(abs)
	return fm, mtime, nil
}
