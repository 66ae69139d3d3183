package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/fs"
	"go.trai.ch/carve/internal/adapters/logger"
	"go.trai.ch/carve/internal/adapters/parser"
	"go.trai.ch/carve/internal/adapters/watcher"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/carve/internal/engine/depcache"
	"go.trai.ch/carve/internal/engine/eval"
	"go.trai.ch/zerr"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			parser.NodeID,
			depcache.NodeID,
			eval.NodeID,
			fs.StatCacheNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}
			manager, err := graft.Dep[*depcache.Manager](ctx)
			if err != nil {
				return nil, err
			}
			evaluator, err := graft.Dep[*eval.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			stat, err := graft.Dep[ports.StatCache](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(p, manager, evaluator, stat, w, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			concrete, ok := log.(*logger.Logger)
			if !ok {
				return nil, zerr.New("logger node did not produce the slog adapter")
			}
			return NewComponents(application, concrete), nil
		},
	})
}
