package depcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/fonts"
	"go.trai.ch/carve/internal/adapters/fs"
	"go.trai.ch/carve/internal/adapters/logger"
	"go.trai.ch/carve/internal/adapters/parser"
	"go.trai.ch/carve/internal/core/ports"
	"go.trai.ch/carve/internal/engine/modcache"
)

// NodeID is the unique identifier for the dependency cache manager node.
const NodeID graft.ID = "engine.depcache"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.StatCacheNodeID,
			modcache.NodeID,
			fonts.NodeID,
			parser.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Manager, error) {
			resolver, err := graft.Dep[ports.PathResolver](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ModuleCache](ctx)
			if err != nil {
				return nil, err
			}
			stat, err := graft.Dep[ports.StatCache](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.FontRegistry](ctx)
			if err != nil {
				return nil, err
			}
			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(resolver, cache, stat, reg, p, log), nil
		},
	})
}
