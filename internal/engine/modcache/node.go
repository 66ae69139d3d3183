package modcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/fs"
	"go.trai.ch/carve/internal/adapters/logger"
	"go.trai.ch/carve/internal/adapters/parser"
	"go.trai.ch/carve/internal/core/ports"
)

// NodeID is the unique identifier for the module cache node.
const NodeID graft.ID = "engine.modcache"

func init() {
	graft.Register(graft.Node[ports.ModuleCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{parser.NodeID, fs.StatCacheNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ModuleCache, error) {
			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}
			stat, err := graft.Dep[ports.StatCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(p, stat, log), nil
		},
	})
}
