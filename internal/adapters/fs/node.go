package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/config"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the path resolver node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// StatCacheNodeID is the unique identifier for the stat cache node.
	StatCacheNodeID graft.ID = "adapter.fs.stat_cache"
)

func init() {
	// Resolver Node
	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PathResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg.SearchPaths), nil
		},
	})

	// StatCache Node
	graft.Register(graft.Node[ports.StatCache]{
		ID:        StatCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatCache, error) {
			return NewStatCache(), nil
		},
	})
}
