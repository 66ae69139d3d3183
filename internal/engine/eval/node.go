package eval

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/adapters/config"
	"go.trai.ch/carve/internal/adapters/logger"
	"go.trai.ch/carve/internal/core/domain"
	"go.trai.ch/carve/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator node.
const NodeID graft.ID = "engine.eval"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Evaluator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(cfg, log), nil
		},
	})
}
