package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carve/internal/core/ports"
)

// NodeID is the unique identifier for the parser node.
const NodeID graft.ID = "adapter.parser"

func init() {
	graft.Register(graft.Node[ports.Parser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Parser, error) {
			return NewParser(), nil
		},
	})
}
