package cleaner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/core/ports"
)

// NodeID is the unique identifier for the cleaner Graft node.
const NodeID graft.ID = "engine.cleaner"

func init() {
	graft.Register(graft.Node[ports.Cleaner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Cleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
