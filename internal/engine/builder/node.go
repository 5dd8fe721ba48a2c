package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/adapters/shell"
	"go.trai.ch/casebuild/internal/adapters/telemetry"
	"go.trai.ch/casebuild/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, executor, tel), nil
		},
	})
}
