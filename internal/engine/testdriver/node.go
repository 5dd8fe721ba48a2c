package testdriver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/adapters/teststatus"
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/casebuild/internal/engine/builder"
)

// NodeID is the unique identifier for the driver factory Graft node.
const NodeID graft.ID = "engine.driver_factory"

func init() {
	graft.Register(graft.Node[ports.DriverFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, builder.NodeID, teststatus.NodeID},
		Run: func(ctx context.Context) (ports.DriverFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			bld, err := graft.Dep[ports.Builder](ctx)
			if err != nil {
				return nil, err
			}
			status, err := graft.Dep[ports.StatusStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, bld, status), nil
		},
	})
}
