package caseconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casebuild/internal/adapters/logger"
	"go.trai.ch/casebuild/internal/core/ports"
)

// NodeID is the unique identifier for the case store Graft node.
const NodeID graft.ID = "adapter.case_store"

func init() {
	graft.Register(graft.Node[ports.CaseStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CaseStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
