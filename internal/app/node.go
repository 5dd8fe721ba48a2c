package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casebuild/internal/adapters/caseconfig" //nolint:depguard // Wired in app layer
	"go.trai.ch/casebuild/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/casebuild/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/casebuild/internal/adapters/teststatus" //nolint:depguard // Wired in app layer
	"go.trai.ch/casebuild/internal/core/ports"
	"go.trai.ch/casebuild/internal/engine/builder"
	"go.trai.ch/casebuild/internal/engine/cleaner"
	"go.trai.ch/casebuild/internal/engine/testdriver"
)

const (
	// OrchestratorNodeID is the unique identifier for the orchestrator Graft node.
	OrchestratorNodeID graft.ID = "app.orchestrator"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything main needs after wiring.
type Components struct {
	Orchestrator *Orchestrator
	Logger       ports.Logger
	Telemetry    ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        OrchestratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			caseconfig.NodeID,
			teststatus.NodeID,
			cleaner.NodeID,
			builder.NodeID,
			testdriver.NodeID,
			logger.NodeID,
		},
		Run: runOrchestratorNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			OrchestratorNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runOrchestratorNode(ctx context.Context) (*Orchestrator, error) {
	cases, err := graft.Dep[ports.CaseStore](ctx)
	if err != nil {
		return nil, err
	}
	status, err := graft.Dep[ports.StatusStore](ctx)
	if err != nil {
		return nil, err
	}
	cln, err := graft.Dep[ports.Cleaner](ctx)
	if err != nil {
		return nil, err
	}
	bld, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := graft.Dep[ports.DriverFactory](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(cases, status, cln, bld, drivers, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	orch, err := graft.Dep[*Orchestrator](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		Orchestrator: orch,
		Logger:       log,
		Telemetry:    tel,
	}, nil
}
