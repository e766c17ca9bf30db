package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/javac"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/store"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/planner"
	"go.trai.ch/kiln/internal/engine/resolver"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			javac.ToolchainNodeID,
			javac.RuntimeNodeID,
			javac.ScannerNodeID,
			store.NodeID,
			fs.ScannerNodeID,
			fs.PrunerNodeID,
			planner.NodeID,
			resolver.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			var deps Deps
			var err error

			if deps.Loader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
				return nil, err
			}
			if deps.Toolchain, err = graft.Dep[ports.Toolchain](ctx); err != nil {
				return nil, err
			}
			if deps.Runtimes, err = graft.Dep[ports.RuntimeLocator](ctx); err != nil {
				return nil, err
			}
			if deps.Classes, err = graft.Dep[ports.DependencyScanner](ctx); err != nil {
				return nil, err
			}
			if deps.Pruner, err = graft.Dep[ports.OutputPruner](ctx); err != nil {
				return nil, err
			}
			if deps.Store, err = graft.Dep[ports.CacheStore](ctx); err != nil {
				return nil, err
			}
			if deps.Sources, err = graft.Dep[ports.SourceScanner](ctx); err != nil {
				return nil, err
			}
			if deps.Planner, err = graft.Dep[*planner.Planner](ctx); err != nil {
				return nil, err
			}
			if deps.Resolver, err = graft.Dep[*resolver.Resolver](ctx); err != nil {
				return nil, err
			}
			if deps.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
				return nil, err
			}
			if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
				return nil, err
			}

			return New(deps), nil
		},
	})
}
