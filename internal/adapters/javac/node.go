package javac

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// ToolchainNodeID is the unique identifier for the javac toolchain Graft node.
	ToolchainNodeID graft.ID = "adapter.javac.toolchain"
	// RuntimeNodeID is the unique identifier for the runtime locator Graft node.
	RuntimeNodeID graft.ID = "adapter.javac.runtime"
	// ScannerNodeID is the unique identifier for the class-file dependency scanner Graft node.
	ScannerNodeID graft.ID = "adapter.javac.class_scanner"
)

func init() {
	graft.Register(graft.Node[ports.Toolchain]{
		ID:        ToolchainNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Toolchain, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewToolchain(runner), nil
		},
	})

	graft.Register(graft.Node[ports.RuntimeLocator]{
		ID:        RuntimeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuntimeLocator, error) {
			return NewRuntimeLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.DependencyScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyScanner, error) {
			return NewClassScanner(), nil
		},
	})
}
