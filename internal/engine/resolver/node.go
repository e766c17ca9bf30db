package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/registry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the package resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			reg, err := graft.Dep[ports.PackageRegistry](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg), nil
		},
	})
}
