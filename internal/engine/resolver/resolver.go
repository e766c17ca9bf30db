// Package resolver turns a project's package dependencies into a compiler classpath.
package resolver

import (
	"context"
	"path/filepath"
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Resolver walks the package registry breadth first from a project's direct dependencies.
type Resolver struct {
	registry ports.PackageRegistry
}

// New creates a Resolver reading packages from registry.
func New(registry ports.PackageRegistry) *Resolver {
	return &Resolver{registry: registry}
}

// Request describes the project whose dependencies are resolved.
type Request struct {
	RegistryRoot string
	// Root is the project root; OutputFolder is relative to it.
	Root         string
	OutputFolder string
	// Label names the project at the head of provenance chains.
	Label        string
	Dependencies []domain.PackageSignature
}

type pending struct {
	sig   domain.PackageSignature
	chain []domain.PackageSignature
}

// Resolve returns the classpath: the project's output folder, then every package
// artifact in first-visited order.
//
// The first version seen for a publisher/project pair wins and only its own
// dependencies are followed. Any other version seen for the same pair is a conflict;
// all conflicts are reported together once the walk completes.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*domain.Classpath, error) {
	classpath := &domain.Classpath{}
	classpath.Add(filepath.Join(req.Root, req.OutputFolder))

	queue := make([]pending, 0, len(req.Dependencies))
	for _, sig := range req.Dependencies {
		queue = append(queue, pending{sig: sig, chain: []domain.PackageSignature{sig}})
	}

	chosen := make(map[string]pending)
	conflicts := make(map[string]*domain.VersionConflict)
	var conflictOrder []string

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := queue[0]
		queue = queue[1:]
		key := item.sig.Key()

		if first, seen := chosen[key]; seen {
			if first.sig.Version == item.sig.Version {
				continue
			}
			conflict, ok := conflicts[key]
			if !ok {
				conflict = &domain.VersionConflict{
					Package: key,
					Root:    req.Label,
					Chains:  [][]domain.PackageSignature{first.chain},
				}
				conflicts[key] = conflict
				conflictOrder = append(conflictOrder, key)
			}
			if !hasVersion(conflict, item.sig.Version) {
				conflict.Chains = append(conflict.Chains, item.chain)
			}
			continue
		}
		chosen[key] = item

		artifact, err := r.registry.Locate(req.RegistryRoot, item.sig)
		if err != nil {
			return nil, err
		}
		classpath.Add(artifact)

		manifest, err := r.registry.Manifest(req.RegistryRoot, item.sig)
		if err != nil {
			return nil, err
		}
		if manifest == nil {
			continue
		}
		for _, dep := range manifest.Dependencies {
			chain := append(slices.Clone(item.chain), dep)
			queue = append(queue, pending{sig: dep, chain: chain})
		}
	}

	if len(conflictOrder) > 0 {
		out := &domain.VersionConflictError{}
		for _, key := range conflictOrder {
			out.Conflicts = append(out.Conflicts, *conflicts[key])
		}
		return nil, out
	}

	return classpath, nil
}

func hasVersion(conflict *domain.VersionConflict, version string) bool {
	for _, chain := range conflict.Chains {
		if chain[len(chain)-1].Version == version {
			return true
		}
	}
	return false
}
