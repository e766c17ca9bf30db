// Package domain contains the core domain models and business logic for incremental builds.
package domain

import (
	"iter"
	"slices"
)

// UnitGraph is the adjacency set of recorded references between source units.
// Edges point from a unit to the units it references. Cycles are allowed.
type UnitGraph struct {
	edges      map[InternedString][]InternedString
	dependents map[InternedString][]InternedString
}

// NewUnitGraph builds the graph from the records of a build cache.
func NewUnitGraph(cache *BuildCache) *UnitGraph {
	g := &UnitGraph{
		edges:      make(map[InternedString][]InternedString),
		dependents: make(map[InternedString][]InternedString),
	}
	for _, path := range cache.Paths() {
		rec := cache.Sources[path]
		from := NewInternedString(path)
		g.edges[from] = rec.Dependencies
		for _, to := range rec.Dependencies {
			g.dependents[to] = append(g.dependents[to], from)
		}
	}
	return g
}

// References returns the units path references.
func (g *UnitGraph) References(path string) []string {
	refs := g.edges[NewInternedString(path)]
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.String()
	}
	return out
}

// Dependents returns the units that reference path, in path order.
func (g *UnitGraph) Dependents(path string) []string {
	deps := g.dependents[NewInternedString(path)]
	out := make([]string, len(deps))
	for i, dep := range deps {
		out[i] = dep.String()
	}
	slices.Sort(out)
	return out
}

// Walk yields every unit that transitively references one of the seeds, breadth
// first, each at most once. Seeds themselves are not yielded. Units for which
// skip returns true are neither yielded nor traversed through.
func (g *UnitGraph) Walk(seeds []string, skip func(string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{}, len(seeds))
		queue := make([]string, 0, len(seeds))
		for _, seed := range seeds {
			visited[seed] = struct{}{}
			queue = append(queue, seed)
		}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, dep := range g.Dependents(current) {
				if _, seen := visited[dep]; seen {
					continue
				}
				visited[dep] = struct{}{}
				if skip != nil && skip(dep) {
					continue
				}
				if !yield(dep) {
					return
				}
				queue = append(queue, dep)
			}
		}
	}
}
