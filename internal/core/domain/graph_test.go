package domain_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func cacheWithEdges(edges map[string][]string) *domain.BuildCache {
	cache := domain.NewBuildCache()
	for path, deps := range edges {
		cache.Put(domain.NewSourceUnitRecord(path, time.Unix(0, 0), deps, nil))
	}
	return cache
}

func TestUnitGraph_Dependents(t *testing.T) {
	g := domain.NewUnitGraph(cacheWithEdges(map[string][]string{
		"src/A.java": {"src/C.java"},
		"src/B.java": {"src/C.java"},
		"src/C.java": nil,
	}))

	assert.Equal(t, []string{"src/A.java", "src/B.java"}, g.Dependents("src/C.java"))
	assert.Empty(t, g.Dependents("src/A.java"))
	assert.Equal(t, []string{"src/C.java"}, g.References("src/A.java"))
}

func TestUnitGraph_Walk_Transitive(t *testing.T) {
	// A -> B -> C
	g := domain.NewUnitGraph(cacheWithEdges(map[string][]string{
		"src/A.java": {"src/B.java"},
		"src/B.java": {"src/C.java"},
		"src/C.java": nil,
	}))

	got := slices.Collect(g.Walk([]string{"src/C.java"}, nil))

	assert.Equal(t, []string{"src/B.java", "src/A.java"}, got)
}

func TestUnitGraph_Walk_Cycle(t *testing.T) {
	g := domain.NewUnitGraph(cacheWithEdges(map[string][]string{
		"src/A.java": {"src/B.java"},
		"src/B.java": {"src/A.java"},
		"src/C.java": {"src/A.java"},
	}))

	got := slices.Collect(g.Walk([]string{"src/A.java"}, nil))

	assert.ElementsMatch(t, []string{"src/B.java", "src/C.java"}, got)
}

func TestUnitGraph_Walk_Skip(t *testing.T) {
	g := domain.NewUnitGraph(cacheWithEdges(map[string][]string{
		"src/A.java": {"src/B.java"},
		"src/B.java": {"src/C.java"},
		"src/C.java": nil,
	}))

	got := slices.Collect(g.Walk([]string{"src/C.java"}, func(path string) bool {
		return path == "src/B.java"
	}))

	assert.Empty(t, got)
}

func TestUnitGraph_Walk_StopsEarly(t *testing.T) {
	g := domain.NewUnitGraph(cacheWithEdges(map[string][]string{
		"src/A.java": {"src/C.java"},
		"src/B.java": {"src/C.java"},
	}))

	var got []string
	for path := range g.Walk([]string{"src/C.java"}, nil) {
		got = append(got, path)
		break
	}

	assert.Equal(t, []string{"src/A.java"}, got)
}
