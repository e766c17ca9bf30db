package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestNewSourceUnitRecord(t *testing.T) {
	local := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	rec := domain.NewSourceUnitRecord("src/A.java", local, []string{"src/C.java", "src/B.java", "src/C.java"}, nil)

	assert.Equal(t, "src/A.java", rec.RelativePath)
	assert.Equal(t, time.UTC, rec.LastModified.Location())
	assert.True(t, rec.LastModified.Equal(local))
	assert.Equal(t, domain.NewInternedStrings([]string{"src/B.java", "src/C.java"}), rec.Dependencies)
	assert.NotNil(t, rec.Issues)
	assert.Empty(t, rec.Issues)
	assert.True(t, rec.DependsOn("src/B.java"))
	assert.False(t, rec.DependsOn("src/D.java"))
}

func TestBuildCache_Issues(t *testing.T) {
	cache := domain.NewBuildCache()
	issueB := domain.Issue{SourcePath: "src/B.java", Line: 1, Severity: domain.SeverityWarning, Message: "b"}
	issueA := domain.Issue{SourcePath: "src/A.java", Line: 2, Severity: domain.SeverityError, Message: "a"}

	cache.Put(domain.NewSourceUnitRecord("src/B.java", time.Now(), nil, []domain.Issue{issueB}))
	cache.Put(domain.NewSourceUnitRecord("src/A.java", time.Now(), nil, []domain.Issue{issueA}))

	assert.Equal(t, []string{"src/A.java", "src/B.java"}, cache.Paths())
	assert.Equal(t, []domain.Issue{issueA, issueB}, cache.Issues())

	rec, ok := cache.Record("src/A.java")
	assert.True(t, ok)
	assert.Equal(t, "src/A.java", rec.RelativePath)

	_, ok = cache.Record("src/Missing.java")
	assert.False(t, ok)
}

func TestBuildCache_PutOnZeroValue(t *testing.T) {
	var cache domain.BuildCache
	cache.Put(domain.NewSourceUnitRecord("src/A.java", time.Now(), nil, nil))
	assert.Len(t, cache.Sources, 1)
}
