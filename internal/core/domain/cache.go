package domain

import (
	"slices"
	"time"
)

// BuildCache is the persisted snapshot of the previous build of one output folder.
type BuildCache struct {
	ToolchainVersion string                      `json:"toolchainVersion,omitempty"`
	Project          *ProjectConfig              `json:"project,omitempty"`
	Sources          map[string]SourceUnitRecord `json:"sources"`
}

// SourceUnitRecord is the cached state of one source unit.
type SourceUnitRecord struct {
	// RelativePath is the unit's key, relative to the project root with forward slashes.
	RelativePath string `json:"-"`
	// LastModified is the source timestamp at the last compilation or discovery.
	LastModified time.Time `json:"lastModified"`
	// Dependencies are the project units this unit references, sorted and unique.
	Dependencies []InternedString `json:"dependencies"`
	// Issues are the diagnostics from the most recent compilation of this unit.
	Issues []Issue `json:"issues"`
}

// NewBuildCache returns an empty cache, as used on a first build.
func NewBuildCache() *BuildCache {
	return &BuildCache{Sources: make(map[string]SourceUnitRecord)}
}

// NewSourceUnitRecord builds a record, normalizing its dependency set.
func NewSourceUnitRecord(path string, modified time.Time, deps []string, issues []Issue) SourceUnitRecord {
	sorted := slices.Clone(deps)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	interned := make([]InternedString, 0, len(sorted))
	for _, dep := range sorted {
		interned = append(interned, NewInternedString(dep))
	}
	if issues == nil {
		issues = []Issue{}
	}

	return SourceUnitRecord{
		RelativePath: path,
		LastModified: modified.UTC(),
		Dependencies: interned,
		Issues:       issues,
	}
}

// DependsOn reports whether the record references the given unit.
func (r SourceUnitRecord) DependsOn(path string) bool {
	target := NewInternedString(path)
	return slices.Contains(r.Dependencies, target)
}

// Record returns the record for path.
func (c *BuildCache) Record(path string) (SourceUnitRecord, bool) {
	rec, ok := c.Sources[path]
	return rec, ok
}

// Put stores or replaces a record.
func (c *BuildCache) Put(rec SourceUnitRecord) {
	if c.Sources == nil {
		c.Sources = make(map[string]SourceUnitRecord)
	}
	c.Sources[rec.RelativePath] = rec
}

// Paths returns the cached unit paths in sorted order.
func (c *BuildCache) Paths() []string {
	paths := make([]string, 0, len(c.Sources))
	for path := range c.Sources {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Issues returns every cached issue, grouped by unit in path order.
func (c *BuildCache) Issues() []Issue {
	var issues []Issue
	for _, path := range c.Paths() {
		issues = append(issues, c.Sources[path].Issues...)
	}
	return issues
}
