// Package planner decides which source units a build must compile.
package planner

import (
	"slices"

	"go.trai.ch/kiln/internal/core/domain"
)

// Detect classifies the discovered units against the cached records in one pass.
// A unit without a record is new, a unit whose timestamp is strictly after the
// recorded one is modified, anything else is unchanged. Records with no unit on
// disk are deleted.
func Detect(files []domain.SourceFile, cache *domain.BuildCache) *domain.BuildPlan {
	plan := &domain.BuildPlan{Discovered: files}
	onDisk := make(map[string]struct{}, len(files))

	for _, file := range files {
		onDisk[file.RelativePath] = struct{}{}

		rec, ok := cache.Record(file.RelativePath)
		switch {
		case !ok:
			plan.New = append(plan.New, file.RelativePath)
		case file.ModTime.After(rec.LastModified):
			plan.Modified = append(plan.Modified, file.RelativePath)
		default:
			plan.Unchanged = append(plan.Unchanged, file.RelativePath)
		}
	}

	for path := range cache.Sources {
		if _, ok := onDisk[path]; !ok {
			plan.Deleted = append(plan.Deleted, path)
		}
	}
	slices.Sort(plan.Deleted)

	return plan
}
