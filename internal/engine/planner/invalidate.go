package planner

import (
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Planner turns a scan of the source folders into a build plan.
type Planner struct {
	verifier ports.Verifier
}

// New creates a Planner checking compiled output with verifier.
func New(verifier ports.Verifier) *Planner {
	return &Planner{verifier: verifier}
}

// Options carries the global inputs of one planning pass.
type Options struct {
	// Project is the current configuration, compared against the cached snapshot.
	Project *domain.ProjectConfig
	// OutputDir is the absolute output folder.
	OutputDir string
	// Force schedules every discovered unit.
	Force bool
}

// Plan detects changes and widens the compile set to every affected unit.
func (p *Planner) Plan(files []domain.SourceFile, cache *domain.BuildCache, opts Options) (*domain.BuildPlan, error) {
	plan := Detect(files, cache)

	if opts.Force || opts.Project.RequiresFullRebuild(cache.Project) {
		plan.FullRebuild = true
		return plan, nil
	}

	if err := p.Invalidate(plan, cache, opts.OutputDir); err != nil {
		return nil, err
	}
	return plan, nil
}

// Invalidate fills the dependent and missing-output groups of plan.
//
// Units that transitively reference a modified or deleted unit are scheduled, as
// are unchanged units whose compiled artifact is gone. Each unit lands in the first
// group that claims it.
func (p *Planner) Invalidate(plan *domain.BuildPlan, cache *domain.BuildCache, outputDir string) error {
	graph := domain.NewUnitGraph(cache)

	onDisk := plan.FilesByPath()
	gone := func(path string) bool {
		_, ok := onDisk[path]
		return !ok
	}

	scheduled := make(map[string]struct{})
	for _, path := range plan.New {
		scheduled[path] = struct{}{}
	}
	for _, path := range plan.Modified {
		scheduled[path] = struct{}{}
	}

	collect := func(seeds []string) []string {
		var found []string
		for path := range graph.Walk(seeds, gone) {
			if _, ok := scheduled[path]; ok {
				continue
			}
			scheduled[path] = struct{}{}
			found = append(found, path)
		}
		return found
	}

	plan.DependentsOfChanged = collect(plan.Modified)
	plan.DependentsOfDeleted = collect(plan.Deleted)

	for _, path := range plan.Unchanged {
		if _, ok := scheduled[path]; ok {
			continue
		}
		file := onDisk[path]
		present, err := p.verifier.VerifyOutputs(outputDir, []string{file.CompiledOutput()})
		if err != nil {
			return err
		}
		if !present {
			scheduled[path] = struct{}{}
			plan.MissingCompiledOutput = append(plan.MissingCompiledOutput, path)
		}
	}

	return nil
}
