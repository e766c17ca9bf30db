package domain

// BuildReport summarizes one build run for the application layer.
type BuildReport struct {
	Project          *ProjectConfig
	ToolchainVersion string
	Plan             *BuildPlan
	// Compiled is false when the compile set was empty and the compiler was not invoked.
	Compiled bool
	// Issues holds every issue in the updated cache, stale ones included.
	Issues []Issue
	// Unattributed holds diagnostics for paths outside the compile set.
	Unattributed []Issue
}

// AllIssues returns the cached issues followed by the unattributed ones.
func (r *BuildReport) AllIssues() []Issue {
	all := make([]Issue, 0, len(r.Issues)+len(r.Unattributed))
	all = append(all, r.Issues...)
	return append(all, r.Unattributed...)
}
