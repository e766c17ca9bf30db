package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ui/style"
)

// reporter prints build results for humans.
type reporter struct {
	w       io.Writer
	theme   *style.Theme
	project *domain.ProjectConfig
}

func newReporter(w io.Writer, project *domain.ProjectConfig) *reporter {
	if project == nil {
		project = &domain.ProjectConfig{}
	}
	return &reporter{w: w, theme: style.New(w), project: project}
}

// issues prints the visible diagnostics, honouring the project's display limits.
// Warnings promoted by the policy count against the error limit.
func (r *reporter) issues(tally domain.Tally, policy domain.WarningsPolicy) {
	var shownErrors, shownWarnings, hiddenErrors, hiddenWarnings int

	for _, issue := range tally.Visible {
		isError := issue.Severity != domain.SeverityWarning || policy == domain.WarningsError
		if isError {
			if r.project.MaxErrors > 0 && shownErrors >= r.project.MaxErrors {
				hiddenErrors++
				continue
			}
			shownErrors++
		} else {
			if r.project.MaxWarnings > 0 && shownWarnings >= r.project.MaxWarnings {
				hiddenWarnings++
				continue
			}
			shownWarnings++
		}
		r.issue(issue, isError)
	}

	if hiddenErrors > 0 {
		r.println(r.theme.Faint("... " + plural(hiddenErrors, "more error") + " not shown"))
	}
	if hiddenWarnings > 0 {
		r.println(r.theme.Faint("... " + plural(hiddenWarnings, "more warning") + " not shown"))
	}
}

func (r *reporter) issue(issue domain.Issue, isError bool) {
	location := issue.SourcePath + ":" + strconv.Itoa(issue.Line)
	if issue.Column > 0 {
		location += ":" + strconv.Itoa(issue.Column)
	}

	first, detail, _ := strings.Cut(issue.Message, "\n")
	r.println(r.theme.Faint(location+":") + " " + r.theme.Severity(string(issue.Severity), isError) + ": " + first)
	for line := range strings.SplitSeq(detail, "\n") {
		if line != "" {
			r.println("    " + line)
		}
	}
}

// summary prints the closing line of a build.
func (r *reporter) summary(report *domain.BuildReport, tally domain.Tally) {
	counts := plural(tally.Errors, "error") + ", " + plural(tally.Warnings, "warning")
	if tally.Errors > 0 {
		r.println(r.theme.Failure(counts))
		return
	}

	var done string
	if report.Compiled {
		done = "compiled " + plural(len(report.Plan.CompileSet()), "unit")
	} else {
		done = "up to date"
	}
	if tally.Warnings > 0 {
		done += ", " + plural(tally.Warnings, "warning")
	}
	r.println(r.theme.Success(r.label() + done))
}

// plan prints the categories of a build plan.
func (r *reporter) plan(plan *domain.BuildPlan) {
	if plan.FullRebuild {
		r.println(r.theme.Accent(style.Dot) + " full rebuild (" + strconv.Itoa(len(plan.Discovered)) + ")")
		r.paths(plan.CompileSet())
	} else {
		for _, group := range []struct {
			name  string
			paths []string
		}{
			{"new", plan.New},
			{"modified", plan.Modified},
			{"deleted", plan.Deleted},
			{"dependents of changed", plan.DependentsOfChanged},
			{"dependents of deleted", plan.DependentsOfDeleted},
			{"missing compiled output", plan.MissingCompiledOutput},
		} {
			if len(group.paths) == 0 {
				continue
			}
			r.println(r.theme.Accent(style.Dot) + " " + group.name + " (" + strconv.Itoa(len(group.paths)) + ")")
			r.paths(group.paths)
		}
	}

	if n := len(plan.CompileSet()); n > 0 {
		r.println(r.label() + plural(n, "unit") + " to compile")
	} else {
		r.println(r.theme.Success(r.label() + "up to date"))
	}
}

func (r *reporter) paths(paths []string) {
	for _, p := range paths {
		r.println("    " + r.theme.Faint(p))
	}
}

func (r *reporter) label() string {
	if r.project.Project == "" {
		return ""
	}
	return r.project.Project + ": "
}

func (r *reporter) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
