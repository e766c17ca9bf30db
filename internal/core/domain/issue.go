package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// Severity classifies a compiler diagnostic.
type Severity string

const (
	// SeverityError marks a diagnostic that fails the compilation.
	SeverityError Severity = "error"
	// SeverityWarning marks an advisory diagnostic.
	SeverityWarning Severity = "warning"
)

// Issue is one compiler diagnostic with its location.
type Issue struct {
	SourcePath string   `json:"path"`
	Line       int      `json:"line"`
	Column     int      `json:"column"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
}

// Equal reports whether two issues are structurally identical.
func (i Issue) Equal(other Issue) bool {
	return i == other
}

// String renders the issue in the compiler's own "path:line:col: severity: message" shape.
func (i Issue) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", i.SourcePath, i.Line, i.Column, i.Severity, i.Message)
}

// WarningsPolicy decides how warnings are reported and whether they fail the build.
type WarningsPolicy string

const (
	// WarningsShow reports warnings but only errors affect the exit status.
	WarningsShow WarningsPolicy = "show"
	// WarningsHide omits warnings from the report and the exit status.
	WarningsHide WarningsPolicy = "hide"
	// WarningsError reports warnings and counts them as errors.
	WarningsError WarningsPolicy = "error"
)

// ParseWarningsPolicy converts a user supplied value, defaulting to WarningsShow when empty.
func ParseWarningsPolicy(s string) (WarningsPolicy, error) {
	switch WarningsPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", WarningsShow:
		return WarningsShow, nil
	case WarningsHide:
		return WarningsHide, nil
	case WarningsError:
		return WarningsError, nil
	default:
		return "", zerr.With(ErrInvalidWarningsPolicy, "policy", s)
	}
}

// Tally is the outcome of applying a WarningsPolicy to a set of issues.
type Tally struct {
	// Visible holds the issues to report, in input order.
	Visible []Issue
	// Errors counts issues that fail the build, including promoted warnings.
	Errors int
	// Warnings counts reported warnings that do not fail the build.
	Warnings int
}

// Apply filters and counts issues under the policy.
func (p WarningsPolicy) Apply(issues []Issue) Tally {
	var t Tally
	for _, issue := range issues {
		if issue.Severity != SeverityWarning {
			t.Visible = append(t.Visible, issue)
			t.Errors++
			continue
		}
		switch p {
		case WarningsHide:
			continue
		case WarningsError:
			t.Errors++
		default:
			t.Warnings++
		}
		t.Visible = append(t.Visible, issue)
	}
	return t
}
