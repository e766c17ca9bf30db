// Package style holds the colors and glyphs shared by the log handler and the build report.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/kiln/internal/ui/output"
)

// Palette.
var (
	Ember = lipgloss.Color("#E8590C")
	Slate = lipgloss.Color("#667085")
	Green = lipgloss.Color("#22A06B")
	Red   = lipgloss.Color("#D93025")
	Amber = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Theme renders styled text for one writer.
type Theme struct {
	r *lipgloss.Renderer
}

// New creates a Theme for w using the CLI color profile.
func New(w io.Writer) *Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	return &Theme{r: r}
}

// Severity renders a diagnostic severity label in its color.
func (t *Theme) Severity(label string, isError bool) string {
	color := Amber
	if isError {
		color = Red
	}
	return t.r.NewStyle().Foreground(color).Bold(true).Render(label)
}

// Faint renders secondary text such as source locations and counts.
func (t *Theme) Faint(s string) string {
	return t.r.NewStyle().Foreground(Slate).Render(s)
}

// Success renders a line prefixed with a check mark.
func (t *Theme) Success(s string) string {
	return t.r.NewStyle().Foreground(Green).Render(Check) + " " + s
}

// Failure renders a line prefixed with a cross.
func (t *Theme) Failure(s string) string {
	return t.r.NewStyle().Foreground(Red).Render(Cross) + " " + s
}

// Accent renders emphasized text such as the project label.
func (t *Theme) Accent(s string) string {
	return t.r.NewStyle().Foreground(Ember).Bold(true).Render(s)
}
