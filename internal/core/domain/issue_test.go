package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestIssue_String(t *testing.T) {
	issue := domain.Issue{
		SourcePath: "src/A.java",
		Line:       3,
		Column:     9,
		Severity:   domain.SeverityError,
		Message:    "cannot find symbol",
	}

	assert.Equal(t, "src/A.java:3:9: error: cannot find symbol", issue.String())
	assert.True(t, issue.Equal(issue))

	other := issue
	other.Column = 10
	assert.False(t, issue.Equal(other))
}

func TestParseWarningsPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.WarningsPolicy
	}{
		{"", domain.WarningsShow},
		{"show", domain.WarningsShow},
		{"HIDE", domain.WarningsHide},
		{" error ", domain.WarningsError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseWarningsPolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := domain.ParseWarningsPolicy("loud")
	require.ErrorContains(t, err, domain.ErrInvalidWarningsPolicy.Error())
}

func TestWarningsPolicy_Apply(t *testing.T) {
	warning := domain.Issue{SourcePath: "src/A.java", Line: 1, Severity: domain.SeverityWarning, Message: "unchecked"}

	t.Run("show", func(t *testing.T) {
		tally := domain.WarningsShow.Apply([]domain.Issue{warning})
		assert.Equal(t, 0, tally.Errors)
		assert.Equal(t, 1, tally.Warnings)
		assert.Equal(t, []domain.Issue{warning}, tally.Visible)
	})

	t.Run("hide", func(t *testing.T) {
		tally := domain.WarningsHide.Apply([]domain.Issue{warning})
		assert.Equal(t, 0, tally.Errors)
		assert.Equal(t, 0, tally.Warnings)
		assert.Empty(t, tally.Visible)
	})

	t.Run("error", func(t *testing.T) {
		tally := domain.WarningsError.Apply([]domain.Issue{warning})
		assert.Equal(t, 1, tally.Errors)
		assert.Equal(t, 0, tally.Warnings)
		assert.Equal(t, []domain.Issue{warning}, tally.Visible)
	})

	t.Run("errors always count", func(t *testing.T) {
		failure := domain.Issue{SourcePath: "src/B.java", Line: 2, Severity: domain.SeverityError, Message: "boom"}
		tally := domain.WarningsHide.Apply([]domain.Issue{warning, failure})
		assert.Equal(t, 1, tally.Errors)
		assert.Equal(t, []domain.Issue{failure}, tally.Visible)
	})
}
