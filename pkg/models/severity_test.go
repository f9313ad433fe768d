package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSeverity(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		expected Severity
	}{
		{
			name:     "Single critical label",
			labels:   []string{"Severity: Critical Risk"},
			expected: SeverityCritical,
		},
		{
			name:     "Single high label",
			labels:   []string{"Severity: High Risk"},
			expected: SeverityHigh,
		},
		{
			name:     "Single medium label",
			labels:   []string{"Severity: Medium Risk"},
			expected: SeverityMedium,
		},
		{
			name:     "Single low label",
			labels:   []string{"Severity: Low Risk"},
			expected: SeverityLow,
		},
		{
			name:     "Single informational label",
			labels:   []string{"Severity: Informational"},
			expected: SeverityInfo,
		},
		{
			name:     "Single gas label",
			labels:   []string{"Severity: Gas Optimization"},
			expected: SeverityGas,
		},
		{
			name:     "Marker embedded in a longer label name",
			labels:   []string{"audit/Severity: High Risk (confirmed)"},
			expected: SeverityHigh,
		},
		{
			name:     "Critical wins over low regardless of label order",
			labels:   []string{"Severity: Low Risk", "Severity: Critical Risk"},
			expected: SeverityCritical,
		},
		{
			name:     "Critical wins when listed first too",
			labels:   []string{"Severity: Critical Risk", "Severity: Low Risk"},
			expected: SeverityCritical,
		},
		{
			name:     "Gas loses to everything",
			labels:   []string{"Severity: Gas Optimization", "Severity: Informational"},
			expected: SeverityInfo,
		},
		{
			name:     "No matching marker defaults to info",
			labels:   []string{"bug", "help wanted"},
			expected: SeverityInfo,
		},
		{
			name:     "No labels defaults to info",
			labels:   nil,
			expected: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSeverity(tt.labels))
		})
	}
}

func TestGenerateSummaryEmpty(t *testing.T) {
	summary := GenerateSummary(nil)
	assert.Empty(t, summary)

	summary = GenerateSummary([]Issue{})
	assert.Empty(t, summary)
}

func TestGenerateSummaryCounts(t *testing.T) {
	issues := []Issue{
		{Number: 1, Assignee: "alice", Labels: []string{"Severity: Critical Risk"}},
		{Number: 2, Assignee: "alice", Labels: []string{"Severity: Low Risk"}},
		{Number: 3, Assignee: "bob", Labels: []string{"Severity: Gas Optimization"}},
		{Number: 4, Labels: []string{"Severity: High Risk"}},
		{Number: 5, Labels: nil},
	}

	summary := GenerateSummary(issues)
	require.Len(t, summary, 3)

	alice := summary["alice"]
	require.NotNil(t, alice)
	assert.Equal(t, 1, alice.Critical)
	assert.Equal(t, 1, alice.Low)
	assert.Equal(t, 2, alice.Total)

	bob := summary["bob"]
	require.NotNil(t, bob)
	assert.Equal(t, 1, bob.Gas)
	assert.Equal(t, 1, bob.Total)

	unassigned := summary[Unassigned]
	require.NotNil(t, unassigned)
	assert.Equal(t, 1, unassigned.High)
	assert.Equal(t, 1, unassigned.Info)
	assert.Equal(t, 2, unassigned.Total)

	// Per-assignee totals sum to the number of issues, and each
	// assignee's severity counts sum to its own total
	grandTotal := 0
	for _, counts := range summary {
		perSeverity := counts.Critical + counts.High + counts.Medium +
			counts.Low + counts.Info + counts.Gas
		assert.Equal(t, counts.Total, perSeverity)
		grandTotal += counts.Total
	}
	assert.Equal(t, len(issues), grandTotal)
}

func TestSortedAssignees(t *testing.T) {
	summary := map[string]*SeverityCount{
		"charlie":  {},
		"alice":    {},
		Unassigned: {},
		"bob":      {},
	}

	assert.Equal(t, []string{Unassigned, "alice", "bob", "charlie"}, SortedAssignees(summary))
}

func TestHasLabel(t *testing.T) {
	issue := Issue{Labels: []string{"bug", "Severity: Low Risk"}}

	assert.True(t, issue.HasLabel("bug"))
	assert.False(t, issue.HasLabel("Bug"))
	assert.False(t, issue.HasLabel("enhancement"))
}
