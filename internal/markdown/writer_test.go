package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuemgr/issuemgr/pkg/models"
)

func TestWriteIssuesOrdering(t *testing.T) {
	issues := []models.Issue{
		{Number: 9, Title: "Later issue", State: "open", Body: "body nine"},
		{Number: 3, Title: "Earlier issue", State: "closed", Body: "body three"},
	}

	var b strings.Builder
	require.NoError(t, WriteIssues(&b, issues, "octocat", "hello-world"))
	doc := b.String()

	assert.True(t, strings.HasPrefix(doc, "# Issues from octocat/hello-world\n"))

	// Sections are ordered by ascending issue number regardless of input order
	posThree := strings.Index(doc, "## Issue #3: Earlier issue")
	posNine := strings.Index(doc, "## Issue #9: Later issue")
	require.GreaterOrEqual(t, posThree, 0)
	require.GreaterOrEqual(t, posNine, 0)
	assert.Less(t, posThree, posNine)

	// The summary table follows the same order
	assert.Contains(t, doc, "| ID | Title | Severity | Status |")
	posRowThree := strings.Index(doc, "| 3 | Earlier issue |")
	posRowNine := strings.Index(doc, "| 9 | Later issue |")
	assert.Less(t, posRowThree, posRowNine)
	assert.Contains(t, doc, "| 3 | Earlier issue | None | Closed |")
}

func TestWriteIssuesLabelsAndBody(t *testing.T) {
	updated := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	issues := []models.Issue{
		{Number: 1, Title: "Labeled", State: "open", Body: "has a body",
			Labels: []string{"bug", "Severity: Low Risk"}, UpdatedAt: updated},
		{Number: 2, Title: "Bare", State: "open"},
	}

	var b strings.Builder
	require.NoError(t, WriteIssues(&b, issues, "octocat", "hello-world"))
	doc := b.String()

	assert.Contains(t, doc, "- **Labels:** bug, Severity: Low Risk\n")
	assert.Contains(t, doc, "- **Updated at:** 2024-05-17T09:30:00Z\n")
	assert.Contains(t, doc, "has a body\n")

	// An issue without labels renders no Labels line in its section
	bareSection := doc[strings.Index(doc, "## Issue #2: Bare"):]
	assert.NotContains(t, bareSection, "**Labels:**")

	// An issue without a body renders the placeholder
	assert.Contains(t, bareSection, "*No description provided*\n")
}

func TestWriteIssuesEmpty(t *testing.T) {
	var b strings.Builder
	assert.Error(t, WriteIssues(&b, nil, "octocat", "hello-world"))
}

func TestWriteIssuesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "download.md")
	issues := []models.Issue{{Number: 1, Title: "Only", State: "open", Body: "text"}}

	require.NoError(t, WriteIssuesFile(path, issues, "octocat", "hello-world"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Issues from octocat/hello-world")
}

func TestDetectSeverity(t *testing.T) {
	tests := []struct {
		name     string
		issue    models.Issue
		expected string
	}{
		{
			name:     "Critical label",
			issue:    models.Issue{Labels: []string{"critical"}},
			expected: "High",
		},
		{
			name:     "Moderate label",
			issue:    models.Issue{Labels: []string{"moderate"}},
			expected: "Medium",
		},
		{
			name:     "Minor label",
			issue:    models.Issue{Labels: []string{"Minor"}},
			expected: "Low",
		},
		{
			name:     "Labels need an exact match",
			issue:    models.Issue{Labels: []string{"highly-visible"}},
			expected: "None",
		},
		{
			name:     "Title matched by substring",
			issue:    models.Issue{Title: "Severe reentrancy in withdraw()"},
			expected: "High",
		},
		{
			name:     "Label wins over title",
			issue:    models.Issue{Title: "critical bug", Labels: []string{"low"}},
			expected: "Low",
		},
		{
			name:     "Nothing matches",
			issue:    models.Issue{Title: "Typo in README", Labels: []string{"docs"}},
			expected: "None",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectSeverity(tt.issue))
		})
	}
}

func TestReadPromptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewrite_prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("Rewrite: "+PromptPlaceholder), 0644))

	content, err := ReadPromptFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Rewrite: $##$", content)

	_, err = ReadPromptFile(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}
