// Package markdown renders fetched issues to a markdown document.
package markdown

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/issuemgr/issuemgr/internal/logging"
	"github.com/issuemgr/issuemgr/pkg/models"
)

// PromptPlaceholder is the marker in a rewrite prompt template that gets
// replaced with the issue body.
const PromptPlaceholder = "$##$"

// WriteIssues renders the issues as a markdown document: a repository
// title, a summary table, then one section per issue. Issues are ordered
// by ascending issue number regardless of input order.
func WriteIssues(w io.Writer, issues []models.Issue, owner, repo string) error {
	if len(issues) == 0 {
		return fmt.Errorf("no issues to write")
	}

	sorted := make([]models.Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	repoInfo := "Repository"
	if owner != "" && repo != "" {
		repoInfo = owner + "/" + repo
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Issues from %s\n\n", repoInfo))

	b.WriteString("## Summary\n\n")
	b.WriteString("| ID | Title | Severity | Status |\n")
	b.WriteString("|-----|-------|----------|--------|\n")

	for _, issue := range sorted {
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n",
			issue.Number, issue.Title, detectSeverity(issue), capitalize(issue.State)))
	}

	b.WriteString("\n\n")

	for _, issue := range sorted {
		b.WriteString(fmt.Sprintf("## Issue #%d: %s\n\n", issue.Number, issue.Title))
		b.WriteString(fmt.Sprintf("- **Updated at:** %s\n", issue.UpdatedAt.Format(time.RFC3339)))

		if len(issue.Labels) > 0 {
			b.WriteString(fmt.Sprintf("- **Labels:** %s\n", strings.Join(issue.Labels, ", ")))
		}

		b.WriteString("\n### Description\n\n")
		if issue.Body != "" {
			b.WriteString(issue.Body + "\n\n")
		} else {
			b.WriteString("*No description provided*\n\n")
		}

		b.WriteString("---\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteIssuesFile writes the issue document to a file path.
func WriteIssuesFile(path string, issues []models.Issue, owner, repo string) error {
	f, err := os.Create(path)
	if err != nil {
		logging.Error("error creating output file", "path", path, "error", err)
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := WriteIssues(f, issues, owner, repo); err != nil {
		return err
	}

	logging.Info("wrote issues to file", "path", path, "count", len(issues))
	return nil
}

// ReadPromptFile reads a rewrite prompt template from disk.
func ReadPromptFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Error("error reading prompt file", "path", path, "error", err)
		return "", fmt.Errorf("failed to read prompt file %s: %v", path, err)
	}
	return string(data), nil
}

// detectSeverity classifies an issue for the summary table. Unlike the
// label-taxonomy severities, this uses loose high/medium/low keywords:
// exact matches against lowercased label names first, then substrings of
// the title, defaulting to "None".
func detectSeverity(issue models.Issue) string {
	labelNames := make([]string, len(issue.Labels))
	for i, label := range issue.Labels {
		labelNames[i] = strings.ToLower(label)
	}

	if containsAny(labelNames, "high", "critical", "severe") {
		return "High"
	}
	if containsAny(labelNames, "medium", "moderate") {
		return "Medium"
	}
	if containsAny(labelNames, "low", "minor") {
		return "Low"
	}

	title := strings.ToLower(issue.Title)
	if containsSubstring(title, "high", "critical", "severe") {
		return "High"
	}
	if containsSubstring(title, "medium", "moderate") {
		return "Medium"
	}
	if containsSubstring(title, "low", "minor") {
		return "Low"
	}

	return "None"
}

func containsAny(values []string, targets ...string) bool {
	for _, v := range values {
		for _, t := range targets {
			if v == t {
				return true
			}
		}
	}
	return false
}

func containsSubstring(s string, targets ...string) bool {
	for _, t := range targets {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
