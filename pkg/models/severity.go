package models

import (
	"sort"
	"strings"
)

// Severity is a priority classification derived from an issue's labels.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityMedium   Severity = "Medium"
	SeverityLow      Severity = "Low"
	SeverityInfo     Severity = "Info"
	SeverityGas      Severity = "Gas"
)

// severityMarkers maps label marker substrings to severities, ordered by
// priority. The marker order decides ties: an issue carrying both a Low
// and a Critical label is Critical no matter where the labels sit in the
// label array.
var severityMarkers = []struct {
	Marker   string
	Severity Severity
}{
	{"Severity: Critical Risk", SeverityCritical},
	{"Severity: High Risk", SeverityHigh},
	{"Severity: Medium Risk", SeverityMedium},
	{"Severity: Low Risk", SeverityLow},
	{"Severity: Informational", SeverityInfo},
	{"Severity: Gas Optimization", SeverityGas},
}

// ExtractSeverity scans the issue's labels for severity marker substrings
// and returns the highest-priority severity found. Issues without any
// severity label default to Info.
func ExtractSeverity(labels []string) Severity {
	for _, m := range severityMarkers {
		for _, label := range labels {
			if strings.Contains(label, m.Marker) {
				return m.Severity
			}
		}
	}
	return SeverityInfo
}

// Unassigned is the summary bucket for issues without an assignee.
const Unassigned = "Unassigned"

// SeverityCount holds per-severity issue counts for one assignee.
type SeverityCount struct {
	Critical int
	High     int
	Medium   int
	Low      int
	Info     int
	Gas      int
	Total    int
}

// Add increments the counter for the given severity and the total.
func (c *SeverityCount) Add(severity Severity) {
	switch severity {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	case SeverityInfo:
		c.Info++
	case SeverityGas:
		c.Gas++
	}
	c.Total++
}

// GenerateSummary groups issues by assignee and counts them per severity.
// Issues without an assignee are grouped under Unassigned. An empty input
// yields an empty map.
func GenerateSummary(issues []Issue) map[string]*SeverityCount {
	summary := make(map[string]*SeverityCount)

	for _, issue := range issues {
		assignee := issue.Assignee
		if assignee == "" {
			assignee = Unassigned
		}

		counts, ok := summary[assignee]
		if !ok {
			counts = &SeverityCount{}
			summary[assignee] = counts
		}
		counts.Add(ExtractSeverity(issue.Labels))
	}

	return summary
}

// SortedAssignees returns the summary's assignee names in lexical order.
func SortedAssignees(summary map[string]*SeverityCount) []string {
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
