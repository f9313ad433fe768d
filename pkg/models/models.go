// Package models defines data structures shared across the application.
package models

import (
	"time"
)

// Issue represents a GitHub issue with the fields this tool consumes.
type Issue struct {
	// Number is the issue number in GitHub (e.g., 42)
	Number int

	// Title is the issue's title or summary
	Title string

	// Body is the full body text of the issue, empty when the issue
	// has no description
	Body string

	// State is the current state of the issue ("open" or "closed")
	State string

	// Assignee is the login of the assigned user, empty when unassigned
	Assignee string

	// Labels is a slice of label names attached to the issue, in the
	// order the API returned them
	Labels []string

	// UpdatedAt is the timestamp when the issue was last updated
	UpdatedAt time.Time
}

// HasLabel reports whether the issue carries the given label, using
// exact matching.
func (i Issue) HasLabel(name string) bool {
	for _, label := range i.Labels {
		if label == name {
			return true
		}
	}
	return false
}
