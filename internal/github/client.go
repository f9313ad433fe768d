// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/issuemgr/issuemgr/internal/config"
	"github.com/issuemgr/issuemgr/internal/logging"
	"github.com/issuemgr/issuemgr/pkg/models"
)

// issuesService is the subset of the go-github Issues service the client
// uses. It exists so tests can substitute a fake implementation.
type issuesService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.Issue, *github.Response, error)
	ListByRepo(ctx context.Context, owner, repo string, opts *github.IssueListByRepoOptions) ([]*github.Issue, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
	RemoveLabelForIssue(ctx context.Context, owner, repo string, number int, label string) (*github.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

// Client encapsulates the GitHub API client for a single repository.
type Client struct {
	issues issuesService
	owner  string
	repo   string
}

// NewClient creates a new GitHub API client for the configured repository.
// It authenticates with the token from the configuration and returns an
// error if the required settings are missing.
func NewClient(cfg *config.Config) (*Client, error) {
	token := cfg.GitHub.Token
	if token == "" || cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		return nil, fmt.Errorf("github token, repository owner, and repository name are required")
	}

	logging.Debug("github configuration",
		"owner", cfg.GitHub.Owner,
		"repo", cfg.GitHub.Repo,
		"token_length", len(token))

	// Create the oauth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	client := github.NewClient(tc)

	return &Client{
		issues: client.Issues,
		owner:  cfg.GitHub.Owner,
		repo:   cfg.GitHub.Repo,
	}, nil
}

// newClientWithService constructs a client around an explicit issues
// service implementation. Used by tests.
func newClientWithService(issues issuesService, owner, repo string) *Client {
	return &Client{issues: issues, owner: owner, repo: repo}
}

// GetIssue retrieves a single issue by number. It returns (nil, nil) when
// the remote confirms the issue does not exist, and a non-nil error for
// transport or HTTP failures.
func (c *Client) GetIssue(number int) (*models.Issue, error) {
	ctx := context.Background()

	issue, resp, err := c.issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			logging.Info("issue not found", "issue_number", number)
			return nil, nil
		}
		logging.Error("error fetching issue", "issue_number", number, "error", err)
		return nil, fmt.Errorf("failed to fetch issue #%d: %v", number, err)
	}

	converted := toIssue(issue)
	return &converted, nil
}

// GetIssues retrieves issues from the repository. When numbers is
// non-empty, exactly those issues are fetched one at a time, in the
// requested order; numbers that do not exist or fail to fetch are skipped.
// Otherwise every issue matching state ("open", "closed", or "all") is
// fetched via pagination. A page failure aborts the whole paginated fetch
// and returns no issues.
func (c *Client) GetIssues(numbers []int, state string, perPage int) ([]models.Issue, error) {
	if len(numbers) > 0 {
		var result []models.Issue
		for _, number := range numbers {
			issue, err := c.GetIssue(number)
			if err != nil || issue == nil {
				continue
			}
			result = append(result, *issue)
		}
		return result, nil
	}

	return c.fetchAllIssues(state, perPage)
}

// fetchAllIssues pages through every issue matching state. Pagination
// stops on an empty page or on a page shorter than perPage. Pull requests
// are skipped: the issues endpoint returns them too.
func (c *Client) fetchAllIssues(state string, perPage int) ([]models.Issue, error) {
	ctx := context.Background()

	var result []models.Issue
	page := 1

	for {
		opts := &github.IssueListByRepoOptions{
			State: state,
			ListOptions: github.ListOptions{
				Page:    page,
				PerPage: perPage,
			},
		}

		issues, _, err := c.issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			logging.Error("failed to fetch issues page", "page", page, "error", err)
			return nil, fmt.Errorf("failed to fetch issues: %v", err)
		}

		for _, issue := range issues {
			if issue.PullRequestLinks != nil {
				continue
			}
			result = append(result, toIssue(issue))
		}

		if len(issues) == 0 || len(issues) < perPage {
			break
		}
		page++
	}

	if len(result) == 0 {
		logging.Info("no issues found in the repository", "state", state)
	} else {
		logging.Info("found issues to process", "state", state, "count", len(result))
	}

	return result, nil
}

// AddLabel adds a label to an issue. GitHub creates labels that don't
// exist in the repository and accepts duplicate additions, so adding a
// label the issue already carries is a success.
func (c *Client) AddLabel(number int, label string) error {
	ctx := context.Background()

	_, _, err := c.issues.AddLabelsToIssue(ctx, c.owner, c.repo, number, []string{label})
	if err != nil {
		logging.Error("error adding label to issue", "issue_number", number, "label", label, "error", err)
		return fmt.Errorf("failed to add label to issue #%d: %v", number, err)
	}

	logging.Debug("added label", "issue_number", number, "label", label)
	return nil
}

// RemoveLabel removes a label from an issue. The issue is fetched first:
// if the label isn't present the removal is a successful no-op and no
// delete call is issued. A 404 from the delete (the label disappeared
// between check and delete) is also treated as success.
func (c *Client) RemoveLabel(number int, label string) error {
	issue, err := c.GetIssue(number)
	if err != nil {
		return err
	}
	if issue == nil {
		return fmt.Errorf("issue #%d not found", number)
	}

	if !issue.HasLabel(label) {
		logging.Info("label not present on issue, skipping", "issue_number", number, "label", label)
		return nil
	}

	ctx := context.Background()
	resp, err := c.issues.RemoveLabelForIssue(ctx, c.owner, c.repo, number, label)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			logging.Info("label already removed from issue", "issue_number", number, "label", label)
			return nil
		}
		logging.Error("error removing label from issue", "issue_number", number, "label", label, "error", err)
		return fmt.Errorf("failed to remove label from issue #%d: %v", number, err)
	}

	logging.Debug("removed label", "issue_number", number, "label", label)
	return nil
}

// UpdateIssueBody replaces the body of an issue wholesale.
func (c *Client) UpdateIssueBody(number int, body string) error {
	ctx := context.Background()

	_, _, err := c.issues.Edit(ctx, c.owner, c.repo, number, &github.IssueRequest{
		Body: github.String(body),
	})
	if err != nil {
		logging.Error("error updating issue body", "issue_number", number, "error", err)
		return fmt.Errorf("failed to update issue #%d: %v", number, err)
	}

	logging.Debug("updated issue body", "issue_number", number)
	return nil
}

// toIssue converts a go-github issue to the internal model.
func toIssue(issue *github.Issue) models.Issue {
	labelNames := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labelNames = append(labelNames, label.GetName())
	}

	assignee := ""
	if issue.Assignee != nil {
		assignee = issue.Assignee.GetLogin()
	}

	return models.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		Assignee:  assignee,
		Labels:    labelNames,
		UpdatedAt: issue.GetUpdatedAt(),
	}
}
