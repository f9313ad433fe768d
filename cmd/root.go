// Package cmd provides the command-line interface for the issuemgr CLI tool.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/internal/config"
	"github.com/issuemgr/issuemgr/internal/github"
	"github.com/issuemgr/issuemgr/pkg/models"
)

// defaultPageSize is the page size requested from the issues API.
const defaultPageSize = 100

// Version is the build version, overridable at link time.
var Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "issuemgr",
	Short:   "issuemgr manages GitHub issues for a repository",
	Version: Version,
	Long: `issuemgr is a CLI tool for managing the issues of a single GitHub
repository. It can add and remove labels, rewrite issue content with an
AI model or plain text replacement, download issues to a markdown
document, and summarize issues by assignee and severity.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all commands
	rootCmd.PersistentFlags().String("config-file", "", "Path to .env configuration file")
}

// loadClient loads configuration and builds the GitHub client for a command.
func loadClient(cmd *cobra.Command) (*config.Config, *github.Client, error) {
	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	client, err := github.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, client, nil
}

// targetIssues resolves the issues a command operates on: the explicitly
// requested numbers, or every open issue when none were given.
func targetIssues(client *github.Client, numbers []int) ([]models.Issue, error) {
	return client.GetIssues(numbers, "open", defaultPageSize)
}
