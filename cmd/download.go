package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/internal/markdown"
)

// downloadCmd exports issues to a markdown document.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download issues to a markdown file",
	Long: `Download issues to a markdown file.

The document starts with a summary table (ID, title, severity, status)
followed by one section per issue with its labels and full body text.
Without --issues every open issue is exported; --include-closed adds
closed issues as well. Explicit issue numbers are fetched regardless of
state.

Example:
  issuemgr download --include-closed -o audit-issues.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, err := cmd.Flags().GetIntSlice("issues")
		if err != nil {
			return err
		}
		includeClosed, err := cmd.Flags().GetBool("include-closed")
		if err != nil {
			return err
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		cfg, client, err := loadClient(cmd)
		if err != nil {
			return err
		}

		issues, err := targetIssues(client, numbers)
		if err != nil {
			return err
		}

		if len(numbers) == 0 && includeClosed {
			fmt.Fprintln(cmd.OutOrStdout(), "Fetching closed issues...")
			closed, err := client.GetIssues(nil, "closed", defaultPageSize)
			if err != nil {
				return err
			}
			issues = append(issues, closed...)
		}

		if len(issues) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No issues found to download.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Downloading %d issue(s) to %s...\n", len(issues), output)

		if err := markdown.WriteIssuesFile(output, issues, cfg.GitHub.Owner, cfg.GitHub.Repo); err != nil {
			return fmt.Errorf("failed to write issues to %s: %v", output, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully downloaded issues to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().IntSliceP("issues", "i", nil, "Issue numbers to download (default: all open issues)")
	downloadCmd.Flags().Bool("include-closed", false, "Include closed issues in the output")
	downloadCmd.Flags().StringP("output", "o", "download.md", "Output file path")
}
