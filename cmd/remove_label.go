package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/internal/logging"
)

// removeLabelCmd removes a label from one or more issues.
var removeLabelCmd = &cobra.Command{
	Use:   "remove-label LABEL",
	Short: "Remove a label from one or more issues",
	Long: `Remove a label from one or more issues.

Without --issues the label is removed from every open issue in the
repository. Issues that don't carry the label are skipped and counted
as successes.

Example:
  issuemgr remove-label "needs-triage" -i 12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		numbers, err := cmd.Flags().GetIntSlice("issues")
		if err != nil {
			return err
		}

		_, client, err := loadClient(cmd)
		if err != nil {
			return err
		}

		issues, err := targetIssues(client, numbers)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No issues found to process.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removing label '%s' from %d issue(s)...\n", label, len(issues))

		successCount := 0
		for _, issue := range issues {
			if err := client.RemoveLabel(issue.Number, label); err != nil {
				logging.Warn("skipping issue after failed label removal",
					"issue_number", issue.Number,
					"error", err)
				continue
			}
			successCount++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully removed label from %d/%d issues.\n", successCount, len(issues))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeLabelCmd)
	removeLabelCmd.Flags().IntSliceP("issues", "i", nil, "Issue numbers to remove the label from (default: all open issues)")
}
