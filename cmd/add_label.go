package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/internal/logging"
)

// addLabelCmd adds a label to one or more issues.
var addLabelCmd = &cobra.Command{
	Use:   "add-label LABEL",
	Short: "Add a label to one or more issues",
	Long: `Add a label to one or more issues.

Without --issues the label is added to every open issue in the
repository. Labels that don't exist yet are created by GitHub.

Example:
  issuemgr add-label "Severity: High Risk" -i 12 -i 34`,
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

		fmt.Fprintf(cmd.OutOrStdout(), "Adding label '%s' to %d issue(s)...\n", label, len(issues))

		successCount := 0
		for _, issue := range issues {
			if err := client.AddLabel(issue.Number, label); err != nil {
				logging.Warn("skipping issue after failed label add",
					"issue_number", issue.Number,
					"error", err)
				continue
			}
			successCount++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully added label to %d/%d issues.\n", successCount, len(issues))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addLabelCmd)
	addLabelCmd.Flags().IntSliceP("issues", "i", nil, "Issue numbers to add the label to (default: all open issues)")
}
