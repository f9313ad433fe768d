package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/pkg/models"
)

// summaryCmd tabulates issues by assignee and severity.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize issues by assignee and severity",
	Long: `Summarize issues by assignee and severity.

Prints a table with one row per assignee (issues without an assignee are
grouped under "Unassigned"), columns for each severity level, and a
final row with per-column totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		numbers, err := cmd.Flags().GetIntSlice("issues")
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
		if len(issues) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No issues found to summarize.")
			return nil
		}

		summary := models.GenerateSummary(issues)
		if len(summary) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No summary data generated.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Issue Summary for %s\n\n", cfg.Repository())
		return renderSummaryTable(cmd.OutOrStdout(), summary)
	},
}

// renderSummaryTable writes the assignee/severity table: assignees in
// lexical order, six severity columns plus Total, and a trailing Total
// row summing every column.
func renderSummaryTable(w io.Writer, summary map[string]*models.SeverityCount) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "User\tCritical\tHigh\tMedium\tLow\tInfo\tGas\tTotal")

	totals := &models.SeverityCount{}
	for _, assignee := range models.SortedAssignees(summary) {
		c := summary[assignee]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			assignee, c.Critical, c.High, c.Medium, c.Low, c.Info, c.Gas, c.Total)

		totals.Critical += c.Critical
		totals.High += c.High
		totals.Medium += c.Medium
		totals.Low += c.Low
		totals.Info += c.Info
		totals.Gas += c.Gas
		totals.Total += c.Total
	}

	fmt.Fprintf(tw, "Total\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
		totals.Critical, totals.High, totals.Medium, totals.Low, totals.Info, totals.Gas, totals.Total)

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal issues: %d\n", totals.Total)
	return nil
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().IntSliceP("issues", "i", nil, "Issue numbers to summarize (default: all open issues)")
}
