package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/internal/config"
	"github.com/issuemgr/issuemgr/internal/logging"
)

// configCmd shows the current configuration with secrets masked.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config-file")
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "Setting\tValue")
		fmt.Fprintf(tw, "Repo Owner\t%s\n", cfg.GitHub.Owner)
		fmt.Fprintf(tw, "Repo Name\t%s\n", cfg.GitHub.Repo)
		fmt.Fprintf(tw, "GitHub Token\t%s\n", logging.MaskSensitive(cfg.GitHub.Token))
		fmt.Fprintf(tw, "OpenRouter Key\t%s\n", logging.MaskSensitive(cfg.OpenRouter.APIKey))
		fmt.Fprintf(tw, "OpenRouter Model\t%s\n", cfg.OpenRouter.Model)
		fmt.Fprintf(tw, "Rewrite Available\t%t\n", cfg.HasOpenRouter())
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
