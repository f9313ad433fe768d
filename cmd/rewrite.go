package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/issuemgr/issuemgr/internal/logging"
	"github.com/issuemgr/issuemgr/internal/markdown"
	"github.com/issuemgr/issuemgr/internal/openrouter"
)

const (
	modeOpenRouter = "openrouter"
	modeReplace    = "replace"

	// defaultTemperature is the sampling temperature for AI rewrites.
	defaultTemperature = 0.7
)

// rewriteCmd rewrites issue bodies, either with an AI model or with
// literal text replacement.
var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite issue content using AI or text replacement",
	Long: `Rewrite issue content using AI or text replacement.

In openrouter mode the body of each issue is substituted into a prompt
template (at the ` + markdown.PromptPlaceholder + ` marker) and sent to the configured
OpenRouter model; the response replaces the issue body. In replace mode
a literal search/replace is applied to the body instead.

Examples:
  issuemgr rewrite -i 12 --prompt-file rewrite_prompt.md
  issuemgr rewrite --mode replace --search "colour" --replace "color"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Flags().GetString("mode")
		if err != nil {
			return err
		}
		if mode != modeOpenRouter && mode != modeReplace {
			return fmt.Errorf("invalid mode %q: must be %q or %q", mode, modeOpenRouter, modeReplace)
		}

		search, _ := cmd.Flags().GetString("search")
		replace, _ := cmd.Flags().GetString("replace")
		if mode == modeReplace && (search == "" || replace == "") {
			return fmt.Errorf("--search and --replace are required for replace mode")
		}

		promptFile, err := cmd.Flags().GetString("prompt-file")
		if err != nil {
			return err
		}
		modelOverride, err := cmd.Flags().GetString("model")
		if err != nil {
			return err
		}
		numbers, err := cmd.Flags().GetIntSlice("issues")
		if err != nil {
			return err
		}

		cfg, client, err := loadClient(cmd)
		if err != nil {
			return err
		}

		// Initialize the OpenRouter client before touching any issue
		var rewriter *openrouter.Client
		var promptTemplate string
		if mode == modeOpenRouter {
			if !cfg.HasOpenRouter() {
				return fmt.Errorf("openrouter api key not configured")
			}

			rewriter, err = openrouter.NewClient(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize openrouter client: %v", err)
			}
			if modelOverride != "" {
				rewriter.SetModel(modelOverride)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Using model: %s\n", rewriter.Model())

			promptTemplate, err = markdown.ReadPromptFile(promptFile)
			if err != nil {
				return err
			}
		}

		issues, err := targetIssues(client, numbers)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No issues found to process.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Rewriting content for %d issue(s) using %s mode...\n", len(issues), mode)

		successCount := 0
		for _, issue := range issues {
			if issue.Body == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Issue #%d has no content to rewrite. Skipping.\n", issue.Number)
				continue
			}

			var newBody string
			switch mode {
			case modeOpenRouter:
				prompt := strings.ReplaceAll(promptTemplate, markdown.PromptPlaceholder, issue.Body)
				newBody, err = rewriter.RewriteContent(context.Background(), prompt, defaultTemperature, 0)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Failed to rewrite content for issue #%d.\n", issue.Number)
					continue
				}
			case modeReplace:
				var changed bool
				newBody, changed = applyReplacement(issue.Body, search, replace)
				if !changed {
					fmt.Fprintf(cmd.OutOrStdout(), "No occurrences of '%s' found in issue #%d. Skipping.\n", search, issue.Number)
					continue
				}
			}

			if err := client.UpdateIssueBody(issue.Number, newBody); err != nil {
				logging.Warn("skipping issue after failed update",
					"issue_number", issue.Number,
					"error", err)
				continue
			}
			successCount++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully rewrote content for %d/%d issues.\n", successCount, len(issues))
		return nil
	},
}

// applyReplacement substitutes every occurrence of search with replace,
// reporting whether the body actually changed.
func applyReplacement(body, search, replace string) (string, bool) {
	newBody := strings.ReplaceAll(body, search, replace)
	return newBody, newBody != body
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().String("mode", modeOpenRouter, "Rewriting mode: openrouter (AI) or replace (text replacement)")
	rewriteCmd.Flags().IntSliceP("issues", "i", nil, "Issue numbers to rewrite (default: all open issues)")
	rewriteCmd.Flags().String("search", "", "Text to search for (required for replace mode)")
	rewriteCmd.Flags().String("replace", "", "Text to replace with (required for replace mode)")
	rewriteCmd.Flags().String("prompt-file", "rewrite_prompt.md", "Path to prompt template file (for openrouter mode)")
	rewriteCmd.Flags().String("model", "", "OpenRouter model to use (overrides config)")
}
