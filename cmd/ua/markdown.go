package main

import (
	"fmt"

	"github.com/lerenn/usage-analyzer/cmd/ua/internal/cli"
	"github.com/spf13/cobra"
)

func createMarkdownCmd() *cobra.Command {
	var output string

	markdownCmd := &cobra.Command{
		Use:   "markdown [--output <path>]",
		Short: "Write the usage report as Markdown",
		Long: `Analyze component usage and write a Markdown report, replacing any existing file.

Examples:
  ua markdown
  ua markdown --output docs/components.md
  ua markdown --target src/components/ui --name Element`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analyzer, cfg, err := cli.RunAnalyzer()
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.MarkdownOutput
			}
			path, err := analyzer.GenerateMarkdown(output)
			if err != nil {
				return fmt.Errorf("failed to generate markdown report: %w", err)
			}

			printWritten(cmd.OutOrStdout(), path, analyzer.Record())
			return nil
		},
	}

	markdownCmd.Flags().StringVarP(&output, "output", "o", "", "Output file; relative paths are resolved against the root")

	return markdownCmd
}
