package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lerenn/usage-analyzer/cmd/ua/internal/cli"
	"github.com/lerenn/usage-analyzer/pkg/usage"
	"github.com/spf13/cobra"
)

func createReportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write both the Markdown report and the Excalidraw diagram",
		Long: `Analyze component usage once and write both artifacts to the paths set by
markdown_output and excalidraw_output in the configuration.

Examples:
  ua report
  ua report --root ../web --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analyzer, cfg, err := cli.RunAnalyzer()
			if err != nil {
				return err
			}

			markdownPath, err := analyzer.GenerateMarkdown(cfg.MarkdownOutput)
			if err != nil {
				return fmt.Errorf("failed to generate markdown report: %w", err)
			}
			printWritten(cmd.OutOrStdout(), markdownPath, analyzer.Record())

			scenePath, err := analyzer.GenerateExcalidraw(cfg.ExcalidrawOutput, usage.ExcalidrawOptions{})
			if err != nil {
				return fmt.Errorf("failed to generate excalidraw diagram: %w", err)
			}
			printWritten(cmd.OutOrStdout(), scenePath, analyzer.Record())

			return nil
		},
	}

	return reportCmd
}

// printWritten confirms a written report with a short usage summary.
func printWritten(out io.Writer, path string, record *usage.Record) {
	unused := len(record.Unused())
	color.New(color.FgGreen).Fprintf(out, "✅ %s written", path)
	fmt.Fprintf(out, " (%d exports", record.Len())
	if unused > 0 {
		color.New(color.FgYellow).Fprintf(out, ", %d unused", unused)
	}
	fmt.Fprintln(out, ")")
}
