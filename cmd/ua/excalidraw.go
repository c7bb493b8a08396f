package main

import (
	"fmt"

	"github.com/lerenn/usage-analyzer/cmd/ua/internal/cli"
	"github.com/lerenn/usage-analyzer/pkg/usage"
	"github.com/spf13/cobra"
)

func createExcalidrawCmd() *cobra.Command {
	var output string

	excalidrawCmd := &cobra.Command{
		Use:   "excalidraw [--output <path>]",
		Short: "Write the usage report as an Excalidraw diagram",
		Long: `Analyze component usage and write an Excalidraw scene with one box per component
and one box per page using it, replacing any existing file.

Examples:
  ua excalidraw
  ua excalidraw --output docs/components.excalidraw.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analyzer, cfg, err := cli.RunAnalyzer()
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.ExcalidrawOutput
			}
			path, err := analyzer.GenerateExcalidraw(output, usage.ExcalidrawOptions{})
			if err != nil {
				return fmt.Errorf("failed to generate excalidraw diagram: %w", err)
			}

			printWritten(cmd.OutOrStdout(), path, analyzer.Record())
			return nil
		},
	}

	excalidrawCmd.Flags().StringVarP(&output, "output", "o", "", "Output file; relative paths are resolved against the root")

	return excalidrawCmd
}
