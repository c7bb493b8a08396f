// Package main provides the command-line interface of the usage analyzer.
package main

import (
	"log"

	"github.com/lerenn/usage-analyzer/cmd/ua/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ua",
		Short: "Usage Analyzer - find which pages use which components",
		Long: `Scan a directory of components and a directory of pages, find which exported
components each page references, and write the result as a Markdown report or
an Excalidraw diagram.`,
		SilenceUsage: true,
	}

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress progress output")
	flags.StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	flags.StringVarP(&cli.Root, "root", "r", "", "Project root (default: current directory)")
	flags.StringVar(&cli.Overrides.Name, "name", "", "Label used in the report header")
	flags.StringVar(&cli.Overrides.TargetPath, "target", "", "Directory of component files, relative to the root")
	flags.StringVar(&cli.Overrides.PagesPath, "pages", "", "Directory of page files, relative to the root")
	flags.StringVar(&cli.Overrides.Extension, "ext", "", "Source file extension")
	flags.StringVar(&cli.Overrides.Alias, "alias", "", "Import alias of the component directory")

	rootCmd.AddCommand(
		createMarkdownCmd(),
		createExcalidrawCmd(),
		createReportCmd(),
		createListCmd(),
		createInitCmd(),
	)

	return rootCmd
}
