package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/lerenn/usage-analyzer/cmd/ua/internal/cli"
	"github.com/lerenn/usage-analyzer/configs"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write a default configuration file",
		Long: `Write a commented default configuration file to the project root, or to the
path given with --config.

Flags:
  --force   Replace an existing configuration file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()
			if err := manager.Init(configs.DefaultConfigYAML, force); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ Configuration written to %s\n", manager.GetConfigPath())
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing configuration file")

	return initCmd
}
