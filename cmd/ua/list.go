package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lerenn/usage-analyzer/cmd/ua/internal/cli"
	"github.com/lerenn/usage-analyzer/pkg/usage"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	var unusedOnly bool

	listCmd := &cobra.Command{
		Use:   "list [--unused]",
		Short: "Print component usage as a table",
		Long: `Analyze component usage and print one row per exported component with the
pages referencing it. Nothing is written to disk.

Examples:
  ua list
  ua list --unused --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analyzer, cfg, err := cli.RunAnalyzer()
			if err != nil {
				return err
			}

			renderUsageTable(cmd.OutOrStdout(), cfg.Name, analyzer.Record(), unusedOnly)
			return nil
		},
	}

	listCmd.Flags().BoolVarP(&unusedOnly, "unused", "u", false, "Only list components no page uses")

	return listCmd
}

// renderUsageTable writes the record as a table, one row per export.
func renderUsageTable(out io.Writer, name string, record *usage.Record, unusedOnly bool) {
	if record.Len() == 0 {
		fmt.Fprintf(out, "No %s exports found.\n", strings.ToLower(name))
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{name, "Pages", "Used in"})

	rows := 0
	for _, entry := range record.Entries() {
		if unusedOnly && len(entry.Pages) > 0 {
			continue
		}
		tbl.AppendRow(table.Row{entry.Name, len(entry.Pages), strings.Join(entry.Pages, "\n")})
		rows++
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d", rows), "", fmt.Sprintf("%d unused", len(record.Unused()))})
	tbl.Render()
}
