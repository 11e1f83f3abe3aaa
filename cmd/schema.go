// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/httperrors"
	"askdb/cli/internal/render"
)

// schemaCmd shows the schema of the currently selected database: all table
// names, or the columns and foreign keys of one table.
var schemaCmd = &cobra.Command{
	Use:   "schema [table]",
	Short: "Show the attached database's tables or one table's columns",
	Args:  cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		table := ""
		if len(args) > 0 {
			table = args[0]
		}

		be := backend.New(serverURL())
		view, err := be.Schema(cmd.Context(), table)
		if err != nil {
			return httperrors.FormatNetworkError(err, "fetching the schema")
		}

		if table == "" {
			if len(view.Tables) == 0 {
				pterm.Println("No tables found. Is a database attached?")
				return nil
			}
			pterm.Println(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Tables"))
			var items []pterm.BulletListItem
			for _, name := range view.Tables {
				items = append(items, pterm.BulletListItem{Level: 0, Text: name})
			}
			return pterm.DefaultBulletList.WithItems(items).Render()
		}

		pterm.Println(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Table " + view.TableName))
		cols := []string{"name", "type", "nullable", "primary_key"}
		rows := make([]map[string]any, 0, len(view.Columns))
		for _, c := range view.Columns {
			rows = append(rows, map[string]any{
				"name":        c.Name,
				"type":        c.Type,
				"nullable":    c.Nullable,
				"primary_key": c.PrimaryKey,
			})
		}
		render.Table(os.Stdout, cols, rows, 0)

		if len(view.ForeignKeys) > 0 {
			pterm.Println()
			pterm.Println(pterm.NewStyle(pterm.FgCyan).Sprint("Foreign keys"))
			for _, fk := range view.ForeignKeys {
				pterm.Printf("  %s → %s.%s\n", fk.Column, fk.ReferencesTable, fk.ReferencesColumn)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
