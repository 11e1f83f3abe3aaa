// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/httperrors"
)

// databasesCmd lists the databases the assistant service knows about and
// marks the current selection.
var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List databases available on the assistant service",

	RunE: func(cmd *cobra.Command, args []string) error {
		be := backend.New(serverURL())
		info, err := be.ListDatabases(cmd.Context())
		if err != nil {
			return httperrors.FormatNetworkError(err, "listing databases")
		}

		if len(info.Databases) == 0 {
			pterm.Println("No databases available.")
			pterm.Println("Upload one with: askdb upload <file.db>")
			return nil
		}

		pterm.Println(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Databases"))
		for _, name := range info.Databases {
			if name == info.Current {
				pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("● " + name + " (current)"))
				continue
			}
			pterm.Println("  " + name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}
