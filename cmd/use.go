// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/config"
	"askdb/cli/internal/httperrors"
)

// useCmd switches the assistant service to another database.
var useCmd = &cobra.Command{
	Use:   "use <database>",
	Short: "Select which database the assistant answers from",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		be := backend.New(serverURL())
		msg, err := be.SelectDatabase(cmd.Context(), args[0])
		if err != nil {
			return httperrors.FormatNetworkError(err, "selecting a database")
		}
		if msg == "" {
			msg = "Switched to database: " + args[0]
		}
		pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✓ " + msg))

		// Remember the selection; the service forgets it on restart.
		if cfg, err := config.Load(); err == nil {
			cfg.DefaultDatabase = args[0]
			_ = config.Save(cfg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
