// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
	apperr "askdb/cli/internal/errors"
	"askdb/cli/internal/httperrors"
	"askdb/cli/internal/render"
)

// uploadCmd uploads a SQLite database file to the assistant service. The
// service selects the uploaded database automatically.
var uploadCmd = &cobra.Command{
	Use:   "upload <file.db>",
	Short: "Upload a SQLite database to the assistant service",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err != nil {
			pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("❌ Cannot read " + path))
			return err
		}

		stop := startInlineSpinner(os.Stdout, "Uploading "+path,
			[]string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		be := backend.New(serverURL())
		msg, err := be.UploadDatabase(cmd.Context(), path)
		stop()
		if err != nil {
			// A rejected file is the user's problem, not the network's.
			if apperr.KindOf(err) == apperr.UploadRejected {
				render.Error(err.Error())
				return err
			}
			return httperrors.FormatNetworkError(err, "uploading the database")
		}
		if msg == "" {
			msg = "Database uploaded"
		}
		pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✓ " + msg))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
