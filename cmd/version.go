// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and service version information",

	RunE: func(cmd *cobra.Command, args []string) error {
		be := backend.New(serverURL())
		backendVersion, err := be.GetVersion(cmd.Context())
		if err != nil {
			backendVersion = "unknown"
		}
		fmt.Printf("askdb %s\nservice %s\n", Version, backendVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
