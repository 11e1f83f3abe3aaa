// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for askdb, a terminal
// client for a natural-language-to-SQL assistant service. It implements
// subcommands for asking questions, managing databases, inspecting schemas
// and executing raw SQL, using the Cobra CLI framework with a rich terminal
// UI (spinners, highlighted SQL, result tables).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/config"
	"askdb/cli/internal/logging"
)

var (
	showVersion bool
	serverFlag  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "askdb",
	Short:         "Ask your database questions in plain English",
	Long:          `askdb is a terminal client for a natural-language-to-SQL assistant. Type a question; the assistant explores the attached database, generates SQL, runs it and explains the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			be := backend.New(serverURL())
			backendVersion, err := be.GetVersion(cmd.Context())
			if err != nil {
				backendVersion = "unknown"
			}
			fmt.Printf("askdb %s\nservice %s\n", Version, backendVersion)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	logging.InitDebug(logLevel())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("askdb", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show client and service version information")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Assistant service base URL (overrides config and ASKDB_SERVER)")
}

// serverURL resolves the assistant service base URL: the --server flag wins,
// then ASKDB_SERVER, then the config file, then the local default.
func serverURL() string {
	if strings.TrimSpace(serverFlag) != "" {
		return strings.TrimSpace(serverFlag)
	}
	if env := strings.TrimSpace(os.Getenv("ASKDB_SERVER")); env != "" {
		return env
	}
	cfg, err := config.Load()
	if err != nil || strings.TrimSpace(cfg.ServerURL) == "" {
		return config.DefaultServerURL
	}
	return cfg.ServerURL
}

// logLevel resolves the configured log level for the debug logger.
func logLevel() string {
	cfg, err := config.Load()
	if err != nil {
		return "info"
	}
	return cfg.LogLevel
}

// rowLimit resolves how many result rows to render per query.
func rowLimit() int {
	cfg, err := config.Load()
	if err != nil || cfg.RowLimit <= 0 {
		return 50
	}
	return cfg.RowLimit
}
