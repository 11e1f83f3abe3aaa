// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/backend"
	"askdb/cli/internal/config"
	"askdb/cli/internal/dsn"
	"askdb/cli/internal/httperrors"
	"askdb/cli/internal/logging"
	"askdb/cli/internal/render"
	"askdb/cli/internal/sqlrun"
)

var (
	execDSN   string
	execLocal bool
)

// execCmd runs a raw SQL query: on the assistant service's attached database
// by default, or directly against a local PostgreSQL database with --local.
var execCmd = &cobra.Command{
	Use:   "exec <sql|->",
	Short: "Run a raw SQL query",
	Long: `The exec command runs a SQL query without involving the language model.
Pass the query as an argument, or "-" to read it from standard input.

By default the query is sent to the assistant service and executed against
its attached database. With --local (or --dsn) the query runs directly
against your own PostgreSQL database; the connection string comes from
--dsn, the DATABASE_URL environment variable, or the askdb config file.
Only read-only queries are accepted in local mode.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(args[0])
		if query == "-" {
			piped, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			query = strings.TrimSpace(string(piped))
		}
		if query == "" {
			render.Error("SQL query cannot be empty")
			return nil
		}

		pterm.Println(render.SQL(query))
		pterm.Println()

		if execLocal || execDSN != "" {
			return execLocally(cmd, query)
		}
		return execRemote(cmd, query)
	},
}

func init() {
	execCmd.Flags().StringVar(&execDSN, "dsn", "", "PostgreSQL connection string for local execution")
	execCmd.Flags().BoolVar(&execLocal, "local", false, "Execute against a local database instead of the service")
	rootCmd.AddCommand(execCmd)
}

// execRemote sends the query to the service's /execute-sql endpoint.
func execRemote(cmd *cobra.Command, query string) error {
	be := backend.New(serverURL())
	res, err := be.ExecuteSQL(cmd.Context(), query)
	if err != nil {
		return httperrors.FormatNetworkError(err, "executing SQL")
	}
	renderExecOutcome(os.Stdout, res, rowLimit())
	return nil
}

// renderExecOutcome prints an /execute-sql result. A response that does not
// report success is a failure even when the service omitted the message.
func renderExecOutcome(w io.Writer, res *backend.ExecResult, limit int) {
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "The query could not be executed"
		}
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgRed).Sprintf("❌ %s", logging.Mask(msg)))
		return
	}
	if len(res.Results) == 0 {
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgYellow).Sprint("No rows returned."))
		return
	}
	render.Table(w, res.Columns, res.Results, limit)
}

// execLocally resolves a DSN and runs the query through the pgx runner.
func execLocally(cmd *cobra.Command, query string) error {
	raw := resolveDSN()
	if raw == "" {
		pterm.Println("⚠️  No database connection configured.")
		pterm.Println("   Provide --dsn, set DATABASE_URL, or add a DSN to the askdb config.")
		return nil
	}

	normalized, err := dsn.Parse(raw)
	if err != nil {
		render.Error("Invalid database connection string")
		pterm.Println("   " + err.Error())
		return err
	}
	pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("→ " + logging.Mask(normalized)))

	runner, err := sqlrun.Connect(cmd.Context(), normalized)
	if err != nil {
		render.Error(logging.PresentError("connect", err))
		return err
	}
	defer runner.Close()

	cols, rows, err := runner.Query(cmd.Context(), query)
	if err != nil {
		render.Error(logging.PresentError("query", err))
		return err
	}
	if len(rows) == 0 {
		pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprint("No rows returned."))
		return nil
	}
	render.Table(os.Stdout, cols, rows, rowLimit())
	return nil
}

// resolveDSN picks the connection string: flag, then environment, then config.
func resolveDSN() string {
	if strings.TrimSpace(execDSN) != "" {
		return strings.TrimSpace(execDSN)
	}
	if env := strings.TrimSpace(os.Getenv("DATABASE_URL")); env != "" {
		return env
	}
	cfg, err := config.Load()
	if err == nil && cfg.DB.Provided {
		return strings.TrimSpace(cfg.DB.DSN)
	}
	return ""
}
