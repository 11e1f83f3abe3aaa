// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/asking"
	"askdb/cli/internal/backend"
	"askdb/cli/internal/history"
	"askdb/cli/internal/httperrors"
	"askdb/cli/internal/render"
	"askdb/cli/internal/terminal"
)

// askCmd submits a natural-language question to the assistant and renders the
// answer. With no argument it enters an interactive loop that keeps asking
// until the user exits.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a question about your data",
	Long: `The ask command sends a plain-English question to the assistant service. The
assistant explores the attached database schema, generates a SQL query, runs
it, and answers with reasoning steps, the query, a result table, or a
paragraph summary. askdb decides which panels to show based on the answer.

Run without an argument to enter interactive mode: questions are read from
the prompt until you type exit, quit or q.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctl := newController()
		if len(args) > 0 {
			return askOnce(cmd.Context(), ctl, strings.Join(args, " "))
		}
		return askInteractive(cmd.Context(), ctl)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// newController wires the controller with the configured backend and the
// local history file. History is best-effort; asking works without it.
func newController() *asking.Controller {
	ctl := asking.NewController(backend.New(serverURL()))
	if log, err := history.Open(); err == nil {
		ctl = ctl.WithHistory(log)
	}
	return ctl
}

// askOnce submits one question, animating the progress labels while the
// request is outstanding, and renders the resolved session.
func askOnce(ctx context.Context, ctl *asking.Controller, question string) error {
	if asking.IsSQLRequest(question) {
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("→ SQL requested"))
	}

	stop := startProgressSpinner()
	s, err := ctl.Ask(ctx, question)
	stop()

	if err != nil {
		if errors.Is(err, asking.ErrEmptyQuestion) {
			render.Error("Question cannot be empty")
			return nil
		}
		return err
	}
	render.Session(os.Stdout, s, rowLimit())
	return nil
}

// askInteractive runs the prompt loop until the user exits.
func askInteractive(ctx context.Context, ctl *asking.Controller) error {
	printWelcome()

	be := backend.New(serverURL())
	if _, err := be.GetVersion(ctx); err != nil {
		return httperrors.FormatNetworkError(err, "connecting to the assistant service")
	}
	pterm.Println(pterm.NewStyle(pterm.FgGreen).Sprint("✓ Connected to the assistant"))

	reader := bufio.NewReader(os.Stdin)
	prompt := "Ask a question: "
	for {
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint(strings.Repeat("─", 60)))
		pterm.Print(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(prompt))

		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF from a closed stdin ends the loop quietly
			pterm.Println()
			return nil
		}
		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "exit", "quit", "q":
			pterm.Println(pterm.NewStyle(pterm.FgYellow).Sprint("Goodbye! 👋"))
			return nil
		}

		terminal.ClearPreviousLines(len(prompt) + len(question))
		pterm.Println(pterm.NewStyle(pterm.FgCyan).Sprint("❯ ") + question)

		if err := askOnce(ctx, ctl, question); err != nil {
			render.Error(err.Error())
		}
	}
}

// printWelcome shows the interactive-mode banner.
func printWelcome() {
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("askdb")).
		WithTopPadding(1).
		WithBottomPadding(1).
		WithLeftPadding(1).
		WithRightPadding(1).
		Println("Ask questions in plain English and get SQL-backed answers.")
	items := []pterm.BulletListItem{
		{Level: 0, Text: "Intelligent schema exploration"},
		{Level: 0, Text: "Generated SQL with highlighted syntax"},
		{Level: 0, Text: "Safe, read-only queries"},
		{Level: 0, Text: "Type exit, quit or q to leave"},
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}
