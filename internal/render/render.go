// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render draws resolved query sessions in the terminal. It consumes
// already-computed data: the session resolver decides which panels apply, the
// highlighter classifies SQL substrings, and this package only maps them to
// pterm styles and go-pretty tables.
package render

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"askdb/cli/internal/session"
)

// Session renders one resolved session to w. rowLimit caps how many result
// rows are printed.
func Session(w io.Writer, s session.QuerySession, rowLimit int) {
	if s.Status == session.StatusIdle {
		return
	}

	rendered := false
	if s.ShowReasoningTrace {
		ReasoningTrace(w, s.ReasoningSteps, s.Summary, s.ErrorMessage)
		rendered = true
	}
	if s.ShowResult {
		resultPanel(w, s, rowLimit)
		rendered = true
	}
	if s.Status == session.StatusAmbiguous && s.Clarification != "" {
		Clarification(w, s.Clarification)
		rendered = true
	}
	if !rendered {
		// Degenerate terminal session carrying neither panel
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgYellow).Sprint("No result to display."))
	}
}

// ReasoningTrace prints the short explanation panel shown in lieu of a
// concrete result: numbered steps with dimmed detail, then the summary or the
// error message when either is present.
func ReasoningTrace(w io.Writer, steps []session.Step, summary, errMsg string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Reasoning"))
	for _, step := range steps {
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgYellow, pterm.Bold).Sprintf("[Step %d] ", step.ID)+
			pterm.NewStyle(pterm.Bold).Sprint(step.Label))
		if step.Detail != "" {
			fmt.Fprintln(w, "  "+pterm.NewStyle(pterm.FgGray).Sprint(step.Detail))
		}
	}
	switch {
	case errMsg != "":
		fmt.Fprintln(w)
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgRed).Sprint(errMsg))
	case summary != "":
		fmt.Fprintln(w)
		fmt.Fprintln(w, summary)
	}
}

// resultPanel prints the result side of a session: the generated (or
// attempted) SQL, the tabular rows, and the summary paragraph.
func resultPanel(w io.Writer, s session.QuerySession, rowLimit int) {
	if s.Status == session.StatusError {
		fmt.Fprintln(w)
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Query failed"))
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgRed).Sprint(s.ErrorMessage))
		if s.SQL != "" {
			fmt.Fprintln(w)
			fmt.Fprintln(w, pterm.NewStyle(pterm.FgGray).Sprint("This is what we tried:"))
			fmt.Fprintln(w, SQL(s.SQL))
		}
		return
	}

	if s.SQL != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("SQL"))
		fmt.Fprintln(w, SQL(s.SQL))
	}

	switch {
	case s.Status == session.StatusEmpty:
		fmt.Fprintln(w)
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgYellow).Sprint("No rows returned."))
	case len(s.ResultRows) > 0:
		fmt.Fprintln(w)
		Table(w, s.ResultColumns, s.ResultRows, rowLimit)
	}

	if s.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgBlue, pterm.Bold).Sprint("Summary"))
		fmt.Fprintln(w, s.Summary)
	}
}

// Clarification prompts the user to refine an ambiguous question.
func Clarification(w io.Writer, text string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgYellow, pterm.Bold).Sprint("Clarification needed")).
		WithTopPadding(1).
		WithBottomPadding(1).
		WithLeftPadding(1).
		WithRightPadding(1).
		Sprint(text))
}

// Error prints a standalone error line for command-level failures that never
// produced a session.
func Error(msg string) {
	pterm.Println(pterm.NewStyle(pterm.FgRed).Sprintf("❌ %s", msg))
}

// rowsFooter prints the truncation note after a limited table.
func rowsFooter(w io.Writer, total, shown int) {
	if total > shown {
		fmt.Fprintf(w, "%s\n", pterm.NewStyle(pterm.FgGray).Sprintf("... and %d more rows", total-shown))
	}
	fmt.Fprintf(w, "%s\n", pterm.NewStyle(pterm.FgGray).Sprintf("(%d rows)", total))
}
