// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"askdb/cli/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently asked questions",

	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := history.Open()
		if err != nil {
			return err
		}
		records, err := log.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			pterm.Println("No questions asked yet.")
			return nil
		}

		for _, r := range records {
			when := pterm.NewStyle(pterm.FgGray).Sprint(r.AskedAt.Format("2006-01-02 15:04"))
			status := statusBadge(r.Status)
			pterm.Printfln("%s  %s  %s", when, status, r.Question)
			if r.SQL != "" {
				pterm.Println("    " + pterm.NewStyle(pterm.FgGray).Sprint(r.SQL))
			}
		}
		pterm.Println()
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint(fmt.Sprintf("(%d questions)", len(records))))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of records to show")
	rootCmd.AddCommand(historyCmd)
}

func statusBadge(status string) string {
	switch status {
	case "success":
		return pterm.NewStyle(pterm.FgGreen).Sprint("✓")
	case "empty":
		return pterm.NewStyle(pterm.FgYellow).Sprint("∅")
	case "error":
		return pterm.NewStyle(pterm.FgRed).Sprint("✗")
	case "ambiguous":
		return pterm.NewStyle(pterm.FgYellow).Sprint("?")
	default:
		return " "
	}
}
