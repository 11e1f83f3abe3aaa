// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"strings"

	"github.com/pterm/pterm"

	"askdb/cli/internal/highlight"
)

var tokenStyles = map[highlight.Kind]*pterm.Style{
	highlight.KindKeyword: pterm.NewStyle(pterm.FgCyan, pterm.Bold),
	highlight.KindString:  pterm.NewStyle(pterm.FgGreen),
	highlight.KindComment: pterm.NewStyle(pterm.FgGray),
	highlight.KindNumber:  pterm.NewStyle(pterm.FgMagenta),
}

// SQL returns the query with token categories styled for the terminal.
// Plain segments pass through untouched, so the visible text is always the
// exact input string.
func SQL(query string) string {
	var b strings.Builder
	for _, seg := range highlight.Highlight(query) {
		if style, ok := tokenStyles[seg.Kind]; ok {
			b.WriteString(style.Sprint(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
