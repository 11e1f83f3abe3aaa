// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table prints rows as a bordered table. Columns define the display order;
// rows are column-name-to-value maps and need not define every column.
// limit caps printed rows; 0 or negative means no cap.
func Table(w io.Writer, cols []string, rows []map[string]any, limit int) {
	if len(cols) == 0 || len(rows) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}

	shown := len(rows)
	if limit > 0 && shown > limit {
		shown = limit
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range rows[:shown] {
		r := make(table.Row, len(cols))
		for i, col := range cols {
			r[i] = formatValue(row[col])
		}
		t.AppendRow(r)
	}
	t.Render()

	rowsFooter(w, len(rows), shown)
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
