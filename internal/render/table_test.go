// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	cols := []string{"id", "name", "email"}
	rows := []map[string]any{
		{"id": 1, "name": "Luís Gonçalves", "email": "luisg@embraer.com.br"},
		{"id": 2, "name": "Leonie Köhler", "email": nil},
	}

	var buf bytes.Buffer
	Table(&buf, cols, rows, 0)
	out := buf.String()

	for _, want := range []string{"ID", "NAME", "EMAIL", "Luís Gonçalves", "NULL", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "more rows") {
		t.Errorf("unexpected truncation footer:\n%s", out)
	}
}

func TestTableLimit(t *testing.T) {
	cols := []string{"n"}
	rows := make([]map[string]any, 7)
	for i := range rows {
		rows[i] = map[string]any{"n": i}
	}

	var buf bytes.Buffer
	Table(&buf, cols, rows, 3)
	out := buf.String()

	if !strings.Contains(out, "... and 4 more rows") {
		t.Errorf("missing truncation footer:\n%s", out)
	}
	if !strings.Contains(out, "(7 rows)") {
		t.Errorf("missing total count:\n%s", out)
	}
	if strings.Contains(out, "│ 5 ") || strings.Contains(out, "│ 6 ") {
		t.Errorf("rows beyond the limit were printed:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, nil, nil, 10)
	if got := buf.String(); !strings.Contains(got, "(0 rows)") {
		t.Errorf("output = %q, want (0 rows)", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "NULL"},
		{"text", "text"},
		{42, "42"},
		{3.14, "3.14"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
