// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"askdb/cli/internal/backend"
)

func TestRenderExecOutcome(t *testing.T) {
	tests := []struct {
		name        string
		res         *backend.ExecResult
		contains    []string
		notContains []string
	}{
		{
			name:     "failure with message",
			res:      &backend.ExecResult{Success: false, Error: "syntax error at or near FORM"},
			contains: []string{"syntax error at or near FORM"},
		},
		{
			name:        "failure without message still fails",
			res:         &backend.ExecResult{Success: false},
			contains:    []string{"The query could not be executed"},
			notContains: []string{"No rows returned."},
		},
		{
			name:     "success with no rows",
			res:      &backend.ExecResult{Success: true, Columns: []string{"id"}},
			contains: []string{"No rows returned."},
		},
		{
			name: "success with rows",
			res: &backend.ExecResult{
				Success: true,
				Columns: []string{"name"},
				Results: []map[string]any{{"name": "AC/DC"}},
			},
			contains:    []string{"AC/DC", "(1 rows)"},
			notContains: []string{"No rows returned."},
		},
		{
			name:     "failure message with secrets is masked",
			res:         &backend.ExecResult{Success: false, Error: "cannot reach postgres://admin:Secret123@db/prod"},
			contains:    []string{"postgres://*:*@db/prod"},
			notContains: []string{"Secret123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderExecOutcome(&buf, tt.res, 10)
			out := buf.String()

			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, avoid := range tt.notContains {
				if strings.Contains(out, avoid) {
					t.Errorf("output unexpectedly contains %q:\n%s", avoid, out)
				}
			}
		})
	}
}
