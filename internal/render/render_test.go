// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package render

import (
	"bytes"
	"strings"
	"testing"

	"askdb/cli/internal/session"
)

func TestSessionPanelSelection(t *testing.T) {
	tests := []struct {
		name        string
		s           session.QuerySession
		contains    []string
		notContains []string
	}{
		{
			name: "idle renders nothing",
			s:    session.Idle(),
		},
		{
			name: "reasoning trace only",
			s: session.QuerySession{
				Status:             session.StatusSuccess,
				ReasoningSteps:     []session.Step{{ID: 1, Label: "Understanding the question", Detail: "no database attached"}},
				Summary:            "I can only explain, not execute.",
				ShowReasoningTrace: true,
			},
			contains:    []string{"Reasoning", "Understanding the question", "no database attached", "I can only explain, not execute."},
			notContains: []string{"SQL", "Query failed", "No result to display."},
		},
		{
			name: "result panel with rows and summary",
			s: session.QuerySession{
				Status:        session.StatusSuccess,
				SQL:           "SELECT name FROM artists",
				ResultColumns: []string{"name"},
				ResultRows:    []map[string]any{{"name": "AC/DC"}},
				Summary:       "One artist matched.",
				ShowResult:    true,
			},
			contains:    []string{"SQL", "AC/DC", "Summary", "One artist matched."},
			notContains: []string{"Reasoning", "No result to display."},
		},
		{
			name: "empty result",
			s: session.QuerySession{
				Status:     session.StatusEmpty,
				SQL:        "SELECT 1 WHERE 1=0",
				ShowResult: true,
			},
			contains:    []string{"No rows returned."},
			notContains: []string{"No result to display."},
		},
		{
			name: "error result shows the attempted query",
			s: session.QuerySession{
				Status:       session.StatusError,
				SQL:          "SELECT * FROM missing_table",
				ErrorMessage: "relation does not exist",
				ShowResult:   true,
			},
			contains:    []string{"Query failed", "relation does not exist", "This is what we tried:", "missing_table"},
			notContains: []string{"Summary", "No result to display."},
		},
		{
			name: "ambiguous renders the clarification box",
			s: session.QuerySession{
				Status:        session.StatusAmbiguous,
				Clarification: "Which year do you mean?",
			},
			contains:    []string{"Clarification needed", "Which year do you mean?"},
			notContains: []string{"No result to display."},
		},
		{
			name: "degenerate terminal session renders the placeholder",
			s: session.QuerySession{
				Status: session.StatusSuccess,
			},
			contains: []string{"No result to display."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Session(&buf, tt.s, 10)
			out := buf.String()

			if tt.s.Status == session.StatusIdle {
				if out != "" {
					t.Errorf("idle session produced output:\n%s", out)
				}
				return
			}
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
