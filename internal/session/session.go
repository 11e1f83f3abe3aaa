// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session defines the normalized query session model and the resolver
// that produces it from raw assistant answers. A QuerySession is the single
// source of truth for what the terminal UI renders after a question completes:
// which status applies, which panels are visible, and the normalized fields
// (reasoning steps, SQL, tabular rows, summary).
//
// The resolver is a pure function over an already-fetched payload; it performs
// no I/O and never fails. Transport errors, explicit failure payloads and
// malformed bodies all collapse into an error-status session so callers never
// need a separate error path.
package session

// Status enumerates the states a question's processing can be in.
// Exactly one status holds at any time. StatusIdle is the initial/reset state;
// the four progress statuses (thinking through executing) are cosmetic wait
// labels driven by the asking controller, never produced by the resolver.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusThinking   Status = "thinking"
	StatusExploring  Status = "exploring"
	StatusGenerating Status = "generating"
	StatusExecuting  Status = "executing"
	StatusSuccess    Status = "success"
	StatusEmpty      Status = "empty"
	StatusError      Status = "error"
	StatusAmbiguous  Status = "ambiguous"
)

// Terminal reports whether s is a terminal state, i.e. one the resolver can
// produce for a finished question.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccess, StatusEmpty, StatusError, StatusAmbiguous:
		return true
	}
	return false
}

// Step is one normalized reasoning step. Steps arrive only for finished
// answers, so every step is complete; there is no pending state.
type Step struct {
	ID     int    `json:"id"`
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// QuerySession is the normalized outcome of one question, immutable once
// created by Resolve.
type QuerySession struct {
	Status Status `json:"status"`

	ReasoningSteps []Step `json:"reasoning_steps,omitempty"`

	// SQL is the generated query, if any. An error session may still carry
	// the SQL that was attempted.
	SQL string `json:"sql,omitempty"`

	// ResultColumns holds column names in display order.
	ResultColumns []string `json:"result_columns,omitempty"`
	// ResultRows maps column name to value; a row need not define every column.
	ResultRows []map[string]any `json:"result_rows,omitempty"`

	// Summary is the paragraph answer or completion message.
	Summary string `json:"summary,omitempty"`

	// Clarification is set only when Status is ambiguous.
	Clarification string `json:"clarification,omitempty"`
	// ErrorMessage is set only when Status is error.
	ErrorMessage string `json:"error_message,omitempty"`

	DatabaseAvailable bool `json:"database_available"`
	IsSQLRequest      bool `json:"is_sql_request"`

	// ShowReasoningTrace and ShowResult are derived by the resolver and
	// control which panels the UI renders.
	ShowReasoningTrace bool `json:"show_reasoning_trace"`
	ShowResult         bool `json:"show_result"`
}

// Idle returns the initial session shown before any question has been asked.
func Idle() QuerySession {
	return QuerySession{Status: StatusIdle}
}
