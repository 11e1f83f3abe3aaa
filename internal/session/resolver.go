// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"fmt"

	"askdb/cli/internal/backend"
)

// fallbackError is shown when a failure carries no message of its own.
const fallbackError = "An unexpected error occurred"

// Resolve turns a raw assistant answer, or the error that prevented one, into
// a normalized QuerySession. It is total: transport failures, payloads that
// report success=false and structurally broken payloads all produce an
// error-status session rather than propagating.
//
// callErr is the transport/decode error from the request itself, or nil when
// answer was obtained.
func Resolve(answer *backend.Answer, callErr error) QuerySession {
	if callErr != nil || answer == nil || answer.Failed() {
		return resolveFailure(answer, callErr)
	}
	return resolveSuccess(answer)
}

// resolveFailure handles transport failures, explicit failure payloads and
// malformed payloads alike. Partial fields such as the attempted SQL are
// preserved so the UI can show what was tried.
func resolveFailure(answer *backend.Answer, callErr error) QuerySession {
	s := QuerySession{Status: StatusError}

	msg := ""
	if answer != nil {
		msg = answer.Error
		s.SQL = answer.SQL
		s.ReasoningSteps = normalizeSteps(answer.Reasoning)
		s.DatabaseAvailable = answer.DatabaseAvailable
		s.IsSQLRequest = answer.IsSQLRequest
	}
	if msg == "" && callErr != nil {
		msg = callErr.Error()
	}
	if msg == "" {
		msg = fallbackError
	}
	s.ErrorMessage = msg
	s.Summary = msg

	s.ShowReasoningTrace, s.ShowResult = visibility(s.DatabaseAvailable, s.IsSQLRequest)
	return s
}

func resolveSuccess(answer *backend.Answer) QuerySession {
	s := QuerySession{
		ReasoningSteps:    normalizeSteps(answer.Reasoning),
		SQL:               answer.SQL,
		Summary:           answer.Summary,
		DatabaseAvailable: answer.DatabaseAvailable,
		IsSQLRequest:      answer.IsSQLRequest,
	}
	if answer.Result != nil {
		s.ResultColumns = answer.Result.Columns
		s.ResultRows = answer.Result.Rows
	}

	s.Status = deriveStatus(answer.Status, s.SQL, len(s.ResultRows))
	if s.Status == StatusAmbiguous {
		s.Clarification = answer.Clarification
		if s.Clarification == "" {
			s.Clarification = answer.Summary
		}
	}

	s.ShowReasoningTrace, s.ShowResult = visibility(s.DatabaseAvailable, s.IsSQLRequest)
	return s
}

// deriveStatus picks the terminal status for a successful answer. An explicit
// status from the payload is preferred, defaulting to success. A success that
// ran SQL but produced no rows is reclassified as empty; answers with no SQL
// (pure narrative) keep success even with zero rows.
func deriveStatus(explicit, sql string, rowCount int) Status {
	st := StatusSuccess
	switch Status(explicit) {
	case StatusSuccess, StatusEmpty, StatusError, StatusAmbiguous:
		st = Status(explicit)
	}
	if st == StatusSuccess && sql != "" && rowCount == 0 {
		st = StatusEmpty
	}
	return st
}

// visibility implements the panel decision table. With a database attached the
// UI always shows a concrete result and never the reasoning trace; without
// one, a raw-SQL request still shows the generated SQL as the result, while a
// natural-language question shows only the reasoning trace. The same table
// applies to success and error sessions.
func visibility(databaseAvailable, isSQLRequest bool) (showReasoningTrace, showResult bool) {
	if databaseAvailable || isSQLRequest {
		return false, true
	}
	return true, false
}

// normalizeSteps converts raw reasoning steps into the uniform Step shape.
// The label is taken from the first of: explicit label, title, step name;
// otherwise "Step {n}" is synthesized from the 1-based position.
func normalizeSteps(raw []backend.AnswerStep) []Step {
	if len(raw) == 0 {
		return nil
	}
	steps := make([]Step, 0, len(raw))
	for i, r := range raw {
		label := r.Label
		if label == "" {
			label = r.Title
		}
		if label == "" {
			label = string(r.Step)
		}
		if label == "" {
			label = fmt.Sprintf("Step %d", i+1)
		}
		detail := r.Detail
		if detail == "" {
			detail = r.Content
		}
		steps = append(steps, Step{ID: i + 1, Label: label, Detail: detail})
	}
	return steps
}
