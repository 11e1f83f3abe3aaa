// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import "encoding/json"

// Answer is the raw /ask payload as the assistant service returns it.
// Every field is optional; absent fields keep their zero value and the
// session resolver applies the documented defaults.
type Answer struct {
	// Success reports whether the assistant completed the question.
	// nil means the field was absent, which counts as success.
	Success *bool `json:"success,omitempty"`

	Question string `json:"question,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Reasoning []AnswerStep `json:"reasoning,omitempty"`

	SQL    string        `json:"sql,omitempty"`
	Result *AnswerResult `json:"result,omitempty"`

	Status        string `json:"status,omitempty"`
	Error         string `json:"error,omitempty"`
	Clarification string `json:"clarification,omitempty"`

	DatabaseAvailable bool `json:"databaseAvailable,omitempty"`
	IsSQLRequest      bool `json:"isSqlRequest,omitempty"`
}

// Failed reports whether the payload explicitly declares failure.
func (a *Answer) Failed() bool {
	return a.Success != nil && !*a.Success
}

// AnswerStep is one raw reasoning step. The service has shipped two shapes
// over time (label/detail and title/content with a numeric step), so all
// variants are accepted and coalesced during normalization.
type AnswerStep struct {
	Label  string     `json:"label,omitempty"`
	Step   FlexString `json:"step,omitempty"`
	Title  string     `json:"title,omitempty"`
	Detail string     `json:"detail,omitempty"`
	// Content is the title/content variant of Detail.
	Content string `json:"content,omitempty"`
}

// FlexString decodes from either a JSON string or a JSON number. The reasoning
// step index has been serialized both ways by different service versions.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// AnswerResult carries the tabular part of an answer.
type AnswerResult struct {
	Columns []string         `json:"columns,omitempty"`
	Rows    []map[string]any `json:"rows,omitempty"`
}
