// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package asking

import "strings"

// sqlRequestHints are phrases whose presence marks a question as a request
// for SQL itself rather than a natural-language answer. The service runs the
// same heuristic and its answer flag is authoritative; this local copy lets
// the CLI hint at the intent before the answer arrives.
var sqlRequestHints = []string{
	"write", "create", "sql", "query", "select", "show me the query",
	"what query", "generate", "code", "command", "how to query",
	"what would", "what would the query", "give me a query",
}

// IsSQLRequest reports whether the question asks for SQL generation or
// execution rather than a plain answer.
func IsSQLRequest(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, hint := range sqlRequestHints {
		if strings.Contains(q, hint) {
			return true
		}
	}
	return false
}
