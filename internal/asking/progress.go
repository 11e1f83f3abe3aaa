// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package asking

import (
	"time"

	"askdb/cli/internal/session"
)

// Progress label thresholds. The four wait labels are cosmetic and
// time-sliced; they carry no data and are never produced by the resolver.
var stages = []struct {
	after time.Duration
	label session.Status
}{
	{0, session.StatusThinking},
	{2 * time.Second, session.StatusExploring},
	{5 * time.Second, session.StatusGenerating},
	{9 * time.Second, session.StatusExecuting},
}

// StageAt returns the progress label to display after the given wait time.
func StageAt(elapsed time.Duration) session.Status {
	label := stages[0].label
	for _, s := range stages {
		if elapsed >= s.after {
			label = s.label
		}
	}
	return label
}

// StageText maps a progress label to the line shown next to the spinner.
func StageText(s session.Status) string {
	switch s {
	case session.StatusThinking:
		return "Thinking about your question"
	case session.StatusExploring:
		return "Exploring the database schema"
	case session.StatusGenerating:
		return "Generating SQL"
	case session.StatusExecuting:
		return "Executing the query"
	}
	return string(s)
}
