// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"askdb/cli/internal/xdg"
)

var debugLogger = zerolog.Nop()

// InitDebug enables structured debug logging to askdb.log in the XDG state
// directory when the configured log level is "debug", or unconditionally when
// ASKDB_VERBOSE=1 is set. Otherwise, or when the log file cannot be opened,
// debug logging stays a no-op.
func InitDebug(level string) {
	if os.Getenv("ASKDB_VERBOSE") == "1" {
		level = "debug"
	}
	if level != "debug" {
		return
	}
	dir, err := xdg.StateDir()
	if err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "askdb.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	debugLogger = zerolog.New(f).With().Timestamp().Logger()
}

// Debug starts a debug-level log event. Safe to call whether or not InitDebug
// has run; events are discarded unless verbose mode is active.
func Debug() *zerolog.Event {
	return debugLogger.Debug()
}
