// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitDebugLevelGating(t *testing.T) {
	t.Setenv("ASKDB_VERBOSE", "")

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	logPath := filepath.Join(dir, "askdb", "askdb.log")

	debugLogger = zerolog.Nop()
	InitDebug("info")
	Debug().Str("endpoint", "/ask").Msg("request")
	if _, err := os.Stat(logPath); err == nil {
		t.Fatal("log file created at info level")
	}

	InitDebug("debug")
	Debug().Str("endpoint", "/ask").Msg("request")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"endpoint":"/ask"`) {
		t.Errorf("log file missing event fields:\n%s", data)
	}
	debugLogger = zerolog.Nop()
}

func TestInitDebugVerboseOverride(t *testing.T) {
	t.Setenv("ASKDB_VERBOSE", "1")

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	debugLogger = zerolog.Nop()
	InitDebug("info")
	Debug().Msg("request")
	if _, err := os.Stat(filepath.Join(dir, "askdb", "askdb.log")); err != nil {
		t.Fatalf("ASKDB_VERBOSE=1 did not enable the log file: %v", err)
	}
	debugLogger = zerolog.Nop()
}
