// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package history persists a local record of asked questions in the XDG state
// directory, one JSON object per line. The file is append-only; Recent reads
// it back for the history command.
package history

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"askdb/cli/internal/xdg"
)

const fileName = "history.jsonl"

// Record is one asked question and its outcome.
type Record struct {
	AskedAt  time.Time `json:"asked_at"`
	Question string    `json:"question"`
	Status   string    `json:"status"`
	SQL      string    `json:"sql,omitempty"`
	RowCount int       `json:"row_count,omitempty"`
}

// Log appends and reads history records.
type Log struct {
	path string
}

// Open returns a Log backed by the default state-dir file.
func Open() (*Log, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	return &Log{path: filepath.Join(dir, fileName)}, nil
}

// OpenAt returns a Log backed by an explicit file path.
func OpenAt(path string) *Log {
	return &Log{path: path}
}

// Append writes one record. AskedAt defaults to the current time.
func (l *Log) Append(r Record) error {
	if r.AskedAt.IsZero() {
		r.AskedAt = time.Now()
	}
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// Recent returns up to limit records, newest last. A missing file yields an
// empty slice. Unparseable lines are skipped.
func (l *Log) Recent(limit int) ([]Record, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var r Record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}
	return records, nil
}
