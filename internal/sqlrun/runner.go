// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlrun executes queries directly against a user-supplied PostgreSQL
// database over a pgx connection pool. It exists for `askdb exec --local`:
// running the assistant's generated SQL against your own database instead of
// the one attached to the service. Only read queries are supported; results
// come back in the column-name-to-value shape the renderer consumes.
package sqlrun

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"askdb/cli/internal/logging"
)

// Runner executes read-only SQL using a connection pool.
type Runner struct {
	pool *pgxpool.Pool
}

// Connect opens a pool for the given normalized DSN.
func Connect(ctx context.Context, dsn string) (*Runner, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Runner{pool: pool}, nil
}

// Close releases the pool.
func (r *Runner) Close() {
	r.pool.Close()
}

// writePrefixes are statement openers Query refuses to run.
var writePrefixes = []string{
	"insert", "update", "delete", "drop", "alter", "create", "truncate", "grant", "revoke",
}

// Query runs a read query and returns column names in result order plus rows
// keyed by column name. Write statements are rejected before reaching the
// database.
func (r *Runner) Query(ctx context.Context, sql string) ([]string, []map[string]any, error) {
	trimmed := strings.ToLower(strings.TrimSpace(sql))
	for _, p := range writePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return nil, nil, fmt.Errorf("blocked operation %q: only read-only queries are allowed", p)
		}
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = string(fd.Name)
	}

	var out []map[string]any
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return cols, out, err
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			row[col] = NormalizeValue(vals[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return cols, out, err
	}

	logging.Debug().Int("rows", len(out)).Int("columns", len(cols)).Msg("local query")
	return cols, out, nil
}

// NormalizeValue converts pgx driver values into displayable ones. UUIDs
// arrive as 16-byte arrays and would otherwise print as raw bytes; other byte
// slices are shown as hex.
func NormalizeValue(v any) any {
	switch b := v.(type) {
	case [16]byte:
		return formatUUID(b[:])
	case []byte:
		if len(b) == 16 {
			return formatUUID(b)
		}
		return fmt.Sprintf("\\x%x", b)
	default:
		return v
	}
}

func formatUUID(b []byte) string {
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
}
