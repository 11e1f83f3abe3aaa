// Copyright (c) 2025 askdb
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the natural-language-to-SQL
// assistant service. It defines the API contract the CLI depends on together
// with the raw payload shapes, and an HTTP implementation over the service's
// REST endpoints.
package backend

import "context"

// API defines assistant service operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide mocks for tests.
type API interface {
	// GetVersion probes the service and returns its version when available.
	GetVersion(ctx context.Context) (string, error)
	// Ask submits a natural-language question and returns the raw answer
	// payload. The answer is fed unmodified to the session resolver.
	Ask(ctx context.Context, question string, showReasoning bool) (*Answer, error)
	// ListDatabases returns available databases and the current selection.
	ListDatabases(ctx context.Context) (*DatabaseInfo, error)
	// SelectDatabase switches the service to the named database and returns
	// its confirmation message.
	SelectDatabase(ctx context.Context, name string) (string, error)
	// UploadDatabase uploads a SQLite .db file and returns the confirmation
	// message. The service selects the uploaded database automatically.
	UploadDatabase(ctx context.Context, path string) (string, error)
	// Schema returns the schema view: all table names when table is empty,
	// column and foreign key detail for one table otherwise.
	Schema(ctx context.Context, table string) (*SchemaView, error)
	// ExecuteSQL runs a raw query on the service's attached database.
	ExecuteSQL(ctx context.Context, sql string) (*ExecResult, error)
}

// DatabaseInfo lists databases known to the service.
type DatabaseInfo struct {
	Databases []string `json:"databases"`
	Current   string   `json:"current"`
}

// SchemaView is the /database/view payload. Either Tables (listing mode) or
// TableName/Columns/ForeignKeys (detail mode) is populated.
type SchemaView struct {
	Type        string       `json:"type,omitempty"`
	Tables      []string     `json:"tables,omitempty"`
	Count       int          `json:"count,omitempty"`
	TableName   string       `json:"table_name,omitempty"`
	Columns     []ColumnInfo `json:"columns,omitempty"`
	ForeignKeys []ForeignKey `json:"foreign_keys,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
}

// ForeignKey describes one foreign key reference.
type ForeignKey struct {
	Column           string `json:"column"`
	ReferencesTable  string `json:"references_table"`
	ReferencesColumn string `json:"references_column"`
}

// ExecResult is the /execute-sql payload.
type ExecResult struct {
	Success       bool             `json:"success"`
	SQL           string           `json:"sql,omitempty"`
	Columns       []string         `json:"columns,omitempty"`
	Results       []map[string]any `json:"results,omitempty"`
	RowCount      int              `json:"row_count,omitempty"`
	ExecutionTime float64          `json:"execution_time,omitempty"`
	Error         string           `json:"error,omitempty"`
	ErrorType     string           `json:"error_type,omitempty"`
}
