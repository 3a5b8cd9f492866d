package persistence

import (
	"context"
	"regexp"

	"github.com/myorder/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ColumnInfo describes one column of a table
type ColumnInfo struct {
	Name       string `json:"name"`
	DataType   string `json:"data_type"`
	IsNullable bool   `json:"is_nullable"`
	Default    string `json:"default,omitempty"`
}

// RawSQLExecutor runs operator-supplied SQL against the primary database.
// Queries go through the same GORM connection pool as the repositories.
type RawSQLExecutor struct {
	db *gorm.DB
}

// NewRawSQLExecutor creates a new RawSQLExecutor
func NewRawSQLExecutor(db *gorm.DB) *RawSQLExecutor {
	return &RawSQLExecutor{db: db}
}

// ListTables returns the names of all tables in the public schema
func (e *RawSQLExecutor) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	if err := e.db.WithContext(ctx).
		Raw(`SELECT table_name FROM information_schema.tables
		     WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		     ORDER BY table_name`).
		Scan(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// TableSchema returns column metadata for the named table. Returns
// shared.ErrNotFound when the table does not exist.
func (e *RawSQLExecutor) TableSchema(ctx context.Context, table string) ([]ColumnInfo, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid table name")
	}

	rows := []struct {
		ColumnName    string
		DataType      string
		IsNullable    string
		ColumnDefault *string
	}{}
	if err := e.db.WithContext(ctx).
		Raw(`SELECT column_name, data_type, is_nullable, column_default
		     FROM information_schema.columns
		     WHERE table_schema = 'public' AND table_name = ?
		     ORDER BY ordinal_position`, table).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, shared.ErrNotFound
	}

	columns := make([]ColumnInfo, len(rows))
	for i, row := range rows {
		columns[i] = ColumnInfo{
			Name:       row.ColumnName,
			DataType:   row.DataType,
			IsNullable: row.IsNullable == "YES",
		}
		if row.ColumnDefault != nil {
			columns[i].Default = *row.ColumnDefault
		}
	}
	return columns, nil
}

// Query runs a read statement and returns the result rows
func (e *RawSQLExecutor) Query(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {
	if query == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Query cannot be empty")
	}

	var results []map[string]interface{}
	if err := e.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error; err != nil {
		return nil, err
	}
	if results == nil {
		results = []map[string]interface{}{}
	}
	return results, nil
}

// Update runs a write statement and returns the number of affected rows
func (e *RawSQLExecutor) Update(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if query == "" {
		return 0, shared.NewDomainError("INVALID_INPUT", "Query cannot be empty")
	}

	result := e.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
