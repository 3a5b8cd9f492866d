package integration

import (
	"context"
	"strings"

	"github.com/myorder/backend/internal/domain/shared"
	"github.com/myorder/backend/internal/infrastructure/persistence"
)

// SQLExecutor runs raw statements against the primary database
type SQLExecutor interface {
	ListTables(ctx context.Context) ([]string, error)
	TableSchema(ctx context.Context, table string) ([]persistence.ColumnInfo, error)
	Query(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error)
	Update(ctx context.Context, query string, args ...interface{}) (int64, error)
}

// DatabaseService exposes the raw SQL passthrough. Read and write statements
// go through separate entry points so the HTTP layer can gate them
// independently.
type DatabaseService struct {
	executor SQLExecutor
}

// NewDatabaseService creates a new DatabaseService
func NewDatabaseService(executor SQLExecutor) *DatabaseService {
	return &DatabaseService{executor: executor}
}

// ListTables returns the user table names in the primary database
func (s *DatabaseService) ListTables(ctx context.Context) ([]string, error) {
	return s.executor.ListTables(ctx)
}

// TableSchema returns the column definitions of one table
func (s *DatabaseService) TableSchema(ctx context.Context, table string) ([]persistence.ColumnInfo, error) {
	return s.executor.TableSchema(ctx, table)
}

// Query runs a read-only statement and returns its rows
func (s *DatabaseService) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	if !isReadOnly(req.SQL) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Only SELECT statements are allowed here")
	}

	rows, err := s.executor.Query(ctx, req.SQL, req.Args...)
	if err != nil {
		return nil, err
	}
	return &QueryResult{Rows: rows, RowCount: len(rows)}, nil
}

// Execute runs a mutating statement and returns the affected row count
func (s *DatabaseService) Execute(ctx context.Context, req ExecRequest) (*ExecResult, error) {
	if isReadOnly(req.SQL) {
		return nil, shared.NewDomainError("INVALID_INPUT", "SELECT statements must use the query endpoint")
	}

	affected, err := s.executor.Update(ctx, req.SQL, req.Args...)
	if err != nil {
		return nil, err
	}
	return &ExecResult{RowsAffected: affected}, nil
}

func isReadOnly(sql string) bool {
	head := strings.ToUpper(strings.TrimSpace(sql))
	return strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "WITH")
}
