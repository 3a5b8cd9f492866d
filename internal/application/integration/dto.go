package integration

import (
	"time"
)

// ImportOrdersResult summarizes a completed spreadsheet import. One order is
// created per distinct customer code in the file.
type ImportOrdersResult struct {
	OrdersCreated int      `json:"orders_created"`
	RowsImported  int      `json:"rows_imported"`
	OrderNumbers  []string `json:"order_numbers"`
}

// QueryRequest carries a read-only SQL statement with positional arguments
type QueryRequest struct {
	SQL  string        `json:"sql" binding:"required"`
	Args []interface{} `json:"args,omitempty"`
}

// QueryResult holds the rows returned by a read-only statement
type QueryResult struct {
	Rows     []map[string]interface{} `json:"rows"`
	RowCount int                      `json:"row_count"`
}

// ExecRequest carries a mutating SQL statement with positional arguments
type ExecRequest struct {
	SQL  string        `json:"sql" binding:"required"`
	Args []interface{} `json:"args,omitempty"`
}

// ExecResult reports the row count affected by a mutating statement
type ExecResult struct {
	RowsAffected int64 `json:"rows_affected"`
}

// ExportOrdersRequest optionally narrows an order export to a date range.
// Bounds are inclusive and apply to the order date.
type ExportOrdersRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
