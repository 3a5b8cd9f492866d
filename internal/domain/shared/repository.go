package shared

import "strings"

// Filter carries the common listing options every repository understands.
// Zero values mean "no constraint": Page/PageSize of 0 disables pagination
// and an empty OrderBy lets the repository pick its natural order.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// Offset converts Page/PageSize into a row offset.
func (f Filter) Offset() int {
	if f.Page <= 0 || f.PageSize <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Paginated reports whether the filter requests pagination.
func (f Filter) Paginated() bool {
	return f.Page > 0 && f.PageSize > 0
}

// OrderClause builds a SQL ORDER BY expression from OrderBy/OrderDir,
// falling back to the given clause when no ordering was requested. OrderBy
// must match one of the allowed column names; anything else falls back, so
// caller-supplied values never reach the query verbatim. The direction is
// normalized so only ASC or DESC ever follows the column.
func (f Filter) OrderClause(fallback string, allowed ...string) string {
	column := ""
	for _, name := range allowed {
		if f.OrderBy == name {
			column = name
			break
		}
	}
	if column == "" {
		return fallback
	}
	dir := "ASC"
	if strings.EqualFold(f.OrderDir, "desc") {
		dir = "DESC"
	}
	return column + " " + dir
}
