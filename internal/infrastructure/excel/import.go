package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/myorder/backend/internal/domain/shared"
	"github.com/xuri/excelize/v2"
)

// OrderRow is one parsed data row of an order import workbook
type OrderRow struct {
	RowNumber    int
	CustomerCode string
	ItemCode     string
	Quantity     int
	Notes        string
}

// ParseOrderRows reads an order import workbook. Data starts at row 2; the
// first row is treated as a header. Columns are customer code, item code,
// quantity and optional notes. Blank rows are skipped; any malformed row
// fails the whole parse.
func ParseOrderRows(r io.Reader) ([]OrderRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "File is not a valid Excel workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	parsed := make([]OrderRow, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rowNumber := i + 1

		if isBlankRow(row) {
			continue
		}
		if len(row) < 3 {
			return nil, shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("Row %d: customer code, item code and quantity are required", rowNumber))
		}

		customerCode := strings.TrimSpace(row[0])
		itemCode := strings.TrimSpace(row[1])
		if customerCode == "" || itemCode == "" {
			return nil, shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("Row %d: customer code and item code cannot be empty", rowNumber))
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil || quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT",
				fmt.Sprintf("Row %d: quantity must be a positive integer", rowNumber))
		}

		notes := ""
		if len(row) > 3 {
			notes = strings.TrimSpace(row[3])
		}

		parsed = append(parsed, OrderRow{
			RowNumber:    rowNumber,
			CustomerCode: customerCode,
			ItemCode:     itemCode,
			Quantity:     quantity,
			Notes:        notes,
		})
	}

	return parsed, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
