package excel

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	templateSheetName   = "注文データ"
	templateColumnWidth = 15
)

var templateHeaders = []string{"顧客コード", "商品コード", "数量", "備考"}

// WriteOrderTemplate writes an empty order import workbook. The header row
// is styled and the data columns are widened so the file can be filled in
// by hand.
func WriteOrderTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(templateSheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	for i, header := range templateHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(templateSheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(templateSheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(templateSheetName, "A", "D", templateColumnWidth); err != nil {
		return err
	}

	return f.Write(w)
}
