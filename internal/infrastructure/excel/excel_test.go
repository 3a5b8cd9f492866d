package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseOrderRows(t *testing.T) {
	t.Run("parses data rows starting at row 2", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"顧客コード", "商品コード", "数量", "備考"},
			{"CUST001", "ITEM001", 3, "urgent"},
			{"CUST002", "ITEM002", 10},
		})

		rows, err := ParseOrderRows(buf)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].RowNumber)
		assert.Equal(t, "CUST001", rows[0].CustomerCode)
		assert.Equal(t, "ITEM001", rows[0].ItemCode)
		assert.Equal(t, 3, rows[0].Quantity)
		assert.Equal(t, "urgent", rows[0].Notes)
		assert.Equal(t, "", rows[1].Notes)
	})

	t.Run("skips blank rows", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"顧客コード", "商品コード", "数量"},
			{"CUST001", "ITEM001", 1},
			{"", "", ""},
			{"CUST002", "ITEM002", 2},
		})

		rows, err := ParseOrderRows(buf)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("rejects non-numeric quantity", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"顧客コード", "商品コード", "数量"},
			{"CUST001", "ITEM001", "three"},
		})

		rows, err := ParseOrderRows(buf)

		assert.Error(t, err)
		assert.Nil(t, rows)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		buf := buildWorkbook(t, [][]interface{}{
			{"顧客コード", "商品コード", "数量"},
			{"CUST001", "ITEM001", 0},
		})

		_, err := ParseOrderRows(buf)

		assert.Error(t, err)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := ParseOrderRows(bytes.NewBufferString("not an excel file"))
		assert.Error(t, err)
	})
}

func TestWriteOrderTemplate(t *testing.T) {
	t.Run("writes a styled header sheet", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteOrderTemplate(&buf))

		f, err := excelize.OpenReader(&buf)
		require.NoError(t, err)
		defer f.Close()

		assert.Contains(t, f.GetSheetList(), "注文データ")

		rows, err := f.GetRows("注文データ")
		require.NoError(t, err)
		require.NotEmpty(t, rows)
		assert.Equal(t, []string{"顧客コード", "商品コード", "数量", "備考"}, rows[0])

		width, err := f.GetColWidth("注文データ", "A")
		require.NoError(t, err)
		assert.InDelta(t, 15, width, 0.5)
	})
}
