package parser

import (
	"bytes"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// decodeXLS reads a legacy BIFF8 workbook.
func decodeXLS(bookName string, data []byte) (wb *models.Workbook, err error) {
	// The BIFF reader panics on some truncated streams.
	defer func() {
		if r := recover(); r != nil {
			wb, err = nil, fmt.Errorf("corrupt xls stream: %v", r)
		}
	}()

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	format := func(c xlsCell) (text string) {
		defer func() {
			if recover() != nil {
				text = ""
			}
		}()
		cell, ok := c.(structure.CellData)
		if !ok {
			return ""
		}
		xf := workbook.GetXFbyIndex(cell.GetXFIndex())
		f := workbook.GetFormatByIndex(xf.GetFormatIndex())
		return f.GetFormatString(cell)
	}

	wb = models.NewWorkbook(bookName)
	for si := 0; si < workbook.GetNumberSheets(); si++ {
		sheet, err := workbook.GetSheet(si)
		if err != nil {
			continue
		}

		var rows [][]string
		for r := 0; r <= sheet.GetNumberRows(); r++ {
			row, err := sheet.GetRow(r)
			if err != nil {
				// Missing rows still occupy a position in the grid.
				rows = append(rows, nil)
				continue
			}
			cols := row.GetCols()
			cells := make([]string, len(cols))
			for c, cell := range cols {
				cells[c] = toUTF8(xlsCellText(cell, format))
			}
			rows = append(rows, cells)
		}
		wb.AddSheet(&models.Sheet{Name: toUTF8(sheet.GetName()), Rows: trimTrailingEmptyRows(rows)})
	}
	return wb, nil
}

// numericXLSTypes are the BIFF cell records that store numbers.
var numericXLSTypes = map[string]bool{
	"*record.Number": true,
	"*record.Rk":     true,
}

type xlsCell interface {
	GetString() string
	GetType() string
	GetXFIndex() int
}

// xlsCellText renders numeric cells through their number format, so a code
// stored as 12 with format 0000 reads "0012". Text cells are returned as
// stored. An empty formatted value falls back to the raw number.
func xlsCellText(cell xlsCell, format func(xlsCell) string) string {
	if !numericXLSTypes[cell.GetType()] {
		return cell.GetString()
	}
	if text := format(cell); text != "" {
		return text
	}
	return cell.GetString()
}

// trimTrailingEmptyRows drops blank rows at the end of a grid.
func trimTrailingEmptyRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && IsEmptyRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}
