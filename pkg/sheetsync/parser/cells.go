package parser

import (
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads a sheet as a grid of cell text.
// Cells keep their formatted display text; nothing is re-parsed as a number,
// so "031517" stays "031517".
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return result, err
		}
		result = append(result, cols)
	}
	return result, rows.Error()
}
