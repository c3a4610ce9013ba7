package parser

import (
	"encoding/csv"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// decodeCSV reads a delimited text export as a single sheet named after
// the file stem. Content without rows yields a workbook with no sheets.
func decodeCSV(bookName string, data []byte) (*models.Workbook, error) {
	text := DecodeText(data)

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	wb := models.NewWorkbook(bookName)
	rows = trimTrailingEmptyRows(rows)
	if len(rows) == 0 {
		return wb, nil
	}
	name := strings.TrimSuffix(bookName, filepath.Ext(bookName))
	if name == "" {
		name = bookName
	}
	wb.AddSheet(&models.Sheet{Name: name, Rows: rows})
	return wb, nil
}

// sniffDelimiter picks the most frequent of comma, semicolon and tab on the
// first line. Comma wins ties.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}
	best, bestCount := ',', strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
