package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/xuri/excelize/v2"
)

// Format identifies a spreadsheet container.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat picks a decoder from the file extension, then from the content.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv", ".tsv":
		return FormatCSV
	}
	switch {
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	}
	return FormatXLSX
}

// DecodeWorkbook decodes spreadsheet content into a workbook.
// It fails with a *DecodeError when the content is empty, cannot be parsed
// or holds no sheets.
func DecodeWorkbook(name string, data []byte) (*models.Workbook, error) {
	bookName := filepath.Base(name)
	format := DetectFormat(name, data)
	if len(data) == 0 {
		return nil, NewDecodeError(bookName, format, ErrEmptyContent)
	}

	var (
		wb  *models.Workbook
		err error
	)
	switch format {
	case FormatXLS:
		wb, err = decodeXLS(bookName, data)
	case FormatCSV:
		wb, err = decodeCSV(bookName, data)
	default:
		wb, err = decodeXLSX(bookName, data)
	}
	if err != nil {
		return nil, NewDecodeError(bookName, format, err)
	}
	if len(wb.SheetNames) == 0 {
		return nil, NewDecodeError(bookName, format, ErrNoSheets)
	}

	logrus.WithFields(logrus.Fields{
		"source": bookName,
		"format": format,
		"sheets": len(wb.SheetNames),
	}).Debug("workbook decoded")
	return wb, nil
}

func decodeXLSX(bookName string, data []byte) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	wb := models.NewWorkbook(bookName)
	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			// Keep the sheet visible for selection even when its cells are unreadable.
			logrus.WithError(err).WithField("sheet", sheetName).Warn("failed to read sheet rows")
			rows = nil
		}
		wb.AddSheet(&models.Sheet{Name: sheetName, Rows: rows})
	}
	return wb, nil
}
