package sheetsync

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
	"github.com/xuri/excelize/v2"
)

// Source is a decoded upload. It can produce several datasets, for example
// when the operator picks another sheet after automatic selection.
type Source struct {
	Workbook  *models.Workbook
	SizeBytes int64
}

// Open decodes spreadsheet content.
func Open(name string, data []byte) (*Source, error) {
	wb, err := parser.DecodeWorkbook(name, data)
	if err != nil {
		return nil, err
	}
	return &Source{Workbook: wb, SizeBytes: int64(len(data))}, nil
}

// OpenFile reads and decodes a spreadsheet from disk.
func OpenFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return Open(filepath.Base(path), data)
}

// Load reads a spreadsheet from disk and builds its dataset.
func Load(path string, opts Options) (*models.Dataset, error) {
	src, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return src.Dataset(opts)
}

// Build decodes content and builds its dataset.
func Build(name string, data []byte, opts Options) (*models.Dataset, error) {
	src, err := Open(name, data)
	if err != nil {
		return nil, err
	}
	return src.Dataset(opts)
}

// WithSheet builds a new dataset from the named sheet.
func (s *Source) WithSheet(sheet string, opts Options) (*models.Dataset, error) {
	opts.Sheet = sheet
	return s.Dataset(opts)
}

// Dataset selects a sheet, maps its columns and builds the records.
// Validation findings are attached as warnings and never fail the build.
func (s *Source) Dataset(opts Options) (*models.Dataset, error) {
	wb := s.Workbook

	var sel parser.Selection
	if opts.Sheet != "" {
		var err error
		sel, err = parser.SelectNamedSheet(wb, opts.Sheet, opts.Vocabulary)
		if err != nil {
			return nil, parser.NewDecodeError(wb.BookName, "", fmt.Errorf("%w: %q", err, opts.Sheet))
		}
	} else {
		sel = parser.SelectSheet(wb, opts.Vocabulary)
	}

	ds := &models.Dataset{
		SourceName:      wb.BookName,
		SizeBytes:       s.SizeBytes,
		ProcessedSheet:  sel.Sheet,
		AvailableSheets: append([]string(nil), wb.SheetNames...),
		Selection:       sel.Rule.String(),
		Mapping:         sel.Mapping,
		Records:         []models.Record{},
	}

	var duplicates int
	if sheet, ok := wb.Sheet(sel.Sheet); ok {
		ds.Records, ds.InvalidRows, duplicates = buildRecords(sheet, sel.Mapping, opts.ShouldIncludeRaw())
	}
	ds.Warnings = validate(ds, duplicates)

	logrus.WithFields(logrus.Fields{
		"source":   ds.SourceName,
		"sheet":    ds.ProcessedSheet,
		"rule":     ds.Selection,
		"records":  len(ds.Records),
		"invalid":  ds.InvalidRows,
		"warnings": len(ds.Warnings),
	}).Debug("dataset built")
	return ds, nil
}

// buildRecords maps each non-empty data row to a record. Rows whose id is
// empty after normalization are counted as invalid and dropped.
func buildRecords(sheet *models.Sheet, m models.ColumnMapping, includeRaw bool) (records []models.Record, invalid, duplicates int) {
	header := rawHeaders(sheet.Header())
	seen := make(map[string]bool)
	records = []models.Record{}

	for i, row := range sheet.DataRows() {
		if parser.IsEmptyRow(row) {
			continue
		}
		rec := models.Record{
			ID:    parser.NormalizeKey(cellAt(row, m.ID)),
			AttrA: strings.TrimSpace(cellAt(row, m.AttrA)),
			AttrB: strings.TrimSpace(cellAt(row, m.AttrB)),
			Row:   i + 2,
		}
		if rec.ID == "" {
			invalid++
			continue
		}
		if seen[rec.ID] {
			duplicates++
		}
		seen[rec.ID] = true

		if includeRaw {
			rec.Raw = make(map[string]string, len(row))
			for c, v := range row {
				rec.Raw[headerName(header, c)] = v
			}
		}
		records = append(records, rec)
	}
	return records, invalid, duplicates
}

func rawHeaders(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = parser.NormalizeHeader(h)
	}
	return out
}

// headerName returns the normalized header of column c, or its letter when
// the header cell is blank.
func headerName(header []string, c int) string {
	if c < len(header) && header[c] != "" {
		return header[c]
	}
	name, _ := excelize.ColumnNumberToName(c + 1)
	return name
}

func cellAt(row []string, ref *models.ColumnRef) string {
	if ref == nil || ref.Index >= len(row) {
		return ""
	}
	return row[ref.Index]
}

func validate(ds *models.Dataset, duplicates int) []models.Warning {
	var warnings []models.Warning
	add := func(code models.WarningCode, format string, args ...interface{}) {
		warnings = append(warnings, models.Warning{Code: code, Message: fmt.Sprintf(format, args...)})
	}

	if ds.Mapping.ID == nil {
		add(models.WarnMissingID, "no identifier column found in sheet %q", ds.ProcessedSheet)
	}
	if ds.Mapping.AttrA == nil {
		add(models.WarnMissingAttrA, "no polygon column found in sheet %q", ds.ProcessedSheet)
	}
	if ds.Mapping.AttrB == nil {
		add(models.WarnMissingAttrB, "no cell column found in sheet %q", ds.ProcessedSheet)
	}
	if len(ds.Records) == 0 {
		add(models.WarnNoRecords, "no records with an identifier in sheet %q", ds.ProcessedSheet)
	} else if ds.InvalidRows > 0 {
		add(models.WarnInvalidRows, "%d of %d rows have no identifier and were skipped",
			ds.InvalidRows, ds.InvalidRows+len(ds.Records))
	}
	if duplicates > 0 {
		add(models.WarnDuplicateIDs, "%d rows repeat an identifier; the last occurrence wins", duplicates)
	}
	return warnings
}
