package models

// ColumnRef points at one header cell of the processed sheet.
type ColumnRef struct {
	// Index is the 0-based column index.
	Index int `json:"index"`
	// Header is the normalized header text.
	Header string `json:"header"`
}

// ColumnMapping maps the logical fields to sheet columns.
// A nil field means no header matched.
type ColumnMapping struct {
	ID    *ColumnRef `json:"id"`
	AttrA *ColumnRef `json:"attribute_a"`
	AttrB *ColumnRef `json:"attribute_b"`
}

// Mapped returns how many of the three fields resolved to a column.
func (m ColumnMapping) Mapped() int {
	n := 0
	for _, ref := range []*ColumnRef{m.ID, m.AttrA, m.AttrB} {
		if ref != nil {
			n++
		}
	}
	return n
}

// Record is one logical entity of a dataset.
type Record struct {
	// ID is the normalized identifier used as matching key.
	ID string `json:"id"`
	// AttrA is the first comparable attribute (polygon code).
	AttrA string `json:"attribute_a"`
	// AttrB is the second comparable attribute (cell code).
	AttrB string `json:"attribute_b"`
	// Row is the 1-based row number in the source sheet.
	Row int `json:"row"`
	// Raw maps normalized header to raw cell text.
	Raw map[string]string `json:"raw_fields,omitempty"`
}

// WarningCode identifies a validation warning.
type WarningCode string

const (
	WarnMissingID    WarningCode = "missing_id_column"
	WarnMissingAttrA WarningCode = "missing_attribute_a_column"
	WarnMissingAttrB WarningCode = "missing_attribute_b_column"
	WarnNoRecords    WarningCode = "no_valid_records"
	WarnInvalidRows  WarningCode = "invalid_rows"
	WarnDuplicateIDs WarningCode = "duplicate_ids"
)

// Warning is a non-fatal validation finding attached to a dataset.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

// Dataset is one processed upload.
type Dataset struct {
	// SourceName is the original file name.
	SourceName string `json:"source_name"`
	// SizeBytes is the size of the uploaded content.
	SizeBytes int64 `json:"size_bytes"`
	// Records holds the kept records in source row order.
	Records []Record `json:"records"`
	// ProcessedSheet is the sheet the records were read from.
	ProcessedSheet string `json:"processed_sheet"`
	// AvailableSheets lists every sheet of the source workbook.
	AvailableSheets []string `json:"available_sheets"`
	// Selection names the rule that chose ProcessedSheet.
	Selection string `json:"selection"`
	// Mapping is the resolved column mapping.
	Mapping ColumnMapping `json:"mapping"`
	// InvalidRows counts non-empty rows dropped for an empty id.
	InvalidRows int `json:"invalid_rows"`
	// Warnings holds advisory validation findings.
	Warnings []Warning `json:"warnings,omitempty"`
}

// RecordCount returns the number of kept records.
func (d *Dataset) RecordCount() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// HasWarning reports whether a warning with the given code is attached.
func (d *Dataset) HasWarning(code WarningCode) bool {
	for _, w := range d.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// KeyRefs returns the record ids tagged with the dataset's source name.
func (d *Dataset) KeyRefs() []KeyRef {
	if d == nil {
		return nil
	}
	refs := make([]KeyRef, 0, len(d.Records))
	for _, r := range d.Records {
		refs = append(refs, KeyRef{Key: r.ID, Source: d.SourceName})
	}
	return refs
}
