package models

// Sheet represents a single sheet as a row-major grid of cell text.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Rows holds cell text; row 0 holds the header candidates.
	Rows [][]string `json:"rows,omitempty"`
}

// Header returns the first row, or nil for an empty sheet.
func (s *Sheet) Header() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// DataRows returns every row after the header.
func (s *Sheet) DataRows() [][]string {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}
