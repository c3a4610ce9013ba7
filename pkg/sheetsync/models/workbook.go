// Package models defines data structures for workbook reconciliation.
package models

// Workbook represents a decoded spreadsheet with its sheets in workbook order.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists sheet names in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its cell grid.
	Sheets map[string]*Sheet `json:"sheets"`
}

// NewWorkbook creates an empty workbook.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		Sheets:   make(map[string]*Sheet),
	}
}

// AddSheet appends a sheet, keeping workbook order.
func (w *Workbook) AddSheet(s *Sheet) {
	if _, ok := w.Sheets[s.Name]; !ok {
		w.SheetNames = append(w.SheetNames, s.Name)
	}
	w.Sheets[s.Name] = s
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := w.Sheets[name]
	return s, ok
}
