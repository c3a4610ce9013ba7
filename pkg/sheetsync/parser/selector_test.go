package parser

import (
	"testing"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

func workbook(sheets ...*models.Sheet) *models.Workbook {
	wb := models.NewWorkbook("test.xlsx")
	for _, s := range sheets {
		wb.AddSheet(s)
	}
	return wb
}

func sheet(name string, rows ...[]string) *models.Sheet {
	return &models.Sheet{Name: name, Rows: rows}
}

func TestSelectSheet(t *testing.T) {
	header := []string{"Site ID", "Polygon", "Cell"}
	data := []string{"517", "P1", "C1"}

	tests := []struct {
		name     string
		wb       *models.Workbook
		expected string
		rule     SelectionRule
	}{
		{
			name: "named sheet with keywords and data",
			wb: workbook(
				sheet("Sheet1", header, data),
				sheet("Inventory", header, data),
			),
			expected: "Inventory",
			rule:     RuleNamedWithData,
		},
		{
			name: "named keyword sheet without data wins on keywords",
			wb: workbook(
				sheet("Cover"),
				sheet("Inventory", header),
				sheet("Sheet2", header, data),
			),
			expected: "Inventory",
			rule:     RuleKeywords,
		},
		{
			name: "keywords on generic sheet",
			wb: workbook(
				sheet("1", []string{"notes"}),
				sheet("Sheet2", header, data),
			),
			expected: "Sheet2",
			rule:     RuleKeywords,
		},
		{
			name: "first non-generic name",
			wb: workbook(
				sheet("Sheet1", []string{"a", "b"}),
				sheet("Export", []string{"a", "b"}),
			),
			expected: "Export",
			rule:     RuleNonGenericName,
		},
		{
			name: "second sheet",
			wb: workbook(
				sheet("Sheet1", []string{"a"}),
				sheet("Sheet2", []string{"b"}),
				sheet("3", []string{"c"}),
			),
			expected: "Sheet2",
			rule:     RuleSecondSheet,
		},
		{
			name:     "first sheet",
			wb:       workbook(sheet("Hoja1", []string{"a"})),
			expected: "Hoja1",
			rule:     RuleFirstSheet,
		},
		{
			name: "data beyond probe rows does not count",
			wb: workbook(
				sheet("Inventory", header, nil, nil, nil, nil, nil, data),
				sheet("Sites", header, data),
			),
			expected: "Sites",
			rule:     RuleNamedWithData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectSheet(tt.wb, DefaultVocabulary())
			if sel.Sheet != tt.expected {
				t.Errorf("Expected sheet %q, got %q", tt.expected, sel.Sheet)
			}
			if sel.Rule != tt.rule {
				t.Errorf("Expected rule %v, got %v", tt.rule, sel.Rule)
			}
		})
	}
}

func TestSelectSheetEmptyWorkbook(t *testing.T) {
	sel := SelectSheet(models.NewWorkbook("empty.xlsx"), DefaultVocabulary())
	if sel.Sheet != "" || sel.Rule != RuleUnknown {
		t.Errorf("Expected zero selection, got %+v", sel)
	}
}

func TestSelectNamedSheet(t *testing.T) {
	wb := workbook(sheet("A", []string{"id", "cell"}), sheet("B"))

	sel, err := SelectNamedSheet(wb, "A", Vocabulary{})
	if err != nil {
		t.Fatalf("SelectNamedSheet failed: %v", err)
	}
	if sel.Rule != RuleOverride || sel.Mapping.ID == nil || sel.Mapping.AttrB == nil {
		t.Errorf("Unexpected selection: %+v", sel)
	}

	if _, err := SelectNamedSheet(wb, "missing", Vocabulary{}); err != ErrSheetNotFound {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestIsGenericSheetName(t *testing.T) {
	words := DefaultVocabulary().GenericSheetWords
	tests := []struct {
		name     string
		expected bool
	}{
		{"Sheet1", true},
		{"hoja 2", true},
		{"12", true},
		{" 3 ", true},
		{"Feuil1", true},
		{"Inventory", false},
		{"Q1 2024", false},
		{"", false},
	}

	for _, tt := range tests {
		if result := IsGenericSheetName(tt.name, words); result != tt.expected {
			t.Errorf("IsGenericSheetName(%q) = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}

func TestMapColumns(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		id     int
		attrA  int
		attrB  int
	}{
		{"plain", []string{"ID", "Polygon", "Cell"}, 0, 1, 2},
		{"substring", []string{"Cell_ID", "Polygon Code", "Cell Name"}, 0, 1, 2},
		{"exact beats substring", []string{"Polygon", "Cell ID", "Cell"}, 1, 0, 2},
		{"column is not reused", []string{"cell_id", "notes"}, 0, -1, -1},
		{"unmapped", []string{"name", "value"}, -1, -1, -1},
		{"blank headers skipped", []string{"", "  ", "code"}, 2, -1, -1},
	}

	index := func(ref *models.ColumnRef) int {
		if ref == nil {
			return -1
		}
		return ref.Index
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MapColumns(tt.header, DefaultVocabulary())
			if got := index(m.ID); got != tt.id {
				t.Errorf("id column = %d, expected %d", got, tt.id)
			}
			if got := index(m.AttrA); got != tt.attrA {
				t.Errorf("attributeA column = %d, expected %d", got, tt.attrA)
			}
			if got := index(m.AttrB); got != tt.attrB {
				t.Errorf("attributeB column = %d, expected %d", got, tt.attrB)
			}
		})
	}
}
