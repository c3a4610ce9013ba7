package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Site ID")
	f.SetCellValue(sheetName, "B1", "Polygon")
	f.SetCellStr(sheetName, "A2", "031517")
	f.SetCellValue(sheetName, "B2", 200)
	f.SetCellValue(sheetName, "A4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Site ID" {
		t.Errorf("Expected 'Site ID', got %q", rows[0][0])
	}
	// Text cells keep their leading zero
	if rows[1][0] != "031517" {
		t.Errorf("Expected '031517', got %q", rows[1][0])
	}
	// Numbers come back as display text
	if rows[1][1] != "200" {
		t.Errorf("Expected '200', got %q", rows[1][1])
	}
	if !IsEmptyRow(rows[2]) {
		t.Errorf("Expected row 3 to be empty, got %v", rows[2])
	}
}

func TestExtractRowsKeepsNumberFormatZeros(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: ptr("000000")})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "id")
	f.SetCellValue("Sheet1", "A2", 31517)
	f.SetCellStyle("Sheet1", "A2", "A2", style)

	rows, err := ExtractRows(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if rows[1][0] != "031517" {
		t.Errorf("Expected formatted '031517', got %q", rows[1][0])
	}
}

func ptr[T any](v T) *T {
	return &v
}
