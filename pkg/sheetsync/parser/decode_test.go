package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func xlsxBytes(t *testing.T, build func(f *excelize.File)) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeWorkbookXLSX(t *testing.T) {
	data := xlsxBytes(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "placeholder")
		f.NewSheet("Sites")
		f.SetCellValue("Sites", "A1", "site_id")
		f.SetCellStr("Sites", "A2", "000517")
	})

	wb, err := DecodeWorkbook("/tmp/upload/export.xlsx", data)
	if err != nil {
		t.Fatalf("DecodeWorkbook failed: %v", err)
	}
	if wb.BookName != "export.xlsx" {
		t.Errorf("Expected book name 'export.xlsx', got %q", wb.BookName)
	}
	if len(wb.SheetNames) != 2 || wb.SheetNames[0] != "Sheet1" || wb.SheetNames[1] != "Sites" {
		t.Fatalf("Unexpected sheet order: %v", wb.SheetNames)
	}
	s, ok := wb.Sheet("Sites")
	if !ok {
		t.Fatal("Expected sheet 'Sites'")
	}
	if s.Rows[1][0] != "000517" {
		t.Errorf("Expected '000517', got %q", s.Rows[1][0])
	}
}

func TestDecodeWorkbookCSV(t *testing.T) {
	data := []byte("\xEF\xBB\xBFsite_id;polygon;cell\n0517;P1;C1\n\n")
	wb, err := DecodeWorkbook("sites.csv", data)
	if err != nil {
		t.Fatalf("DecodeWorkbook failed: %v", err)
	}
	if len(wb.SheetNames) != 1 || wb.SheetNames[0] != "sites" {
		t.Fatalf("Unexpected sheets: %v", wb.SheetNames)
	}
	rows := wb.Sheets["sites"].Rows
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "site_id" || rows[1][0] != "0517" || rows[1][2] != "C1" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestDecodeWorkbookCSVWindows1252(t *testing.T) {
	data := []byte("id,pol\xedgono\n1,A\n")
	wb, err := DecodeWorkbook("legacy.csv", data)
	if err != nil {
		t.Fatalf("DecodeWorkbook failed: %v", err)
	}
	if got := wb.Sheets["legacy"].Rows[0][1]; got != "polígono" {
		t.Errorf("Expected 'polígono', got %q", got)
	}
}

func TestDecodeWorkbookErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     []byte
		sentinel error
	}{
		{"empty content", "a.xlsx", nil, ErrEmptyContent},
		{"corrupt xlsx", "a.xlsx", []byte("not a workbook"), nil},
		{"corrupt xls", "a.xls", bytes.Repeat([]byte{0x01}, 64), nil},
		{"empty csv", "a.csv", []byte("\n\n"), ErrNoSheets},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWorkbook(tt.file, tt.data)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Expected *DecodeError, got %T", err)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected %v, got %v", tt.sentinel, err)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"a.XLSX", nil, FormatXLSX},
		{"a.xls", nil, FormatXLS},
		{"a.tsv", nil, FormatCSV},
		{"upload", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}, FormatXLS},
		{"upload", []byte("PK\x03\x04rest"), FormatXLSX},
	}

	for _, tt := range tests {
		if result := DetectFormat(tt.name, tt.data); result != tt.expected {
			t.Errorf("DetectFormat(%q) = %q, expected %q", tt.name, result, tt.expected)
		}
	}
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
	}{
		{"a,b,c\n1;2", ','},
		{"a;b;c\n", ';'},
		{"a\tb\tc", '\t'},
		{"single", ','},
	}

	for _, tt := range tests {
		if result := sniffDelimiter(tt.input); result != tt.expected {
			t.Errorf("sniffDelimiter(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
