package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Sites"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sites", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	left := writeWorkbook(t, dir, "incoming.xlsx", [][]interface{}{
		{"Site ID", "Polygon", "Cell"},
		{"517", "P1", "C9"},
		{"100000", "P2", "C2"},
	})
	right := writeWorkbook(t, dir, "current.xlsx", [][]interface{}{
		{"Site ID", "Polygon", "Cell"},
		{"000517", "P1", "C1"},
		{"100000", "P2", "C2"},
	})
	out := filepath.Join(dir, "update.sql")
	validation := filepath.Join(dir, "validation.sql")
	message := filepath.Join(dir, "message.txt")

	err := run(t, "compare", left, right,
		"--flavor", "sqlite", "--no-timestamp",
		"-o", out, "--validation", validation, "--message", message)
	if err != nil {
		t.Fatalf("compare error = %v", err)
	}

	script := readFile(t, out)
	for _, w := range []string{"BEGIN;", "SET cell = 'C9'", "WHERE site_id = '000517'", "COMMIT;"} {
		if !strings.Contains(script, w) {
			t.Errorf("update script missing %q:\n%s", w, script)
		}
	}
	if strings.Contains(script, "100000") {
		t.Errorf("matching key should not be updated:\n%s", script)
	}

	if v := readFile(t, validation); !strings.Contains(v, "'000517' -- incoming.xlsx") {
		t.Errorf("validation script missing key:\n%s", v)
	}
	if m := readFile(t, message); !strings.Contains(m, "Matching: 1\n") {
		t.Errorf("message missing counts:\n%s", m)
	}
}

func TestCompareCommandRejectsMissingFile(t *testing.T) {
	dir := t.TempDir()
	right := writeWorkbook(t, dir, "current.xlsx", [][]interface{}{{"Site ID", "Polygon", "Cell"}})
	if err := run(t, "compare", filepath.Join(dir, "missing.xlsx"), right); err == nil {
		t.Error("compare with a missing file should fail")
	}
}

func TestConcatCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "circuit_A1.sql")
	b := filepath.Join(dir, "notes.doc")
	if err := os.WriteFile(a, []byte("UPDATE sites SET cell = 'x' WHERE site_id = '42';\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "combined.sql")
	validation := filepath.Join(dir, "validation.sql")
	message := filepath.Join(dir, "message.txt")

	err := run(t, "concat", a, b, "--no-timestamp", "-o", out, "--validation", validation, "--message", message)
	if err != nil {
		t.Fatalf("concat error = %v", err)
	}

	if c := readFile(t, out); !strings.Contains(c, "-- File 1/1: circuit_A1.sql") {
		t.Errorf("combined file missing banner:\n%s", c)
	}
	if v := readFile(t, validation); !strings.Contains(v, "'000042' -- A1") {
		t.Errorf("validation script missing key:\n%s", v)
	}
	if m := readFile(t, message); !strings.Contains(m, "Skipped:\n- notes.doc") {
		t.Errorf("message missing notice:\n%s", m)
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	sheet := writeWorkbook(t, dir, "sites.xlsx", [][]interface{}{
		{"Site ID", "Polygon", "Cell"},
		{"7", "P", "C"},
	})
	text := filepath.Join(dir, "ckt-B2.txt")
	if err := os.WriteFile(text, []byte("update sites set cell='y' where site_id = \"8\";"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "validation.sql")

	if err := run(t, "validate", sheet, text, "--no-timestamp", "-o", out); err != nil {
		t.Fatalf("validate error = %v", err)
	}
	v := readFile(t, out)
	for _, w := range []string{"'000007', -- sites.xlsx", "'000008' -- B2", "-- Sources: sites.xlsx, B2"} {
		if !strings.Contains(v, w) {
			t.Errorf("validation script missing %q:\n%s", w, v)
		}
	}
}

func TestValidateCommandNoKeys(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "empty.sql")
	if err := os.WriteFile(text, []byte("SELECT 1;"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := run(t, "validate", text, "-o", filepath.Join(dir, "out.sql")); err == nil {
		t.Error("validate without identifiers should fail")
	}
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	sheet := writeWorkbook(t, dir, "sites.xlsx", [][]interface{}{
		{"Site ID", "Polygon", "Cell"},
		{"7", "P", "C"},
	})
	out := filepath.Join(dir, "inspect.json")
	if err := run(t, "inspect", sheet, "-o", out); err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	got := readFile(t, out)
	for _, w := range []string{`"processed_sheet":"Sites"`, `"selection":"keywords+data"`, `"id":"000007"`} {
		if !strings.Contains(got, w) {
			t.Errorf("inspect output missing %s:\n%s", w, got)
		}
	}
}

func TestInspectCommandGenericNamesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeWorkbook(t, dir, "sites.xlsx", [][]interface{}{
		{"Site ID", "Polygon", "Cell"},
		{"7", "P", "C"},
	})
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatalf("add sheet: %v", err)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	cfgPath := filepath.Join(dir, "sheetsync.ini")
	if err := os.WriteFile(cfgPath, []byte("[sheets]\ngeneric_words =\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "inspect.json")
	if err := run(t, "inspect", path, "--config", cfgPath, "-o", out); err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	got := readFile(t, out)
	if !strings.Contains(got, `"name":"Sheet2","rows":0,"generic_name":true`) {
		t.Errorf("Sheet2 should be reported as generic:\n%s", got)
	}
	if !strings.Contains(got, `"name":"Sites","rows":2,"generic_name":false`) {
		t.Errorf("Sites should not be reported as generic:\n%s", got)
	}
}
