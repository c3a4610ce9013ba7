// Package parser decodes spreadsheets and SQL text into reconciliation input.
package parser

import (
	"strings"
)

// KeyWidth is the canonical identifier width.
const KeyWidth = 6

// NormalizeKey canonicalizes an identifier.
// All-digit values shorter than KeyWidth are left-padded with zeros; anything
// else is only trimmed. Longer numbers are kept as-is.
func NormalizeKey(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || len(s) >= KeyWidth || !isDigits(s) {
		return s
	}
	return strings.Repeat("0", KeyWidth-len(s)) + s
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NormalizeHeader lower-cases a header, trims it and collapses inner whitespace.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// IsEmptyRow reports whether every cell is blank after trimming.
func IsEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
