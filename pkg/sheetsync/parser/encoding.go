package parser

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// toUTF8 returns s unchanged when it is valid UTF-8 and otherwise decodes
// it as Windows-1252, the usual encoding of legacy exports.
func toUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "�")
	}
	return decoded
}

// DecodeText converts raw file bytes to UTF-8 text, dropping a UTF-8 BOM.
func DecodeText(data []byte) string {
	return toUTF8(string(bytes.TrimPrefix(data, utf8BOM)))
}
