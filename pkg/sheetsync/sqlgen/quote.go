package sqlgen

import (
	"strings"

	"github.com/huandu/go-sqlbuilder"
)

// quoteLiteral renders s as a standard SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// literal wraps s for inlining by a statement builder.
func literal(s string) interface{} {
	return sqlbuilder.Raw(quoteLiteral(s))
}

// commentText flattens s so it cannot end a line comment early.
func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Chunk splits items into consecutive groups of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}
	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
