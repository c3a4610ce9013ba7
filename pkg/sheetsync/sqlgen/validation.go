package sqlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

// MaxInListSize is the largest number of keys placed in one IN list.
const MaxInListSize = 1000

// ErrEmptyKeySet is returned when there are no keys to validate.
var ErrEmptyKeySet = errors.New("no keys to validate")

// ValidationScript checks which keys exist in the target table.
type ValidationScript struct {
	Header string
	// Query selects matching rows, one IN list per chunk joined by UNION ALL.
	Query string
	// Fallback is the temporary table variant. Empty unless the key set
	// exceeds MaxInListSize.
	Fallback string
	// Summary aggregates expected, existing and missing keys per source.
	Summary string
	Keys    int
	Chunks  int
}

// String joins the script sections into one file.
func (s *ValidationScript) String() string {
	parts := []string{s.Header, s.Query}
	if s.Fallback != "" {
		parts = append(parts, s.Fallback)
	}
	parts = append(parts, s.Summary)
	return strings.Join(parts, "\n")
}

// ValidationScript builds the existence check for keys. Keys are normalized
// again, empty ones dropped and repeats collapsed onto their first source;
// the header reports how many keys that moved.
func (g *Generator) ValidationScript(keys []models.KeyRef) (*ValidationScript, error) {
	keys, shared := uniqueKeys(keys)
	if len(keys) == 0 {
		return nil, ErrEmptyKeySet
	}

	chunks := Chunk(keys, MaxInListSize)
	groups := groupBySource(keys)

	script := &ValidationScript{Keys: len(keys), Chunks: len(chunks)}
	script.Header = g.validationHeader(keys, chunks, groups, shared)
	script.Query = g.validationQuery(chunks)
	if len(keys) > MaxInListSize {
		script.Fallback = g.validationFallback(keys)
	}
	script.Summary = g.validationSummary(groups)

	logrus.WithFields(logrus.Fields{
		"keys":   len(keys),
		"chunks": len(chunks),
	}).Debug("validation script generated")
	return script, nil
}

// uniqueKeys normalizes keys and drops empty and repeated ones. shared
// counts keys that were repeated under a different source than the first.
func uniqueKeys(keys []models.KeyRef) (out []models.KeyRef, shared int) {
	first := make(map[string]string, len(keys))
	counted := make(map[string]bool)
	out = make([]models.KeyRef, 0, len(keys))
	for _, k := range keys {
		key := parser.NormalizeKey(k.Key)
		if key == "" {
			continue
		}
		if src, seen := first[key]; seen {
			if src != k.Source && !counted[key] {
				counted[key] = true
				shared++
			}
			continue
		}
		first[key] = k.Source
		out = append(out, models.KeyRef{Key: key, Source: k.Source})
	}
	return out, shared
}

type sourceGroup struct {
	name string
	keys []string
}

func groupBySource(keys []models.KeyRef) []sourceGroup {
	var groups []sourceGroup
	pos := make(map[string]int)
	for _, k := range keys {
		i, ok := pos[k.Source]
		if !ok {
			i = len(groups)
			pos[k.Source] = i
			groups = append(groups, sourceGroup{name: k.Source})
		}
		groups[i].keys = append(groups[i].keys, k.Key)
	}
	return groups
}

func (g *Generator) validationHeader(keys []models.KeyRef, chunks [][]models.KeyRef, groups []sourceGroup, shared int) string {
	t := g.Target
	var b strings.Builder
	b.WriteString("-- Validation query\n")
	fmt.Fprintf(&b, "-- Table: %s  Key column: %s\n", commentText(t.QualifiedTable()), commentText(t.KeyColumn))
	fmt.Fprintf(&b, "-- Keys: %d in %d IN list(s) of at most %d\n", len(keys), len(chunks), MaxInListSize)
	names := make([]string, 0, len(groups))
	for _, grp := range groups {
		names = append(names, commentText(grp.name))
	}
	fmt.Fprintf(&b, "-- Sources: %s\n", strings.Join(names, ", "))
	if shared > 0 {
		fmt.Fprintf(&b, "-- Shared keys: %d listed under several sources, counted under the first only\n", shared)
	}
	g.writeGeneratedAt(&b)
	return b.String()
}

func (g *Generator) validationQuery(chunks [][]models.KeyRef) string {
	t := g.Target
	selects := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		var b strings.Builder
		fmt.Fprintf(&b, "SELECT %s\nFROM %s\nWHERE %s IN (\n", t.selectColumns(), t.QualifiedTable(), t.KeyColumn)
		for i, k := range chunk {
			sep := ","
			if i == len(chunk)-1 {
				sep = ""
			}
			b.WriteString("    ")
			b.WriteString(quoteLiteral(k.Key))
			b.WriteString(sep)
			if src := commentText(k.Source); src != "" {
				b.WriteString(" -- ")
				b.WriteString(src)
			}
			b.WriteString("\n")
		}
		b.WriteString(")")
		selects = append(selects, b.String())
	}
	return strings.Join(selects, "\nUNION ALL\n") + ";\n"
}

func (g *Generator) validationFallback(keys []models.KeyRef) string {
	t := g.Target
	tmp := t.tempTable()

	var b strings.Builder
	b.WriteString("-- Alternative for engines that reject long IN lists\n")
	fmt.Fprintf(&b, "CREATE TEMPORARY TABLE %s (\n    key_value VARCHAR(64) NOT NULL,\n    source_group VARCHAR(255)\n);\n", tmp)
	for _, batch := range Chunk(keys, MaxInListSize) {
		fmt.Fprintf(&b, "INSERT INTO %s (key_value, source_group) VALUES\n", tmp)
		for i, k := range batch {
			sep := ","
			if i == len(batch)-1 {
				sep = ";"
			}
			fmt.Fprintf(&b, "    (%s, %s)%s\n", quoteLiteral(k.Key), quoteLiteral(k.Source), sep)
		}
	}
	fmt.Fprintf(&b, "SELECT k.key_value, k.source_group,\n"+
		"       CASE WHEN t.%[1]s IS NULL THEN 'NOT_EXISTS' ELSE 'EXISTS' END AS status\n"+
		"FROM %[2]s k\n"+
		"LEFT JOIN %[3]s t ON t.%[1]s = k.key_value\n"+
		"ORDER BY k.source_group, k.key_value;\n", t.KeyColumn, tmp, t.QualifiedTable())
	fmt.Fprintf(&b, "DROP TABLE %s;\n", tmp)
	return b.String()
}

func (g *Generator) validationSummary(groups []sourceGroup) string {
	t := g.Target
	var parts []string
	for _, grp := range groups {
		for _, chunk := range Chunk(grp.keys, MaxInListSize) {
			quoted := make([]string, len(chunk))
			for i, k := range chunk {
				quoted[i] = quoteLiteral(k)
			}
			parts = append(parts, fmt.Sprintf(
				"    SELECT %s AS source_group, %d AS expected, COUNT(DISTINCT %s) AS found\n    FROM %s\n    WHERE %s IN (%s)",
				quoteLiteral(grp.name), len(chunk), t.KeyColumn, t.QualifiedTable(), t.KeyColumn, strings.Join(quoted, ", ")))
		}
	}

	var b strings.Builder
	b.WriteString("-- Summary per source\n")
	b.WriteString("SELECT source_group,\n" +
		"       SUM(expected) AS expected_count,\n" +
		"       SUM(found) AS exists_count,\n" +
		"       SUM(expected) - SUM(found) AS not_exists_count\n" +
		"FROM (\n")
	b.WriteString(strings.Join(parts, "\n    UNION ALL\n"))
	b.WriteString("\n) summary\nGROUP BY source_group\nORDER BY source_group;\n")
	return b.String()
}
