package parser

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// minKeywordColumns is how many of the three fields a header must match
// for a sheet to count as holding the dataset.
const minKeywordColumns = 2

// SelectionRule names the rule that chose a sheet.
type SelectionRule int

const (
	RuleUnknown SelectionRule = iota
	// RuleNamedWithData: non-generic name, keyword header and data rows.
	RuleNamedWithData
	// RuleKeywords: keyword header, any name.
	RuleKeywords
	// RuleNonGenericName: first sheet with a non-placeholder name.
	RuleNonGenericName
	// RuleSecondSheet: second sheet of a multi-sheet workbook.
	RuleSecondSheet
	// RuleFirstSheet: terminal fallback.
	RuleFirstSheet
	// RuleOverride: sheet chosen by the operator.
	RuleOverride
)

func (r SelectionRule) String() string {
	switch r {
	case RuleNamedWithData:
		return "keywords+data"
	case RuleKeywords:
		return "keywords"
	case RuleNonGenericName:
		return "named-sheet"
	case RuleSecondSheet:
		return "second-sheet"
	case RuleFirstSheet:
		return "first-sheet"
	case RuleOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Selection is the outcome of sheet selection.
type Selection struct {
	Sheet   string
	Rule    SelectionRule
	Mapping models.ColumnMapping
}

// SelectSheet picks the sheet most likely to hold the dataset and maps its
// header. It never fails; an empty workbook yields a zero Selection.
func SelectSheet(wb *models.Workbook, vocab Vocabulary) Selection {
	vocab = vocab.WithDefaults()
	names := wb.SheetNames
	if len(names) == 0 {
		return Selection{}
	}

	pick := func(name string, rule SelectionRule) Selection {
		sel := Selection{Sheet: name, Rule: rule}
		if s, ok := wb.Sheet(name); ok {
			sel.Mapping = MapColumns(s.Header(), vocab)
		}
		logrus.WithFields(logrus.Fields{
			"source": wb.BookName,
			"sheet":  name,
			"rule":   rule.String(),
		}).Debug("sheet selected")
		return sel
	}

	for _, name := range names {
		s := wb.Sheets[name]
		if !IsGenericSheetName(name, vocab.GenericSheetWords) &&
			hasKeywordHeader(s, vocab) && hasPopulatedRow(s.Rows, vocab.ProbeRows) {
			return pick(name, RuleNamedWithData)
		}
	}
	for _, name := range names {
		if hasKeywordHeader(wb.Sheets[name], vocab) {
			return pick(name, RuleKeywords)
		}
	}
	for _, name := range names {
		if !IsGenericSheetName(name, vocab.GenericSheetWords) {
			return pick(name, RuleNonGenericName)
		}
	}
	if len(names) > 1 {
		return pick(names[1], RuleSecondSheet)
	}
	return pick(names[0], RuleFirstSheet)
}

// SelectNamedSheet maps the header of an operator-chosen sheet.
func SelectNamedSheet(wb *models.Workbook, name string, vocab Vocabulary) (Selection, error) {
	s, ok := wb.Sheet(name)
	if !ok {
		return Selection{}, ErrSheetNotFound
	}
	return Selection{
		Sheet:   name,
		Rule:    RuleOverride,
		Mapping: MapColumns(s.Header(), vocab.WithDefaults()),
	}, nil
}

// IsGenericSheetName reports whether name is a placeholder: a bare integer
// or a name containing one of the generic words.
func IsGenericSheetName(name string, words []string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n != "" && isDigits(n) {
		return true
	}
	for _, w := range words {
		if w != "" && strings.Contains(n, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// MapColumns maps header cells to the id, attributeA and attributeB fields.
// Fields resolve in that order; an exact keyword match beats a substring
// match and a column claimed by an earlier field is skipped.
func MapColumns(header []string, vocab Vocabulary) models.ColumnMapping {
	vocab = vocab.WithDefaults()
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = NormalizeHeader(h)
	}

	claimed := make(map[int]bool)
	resolve := func(keywords []string) *models.ColumnRef {
		idx := findHeader(normalized, keywords, claimed)
		if idx < 0 {
			return nil
		}
		claimed[idx] = true
		return &models.ColumnRef{Index: idx, Header: normalized[idx]}
	}

	var m models.ColumnMapping
	m.ID = resolve(vocab.ID)
	m.AttrA = resolve(vocab.AttrA)
	m.AttrB = resolve(vocab.AttrB)
	return m
}

func findHeader(headers []string, keywords []string, claimed map[int]bool) int {
	for i, h := range headers {
		if claimed[i] || h == "" {
			continue
		}
		for _, kw := range keywords {
			if h == strings.ToLower(kw) {
				return i
			}
		}
	}
	for i, h := range headers {
		if claimed[i] || h == "" {
			continue
		}
		for _, kw := range keywords {
			if kw != "" && strings.Contains(h, strings.ToLower(kw)) {
				return i
			}
		}
	}
	return -1
}

func hasKeywordHeader(s *models.Sheet, vocab Vocabulary) bool {
	if s == nil {
		return false
	}
	return MapColumns(s.Header(), vocab).Mapped() >= minKeywordColumns
}

// hasPopulatedRow reports whether the probe window after the header holds
// any data.
func hasPopulatedRow(rows [][]string, probe int) bool {
	_, ok := scanBounds(rows, 1, probe+1)
	return ok
}
