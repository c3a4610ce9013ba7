package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// maxCircuitFallback caps the file-stem fallback for circuit tags.
const maxCircuitFallback = 20

// circuitPatterns are tried in order; the first submatch is the tag.
var circuitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)circuit[_\- ]?([a-z0-9]+)`),
	regexp.MustCompile(`(?i)(?:^|[^a-z])ckt[_\- ]?([a-z0-9]+)`),
	regexp.MustCompile(`(?i)^([a-z]{2,}[_\-]?\d{2,})`),
}

// TextExtensions lists the file types accepted by the text path.
var TextExtensions = []string{".sql", ".txt"}

// ExtractCircuit derives a circuit tag from a file name.
func ExtractCircuit(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, re := range circuitPatterns {
		if m := re.FindStringSubmatch(stem); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	if r := []rune(stem); len(r) > maxCircuitFallback {
		return string(r[:maxCircuitFallback])
	}
	return stem
}

// keyClausePattern builds the WHERE-clause matcher for a key column.
// The column may be table-qualified and quoted; the value may use single,
// double or backtick quotes.
func keyClausePattern(keyColumn string) *regexp.Regexp {
	col := regexp.QuoteMeta(keyColumn)
	return regexp.MustCompile(
		`(?is)\bWHERE\s+(?:[\w"` + "`" + `\[\]]+\.)?[\["` + "`" + `]?` + col + `[\]"` + "`" + `]?\s*=\s*` +
			`(?:'([^']*)'|"([^"]*)"|` + "`" + `([^` + "`" + `]*)` + "`" + `)`)
}

// ExtractKeys returns every normalized value following a
// WHERE <keyColumn> = '<value>' clause, in order of appearance.
func ExtractKeys(text, keyColumn string) []string {
	re := keyClausePattern(keyColumn)
	var keys []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		raw := m[1] + m[2] + m[3]
		if key := NormalizeKey(raw); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// TextFile is one uploaded SQL source file.
type TextFile struct {
	Name string
	Data []byte
}

// TextFileResult is the extraction outcome for one accepted file.
type TextFileResult struct {
	Name    string
	Circuit string
	Text    string
	Keys    []string
}

// Notice reports a file skipped by the text path.
type Notice struct {
	File string
	Err  error
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %v", n.File, n.Err)
}

// TextBatch is the outcome of processing several text files.
type TextBatch struct {
	Files   []TextFileResult
	Notices []Notice
}

// Keys flattens the extracted keys of every file, tagged with its circuit.
func (b *TextBatch) Keys() []models.KeyRef {
	var refs []models.KeyRef
	for _, f := range b.Files {
		for _, k := range f.Keys {
			refs = append(refs, models.KeyRef{Key: k, Source: f.Circuit})
		}
	}
	return refs
}

// Circuits returns the distinct circuit tags in file order.
func (b *TextBatch) Circuits() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range b.Files {
		if !seen[f.Circuit] {
			seen[f.Circuit] = true
			out = append(out, f.Circuit)
		}
	}
	return out
}

// ProcessTextFiles extracts circuits and keys from each file. Files with an
// unsupported extension are skipped with a notice; the batch continues.
func ProcessTextFiles(files []TextFile, keyColumn string) *TextBatch {
	batch := &TextBatch{}
	for _, f := range files {
		if !isTextFile(f.Name) {
			batch.Notices = append(batch.Notices, Notice{
				File: f.Name,
				Err:  fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Ext(f.Name)),
			})
			continue
		}
		text := DecodeText(f.Data)
		res := TextFileResult{
			Name:    filepath.Base(f.Name),
			Circuit: ExtractCircuit(f.Name),
			Text:    text,
			Keys:    ExtractKeys(text, keyColumn),
		}
		logrus.WithFields(logrus.Fields{
			"file":    res.Name,
			"circuit": res.Circuit,
			"keys":    len(res.Keys),
		}).Debug("text file processed")
		batch.Files = append(batch.Files, res)
	}
	return batch
}

func isTextFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range TextExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
