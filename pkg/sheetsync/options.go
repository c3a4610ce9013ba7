// Package sheetsync builds reconciliation datasets from spreadsheet exports.
package sheetsync

import (
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

// Options configures dataset building.
type Options struct {
	// Sheet forces the sheet to read instead of automatic selection.
	Sheet string
	// Vocabulary overrides the header keyword sets. Empty sets use defaults.
	Vocabulary parser.Vocabulary
	// IncludeRaw specifies whether records keep their raw cells.
	// If nil, defaults to true.
	IncludeRaw *bool
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Vocabulary: parser.DefaultVocabulary(),
	}
}

// ShouldIncludeRaw returns whether records keep their raw cells.
func (o Options) ShouldIncludeRaw() bool {
	if o.IncludeRaw != nil {
		return *o.IncludeRaw
	}
	return true
}
