package output

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

var statusOrder = []models.Status{
	models.StatusUpdateA,
	models.StatusUpdateB,
	models.StatusUpdateBoth,
	models.StatusNew,
	models.StatusRemoved,
}

// ComparisonMessage summarizes a comparison for a person who did not run
// it: both files, their record counts and what changed.
func ComparisonMessage(left, right *models.Dataset, result *models.ComparisonResult) string {
	var b strings.Builder
	b.WriteString("Comparison summary\n\n")
	writeDataset(&b, "Incoming", left)
	writeDataset(&b, "Current", right)

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total records: %d (%d distinct identifiers)\n", result.Total, result.DistinctKeys)
	fmt.Fprintf(&b, "Matching: %d\n", result.Matching)
	fmt.Fprintf(&b, "Non-matching: %d\n", result.NonMatching)
	for _, s := range statusOrder {
		if n := result.Counts[s]; n > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", s, n)
		}
	}

	if updates := len(result.Updates()); updates > 0 {
		fmt.Fprintf(&b, "\n%d identifiers need an update in the current data.\n", updates)
	} else {
		b.WriteString("\nNo updates are needed.\n")
	}
	return b.String()
}

func writeDataset(b *strings.Builder, label string, ds *models.Dataset) {
	if ds == nil {
		fmt.Fprintf(b, "%s: (none)\n", label)
		return
	}
	fmt.Fprintf(b, "%s: %s (%s), sheet %q, %d records\n",
		label, ds.SourceName, humanize.Bytes(uint64(ds.SizeBytes)), ds.ProcessedSheet, ds.RecordCount())
	for _, w := range ds.Warnings {
		fmt.Fprintf(b, "  warning: %s\n", w.Message)
	}
}

// ConcatMessage summarizes a combined text file: the files it holds, their
// circuits and how many identifiers each carries.
func ConcatMessage(batch *parser.TextBatch) string {
	var b strings.Builder
	b.WriteString("Combined file summary\n\n")

	total := 0
	for _, f := range batch.Files {
		total += len(f.Keys)
		fmt.Fprintf(&b, "- %s (circuit %s): %d identifiers\n", f.Name, f.Circuit, len(f.Keys))
	}
	fmt.Fprintf(&b, "\nFiles: %d\n", len(batch.Files))
	fmt.Fprintf(&b, "Identifiers: %d\n", total)
	fmt.Fprintf(&b, "Circuits: %s\n", strings.Join(batch.Circuits(), ", "))

	if len(batch.Notices) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, n := range batch.Notices {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}
	return b.String()
}
