package sqlgen

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

const banner = "-- ============================================================\n"

// Concat joins the decoded text files into one script, each under a banner
// naming the file, its circuit and how many keys it carries.
func (g *Generator) Concat(batch *parser.TextBatch) string {
	var b strings.Builder
	b.WriteString("-- Combined SQL file\n")
	fmt.Fprintf(&b, "-- Files: %d\n", len(batch.Files))
	fmt.Fprintf(&b, "-- Circuits: %s\n", commentText(strings.Join(batch.Circuits(), ", ")))
	g.writeGeneratedAt(&b)

	for i, f := range batch.Files {
		b.WriteString("\n")
		b.WriteString(banner)
		fmt.Fprintf(&b, "-- File %d/%d: %s\n", i+1, len(batch.Files), commentText(f.Name))
		fmt.Fprintf(&b, "-- Circuit: %s\n", commentText(f.Circuit))
		fmt.Fprintf(&b, "-- Keys: %d\n", len(f.Keys))
		b.WriteString(banner)
		b.WriteString(f.Text)
		if !strings.HasSuffix(f.Text, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}
