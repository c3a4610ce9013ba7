package sqlgen

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// UpdateStatements renders one UPDATE per entry that has something to set.
// An attribute is set only when it needs an update and its left value is
// not empty; unchanged-or-removed entries never produce a statement.
func (g *Generator) UpdateStatements(entries []models.DiffEntry) ([]string, error) {
	var stmts []string
	for _, e := range entries {
		if e.Status == models.StatusRemoved {
			continue
		}
		stmt, ok, err := g.updateStatement(e)
		if err != nil {
			return nil, fmt.Errorf("update for key %s: %w", e.Key, err)
		}
		if ok {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

func (g *Generator) updateStatement(e models.DiffEntry) (string, bool, error) {
	t := g.Target
	ub := t.Flavor.NewUpdateBuilder()
	ub.Update(t.QualifiedTable())

	// Values are inlined as plain literals so every flavor writes the same
	// '<value>' form as the validation script.
	var assigns []string
	if e.AttrA.NeedsUpdate && e.AttrA.Left != "" {
		assigns = append(assigns, ub.Assign(t.AttrAColumn, literal(e.AttrA.Left)))
	}
	if e.AttrB.NeedsUpdate && e.AttrB.Left != "" {
		assigns = append(assigns, ub.Assign(t.AttrBColumn, literal(e.AttrB.Left)))
	}
	if len(assigns) == 0 {
		return "", false, nil
	}
	ub.Set(assigns...)
	ub.Where(ub.Equal(t.KeyColumn, literal(e.Key)))

	query, args := ub.Build()
	if len(args) > 0 {
		return "", false, fmt.Errorf("unexpected %d bound arguments", len(args))
	}
	return query + ";", true, nil
}

// UpdateScript renders the full update script for a comparison result.
func (g *Generator) UpdateScript(result *models.ComparisonResult) (string, error) {
	stmts, err := g.UpdateStatements(result.Updates())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("-- Update script\n")
	fmt.Fprintf(&b, "-- Table: %s\n", commentText(g.Target.QualifiedTable()))
	fmt.Fprintf(&b, "-- Statements: %d (%s: %d, %s: %d, %s: %d, %s: %d)\n", len(stmts),
		models.StatusUpdateA, result.Counts[models.StatusUpdateA],
		models.StatusUpdateB, result.Counts[models.StatusUpdateB],
		models.StatusUpdateBoth, result.Counts[models.StatusUpdateBoth],
		models.StatusNew, result.Counts[models.StatusNew])
	g.writeGeneratedAt(&b)
	b.WriteString("\n")

	if len(stmts) == 0 {
		b.WriteString("-- No updates required\n")
		return b.String(), nil
	}

	if g.Target.Transaction {
		b.WriteString("BEGIN;\n")
	}
	for _, s := range stmts {
		b.WriteString(s)
		b.WriteString("\n")
	}
	if g.Target.Transaction {
		b.WriteString("COMMIT;\n")
	}

	logrus.WithField("statements", len(stmts)).Debug("update script generated")
	return b.String(), nil
}
