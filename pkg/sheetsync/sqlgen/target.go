// Package sqlgen renders reconciliation output as SQL scripts.
// Nothing here connects to a database; every function returns text.
package sqlgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/huandu/go-sqlbuilder"
)

// Target names the table the generated SQL addresses. Names are emitted
// verbatim.
type Target struct {
	Schema        string
	Table         string
	KeyColumn     string
	AttrAColumn   string
	AttrBColumn   string
	SelectColumns string
	Flavor        sqlbuilder.Flavor
	// Transaction wraps update scripts in BEGIN/COMMIT.
	Transaction bool
	// TempTable names the table used by the large key set fallback.
	TempTable string
}

// DefaultTarget returns the built-in target.
func DefaultTarget() Target {
	return Target{
		Table:         "sites",
		KeyColumn:     "site_id",
		AttrAColumn:   "polygon",
		AttrBColumn:   "cell",
		SelectColumns: "*",
		Flavor:        sqlbuilder.PostgreSQL,
		Transaction:   true,
		TempTable:     "tmp_validation_keys",
	}
}

// QualifiedTable returns schema.table, or table when no schema is set.
func (t Target) QualifiedTable() string {
	if t.Schema == "" {
		return t.Table
	}
	return t.Schema + "." + t.Table
}

func (t Target) selectColumns() string {
	if strings.TrimSpace(t.SelectColumns) == "" {
		return "*"
	}
	return t.SelectColumns
}

func (t Target) tempTable() string {
	if t.TempTable == "" {
		return "tmp_validation_keys"
	}
	return t.TempTable
}

// ParseFlavor maps a configuration name to a SQL flavor.
func ParseFlavor(name string) (sqlbuilder.Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "postgres", "postgresql":
		return sqlbuilder.PostgreSQL, nil
	case "mysql", "mariadb":
		return sqlbuilder.MySQL, nil
	case "sqlite", "sqlite3":
		return sqlbuilder.SQLite, nil
	case "sqlserver", "mssql":
		return sqlbuilder.SQLServer, nil
	default:
		return sqlbuilder.PostgreSQL, fmt.Errorf("unknown sql flavor: %s", name)
	}
}

// Generator renders scripts for one target.
type Generator struct {
	Target Target
	// Now stamps scripts with a generation time. Nil omits the line.
	Now func() time.Time
}

// NewGenerator creates a generator for the target.
func NewGenerator(t Target) *Generator {
	return &Generator{Target: t}
}

func (g *Generator) writeGeneratedAt(b *strings.Builder) {
	if g.Now != nil {
		fmt.Fprintf(b, "-- Generated at: %s\n", g.Now().Format(time.RFC3339))
	}
}
