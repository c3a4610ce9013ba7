// Package config loads sheetsync settings from an INI file.
package config

import (
	"fmt"
	"strings"

	"github.com/go-ini/ini"
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/sqlgen"
)

// Config is the application configuration.
type Config struct {
	SQL     SQLConfig     `ini:"sql"`
	Columns ColumnsConfig `ini:"columns"`
	Sheets  SheetsConfig  `ini:"sheets"`
}

// SQLConfig names the target table. Values are copied into generated SQL
// verbatim.
type SQLConfig struct {
	Schema        string `ini:"schema"`
	Table         string `ini:"table"`
	KeyColumn     string `ini:"key_column"`
	AttrAColumn   string `ini:"attribute_a_column"`
	AttrBColumn   string `ini:"attribute_b_column"`
	SelectColumns string `ini:"select_columns"`
	Flavor        string `ini:"flavor"`      // postgresql, mysql or sqlite
	Transaction   bool   `ini:"transaction"` // wrap updates in BEGIN/COMMIT
	TempTable     string `ini:"temp_table"`
}

// ColumnsConfig holds the header keywords, comma separated.
type ColumnsConfig struct {
	ID        []string `ini:"id" delim:","`
	AttrA     []string `ini:"attribute_a" delim:","`
	AttrB     []string `ini:"attribute_b" delim:","`
	ProbeRows int      `ini:"probe_rows"`
}

// SheetsConfig controls sheet selection.
type SheetsConfig struct {
	GenericWords []string `ini:"generic_words" delim:","`
}

// Default returns the built-in configuration.
func Default() *Config {
	t := sqlgen.DefaultTarget()
	v := parser.DefaultVocabulary()
	return &Config{
		SQL: SQLConfig{
			Schema:        t.Schema,
			Table:         t.Table,
			KeyColumn:     t.KeyColumn,
			AttrAColumn:   t.AttrAColumn,
			AttrBColumn:   t.AttrBColumn,
			SelectColumns: t.SelectColumns,
			Flavor:        "postgresql",
			Transaction:   t.Transaction,
			TempTable:     t.TempTable,
		},
		Columns: ColumnsConfig{
			ID:        v.ID,
			AttrA:     v.AttrA,
			AttrB:     v.AttrB,
			ProbeRows: v.ProbeRows,
		},
		Sheets: SheetsConfig{
			GenericWords: v.GenericSheetWords,
		},
	}
}

// Load overlays the file at filePath on the defaults. An empty path
// returns the defaults.
func Load(filePath string) (*Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	if err := ini.MapTo(cfg, filePath); err != nil {
		logrus.Errorf("Failed to load config file: %v", err)
		return nil, fmt.Errorf("load config %s: %w", filePath, err)
	}
	cfg.Columns.ID = clean(cfg.Columns.ID)
	cfg.Columns.AttrA = clean(cfg.Columns.AttrA)
	cfg.Columns.AttrB = clean(cfg.Columns.AttrB)
	cfg.Sheets.GenericWords = clean(cfg.Sheets.GenericWords)

	logrus.Debugf("Config loaded from: %s", filePath)
	return cfg, nil
}

func clean(words []string) []string {
	var out []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Vocabulary returns the keyword sets for sheet and column selection.
func (c *Config) Vocabulary() parser.Vocabulary {
	return parser.Vocabulary{
		ID:                c.Columns.ID,
		AttrA:             c.Columns.AttrA,
		AttrB:             c.Columns.AttrB,
		GenericSheetWords: c.Sheets.GenericWords,
		ProbeRows:         c.Columns.ProbeRows,
	}
}

// Target returns the SQL target described by the [sql] section.
func (c *Config) Target() (sqlgen.Target, error) {
	flavor, err := sqlgen.ParseFlavor(c.SQL.Flavor)
	if err != nil {
		return sqlgen.Target{}, err
	}
	return sqlgen.Target{
		Schema:        c.SQL.Schema,
		Table:         c.SQL.Table,
		KeyColumn:     c.SQL.KeyColumn,
		AttrAColumn:   c.SQL.AttrAColumn,
		AttrBColumn:   c.SQL.AttrBColumn,
		SelectColumns: c.SQL.SelectColumns,
		Flavor:        flavor,
		Transaction:   c.SQL.Transaction,
		TempTable:     c.SQL.TempTable,
	}, nil
}
