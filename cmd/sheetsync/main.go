// Package main provides the CLI entry point for sheetsync.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetsync-go/pkg/config"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/sqlgen"
)

var (
	configPath  string
	debug       bool
	outputPath  string
	pretty      bool
	noTimestamp bool

	schema    string
	table     string
	keyColumn string
	flavor    string

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetsync",
		Short: "Reconcile spreadsheet exports and generate SQL",
		Long: `sheetsync reads identifier/attribute tables from spreadsheet exports,
compares two snapshots of the same dataset, and writes SQL scripts that
validate and update the target table.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "INI configuration file")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVar(&noTimestamp, "no-timestamp", false, "Omit the generation time from SQL headers")
	flags.StringVar(&schema, "schema", "", "Target schema (overrides config)")
	flags.StringVar(&table, "table", "", "Target table (overrides config)")
	flags.StringVar(&keyColumn, "key-column", "", "Target key column (overrides config)")
	flags.StringVar(&flavor, "flavor", "", "SQL flavor: postgresql, mysql or sqlite (overrides config)")

	rootCmd.AddCommand(newInspectCmd(), newCompareCmd(), newValidateCmd(), newConcatCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if schema != "" {
		loaded.SQL.Schema = schema
	}
	if table != "" {
		loaded.SQL.Table = table
	}
	if keyColumn != "" {
		loaded.SQL.KeyColumn = keyColumn
	}
	if flavor != "" {
		loaded.SQL.Flavor = flavor
	}
	cfg = loaded
	return nil
}

func buildOptions(sheet string) sheetsync.Options {
	opts := sheetsync.DefaultOptions()
	opts.Vocabulary = cfg.Vocabulary()
	opts.Sheet = sheet
	return opts
}

func newGenerator() (*sqlgen.Generator, error) {
	target, err := cfg.Target()
	if err != nil {
		return nil, err
	}
	g := sqlgen.NewGenerator(target)
	if !noTimestamp {
		g.Now = time.Now
	}
	return g, nil
}
