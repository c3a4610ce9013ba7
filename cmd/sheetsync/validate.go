package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/sqlgen"
)

var validateSheet string

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Write a query that checks which identifiers exist",
		Long: `validate collects identifiers from spreadsheets and from .sql/.txt files
holding UPDATE statements, and writes a query that reports which of them
exist in the target table. Identifiers are grouped by file or circuit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	cmd.Flags().StringVar(&validateSheet, "sheet", "", "Sheet to read from spreadsheets")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	var keys []models.KeyRef
	var textPaths []string

	opts := buildOptions(validateSheet)
	for _, path := range args {
		if isTextPath(path) {
			textPaths = append(textPaths, path)
			continue
		}
		ds, err := sheetsync.Load(path, opts)
		if err != nil {
			logrus.WithError(err).Warnf("Skipping %s", path)
			continue
		}
		logWarnings(ds)
		keys = append(keys, ds.KeyRefs()...)
	}

	if len(textPaths) > 0 {
		batch := parser.ProcessTextFiles(readTextFiles(textPaths), cfg.SQL.KeyColumn)
		logNotices(batch)
		keys = append(keys, batch.Keys()...)
	}

	g, err := newGenerator()
	if err != nil {
		return err
	}
	script, err := g.ValidationScript(keys)
	if errors.Is(err, sqlgen.ErrEmptyKeySet) {
		return fmt.Errorf("no identifiers found in %d files: %w", len(args), err)
	}
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"keys":   script.Keys,
		"chunks": script.Chunks,
	}).Info("Validation script generated")
	return output.WriteFile(outputPath, []byte(script.String()))
}
