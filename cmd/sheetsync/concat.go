package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/sqlgen"
)

var concatValidationPath string

func newConcatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concat [file...]",
		Short: "Combine .sql/.txt files into one script",
		Long: `concat joins SQL text files into one combined file with a banner per file,
tagging each with the circuit taken from its name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConcat,
	}
	cmd.Flags().StringVar(&concatValidationPath, "validation", "", "Also write a validation script for the extracted keys")
	cmd.Flags().StringVar(&messagePath, "message", "", "Write the summary message to a file (default: stderr)")
	return cmd
}

func runConcat(cmd *cobra.Command, args []string) error {
	batch := parser.ProcessTextFiles(readTextFiles(args), cfg.SQL.KeyColumn)
	logNotices(batch)
	if len(batch.Files) == 0 {
		return fmt.Errorf("no .sql or .txt files among %d arguments", len(args))
	}

	g, err := newGenerator()
	if err != nil {
		return err
	}
	if err := output.WriteFile(outputPath, []byte(g.Concat(batch))); err != nil {
		return err
	}

	if concatValidationPath != "" {
		script, err := g.ValidationScript(batch.Keys())
		switch {
		case errors.Is(err, sqlgen.ErrEmptyKeySet):
			logrus.Warn("No keys found in the combined files; validation script not written")
		case err != nil:
			return fmt.Errorf("validation script: %w", err)
		default:
			if err := output.WriteFile(concatValidationPath, []byte(script.String())); err != nil {
				return err
			}
		}
	}

	return writeMessage(output.ConcatMessage(batch))
}
