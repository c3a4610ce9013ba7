package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/reconcile"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/sqlgen"
)

var (
	leftSheet      string
	rightSheet     string
	validationPath string
	messagePath    string
	resultPath     string
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <incoming> <current>",
		Short: "Compare two snapshots and write the update script",
		Long: `compare reconciles the incoming spreadsheet against the current one by
identifier and writes UPDATE statements for every changed attribute.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}
	cmd.Flags().StringVar(&leftSheet, "left-sheet", "", "Sheet to read from the incoming file")
	cmd.Flags().StringVar(&rightSheet, "right-sheet", "", "Sheet to read from the current file")
	cmd.Flags().StringVar(&validationPath, "validation", "", "Also write a validation script for the updated keys")
	cmd.Flags().StringVar(&messagePath, "message", "", "Write the summary message to a file (default: stderr)")
	cmd.Flags().StringVar(&resultPath, "result", "", "Write the comparison result as JSON")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	left, err := sheetsync.Load(args[0], buildOptions(leftSheet))
	if err != nil {
		return fmt.Errorf("incoming file rejected: %w", err)
	}
	right, err := sheetsync.Load(args[1], buildOptions(rightSheet))
	if err != nil {
		return fmt.Errorf("current file rejected: %w", err)
	}
	logWarnings(left)
	logWarnings(right)

	result := reconcile.Compare(left, right)

	g, err := newGenerator()
	if err != nil {
		return err
	}
	script, err := g.UpdateScript(result)
	if err != nil {
		return fmt.Errorf("update script: %w", err)
	}
	if err := output.WriteFile(outputPath, []byte(script)); err != nil {
		return err
	}

	if validationPath != "" {
		keys := result.KeyRefs(left.SourceName,
			models.StatusUpdateA, models.StatusUpdateB, models.StatusUpdateBoth, models.StatusNew)
		vs, err := g.ValidationScript(keys)
		switch {
		case errors.Is(err, sqlgen.ErrEmptyKeySet):
			logrus.Warn("No keys need an update; validation script not written")
		case err != nil:
			return fmt.Errorf("validation script: %w", err)
		default:
			if err := output.WriteFile(validationPath, []byte(vs.String())); err != nil {
				return err
			}
		}
	}

	if resultPath != "" {
		data, err := output.ResultToJSON(result, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := output.WriteFile(resultPath, data); err != nil {
			return err
		}
	}

	return writeMessage(output.ComparisonMessage(left, right, result))
}

func logWarnings(ds *models.Dataset) {
	for _, w := range ds.Warnings {
		logrus.WithFields(logrus.Fields{
			"source": ds.SourceName,
			"code":   w.Code,
		}).Warn(w.Message)
	}
}

func writeMessage(msg string) error {
	if messagePath == "" {
		_, err := fmt.Fprint(os.Stderr, msg)
		return err
	}
	return output.WriteFile(messagePath, []byte(msg))
}
