package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

var inspectSheet string

type sheetReport struct {
	Name    string         `json:"name"`
	Rows    int            `json:"rows"`
	Generic bool           `json:"generic_name"`
	Region  *models.Region `json:"region,omitempty"`
}

type inspectReport struct {
	Dataset *models.Dataset `json:"dataset"`
	Sheets  []sheetReport   `json:"sheets"`
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file...]",
		Short: "Show the dataset read from each spreadsheet as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVar(&inspectSheet, "sheet", "", "Read this sheet instead of selecting one")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts := buildOptions(inspectSheet)
	vocab := cfg.Vocabulary().WithDefaults()

	var reports []inspectReport
	for _, path := range args {
		src, err := sheetsync.OpenFile(path)
		if err != nil {
			logrus.WithError(err).Warnf("Skipping %s", path)
			continue
		}
		ds, err := src.Dataset(opts)
		if err != nil {
			logrus.WithError(err).Warnf("Skipping %s", path)
			continue
		}

		report := inspectReport{Dataset: ds}
		for _, name := range src.Workbook.SheetNames {
			sheet, _ := src.Workbook.Sheet(name)
			report.Sheets = append(report.Sheets, sheetReport{
				Name:    name,
				Rows:    len(sheet.Rows),
				Generic: parser.IsGenericSheetName(name, vocab.GenericSheetWords),
				Region:  parser.DetectRegion(sheet.Rows, parser.DefaultRegionParams()),
			})
		}
		reports = append(reports, report)
	}
	if len(reports) == 0 {
		return fmt.Errorf("no readable spreadsheets among %d files", len(args))
	}

	data, err := output.ToJSON(reports, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return output.WriteFile(outputPath, append(data, '\n'))
}
