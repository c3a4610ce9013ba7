package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

// readTextFiles reads every path with a progress bar on stderr. Unreadable
// files are logged and skipped.
func readTextFiles(paths []string) []parser.TextFile {
	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("Reading files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Close()

	files := make([]parser.TextFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		bar.Add(1)
		if err != nil {
			logrus.WithError(err).Warnf("Skipping %s", path)
			continue
		}
		files = append(files, parser.TextFile{Name: filepath.Base(path), Data: data})
	}
	return files
}

func isTextPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range parser.TextExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func logNotices(batch *parser.TextBatch) {
	for _, n := range batch.Notices {
		logrus.WithField("file", n.File).Warn(n.Err)
	}
}
