// Package output serializes sheetsync results for files and people.
package output

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// DatasetToJSON serializes a dataset.
func DatasetToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	return ToJSON(ds, pretty)
}

// ResultToJSON serializes a comparison result.
func ResultToJSON(r *models.ComparisonResult, pretty bool) ([]byte, error) {
	return ToJSON(r, pretty)
}

// WriteFile writes data to path, or to stdout when path is empty.
func WriteFile(path string, data []byte) error {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(file, path, data)
}

// writeAndClose writes data and closes w. A failed close is reported like a
// failed write.
func writeAndClose(w io.WriteCloser, name string, data []byte) error {
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
