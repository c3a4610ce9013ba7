package sheetsync

import (
	"errors"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Decoder errors, re-exported for callers of this package.
var (
	ErrEmptyContent    = parser.ErrEmptyContent
	ErrNoSheets        = parser.ErrNoSheets
	ErrSheetNotFound   = parser.ErrSheetNotFound
	ErrUnsupportedFile = parser.ErrUnsupportedFile
)

// DecodeError represents a rejected spreadsheet upload.
type DecodeError = parser.DecodeError

// IsDecodeError reports whether err rejects a single upload.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
