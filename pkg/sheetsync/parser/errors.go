package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyContent indicates the uploaded content has zero bytes.
var ErrEmptyContent = errors.New("empty content")

// ErrNoSheets indicates the workbook has no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrSheetNotFound indicates a requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFile indicates a file type the text path does not accept.
var ErrUnsupportedFile = errors.New("unsupported file type")

// DecodeError represents a rejected spreadsheet upload.
type DecodeError struct {
	Source string
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("decode %q: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("decode %q (%s): %v", e.Source, e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(source string, format Format, err error) *DecodeError {
	return &DecodeError{
		Source: source,
		Format: format,
		Err:    err,
	}
}
