package sheet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is matched by FormatError.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptySheet is returned when the input has no header row.
	ErrEmptySheet = errors.New("sheet has no header row")
)

// FormatError reports an input whose extension is not readable.
type FormatError struct {
	Path string
	Ext  string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unsupported file format %q (want .xlsx, .xlsm, .xltx, .csv or .tsv)", e.Path, e.Ext)
}

// Is implements errors.Is support.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
