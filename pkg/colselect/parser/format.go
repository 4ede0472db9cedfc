// Package parser provides workbook reading utilities.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported spreadsheet file format.
type Format string

const (
	// FormatXLSX is the Office Open XML workbook format.
	FormatXLSX Format = "xlsx"
	// FormatXLS is the legacy BIFF8 workbook format.
	FormatXLS Format = "xls"
)

// ErrUnsupportedFormat indicates the file extension is not a spreadsheet type.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// DetectFormat returns the format implied by the extension of path.
// Matching is case-insensitive.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
}
