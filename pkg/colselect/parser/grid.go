package parser

import (
	"fmt"
)

// Grid holds the physical cell values of one sheet. Cells[r][c] is the value
// at 0-based row r and column c; nil marks an empty cell. Rows may have
// different lengths and trailing empty rows are trimmed.
type Grid struct {
	Name  string
	Cells [][]interface{}
}

// ReadGrids reads the sheets of the workbook at path in workbook order.
// When firstOnly is set only the first sheet is read.
func ReadGrids(path string, firstOnly bool) ([]Grid, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX:
		return ReadXLSX(path, firstOnly)
	case FormatXLS:
		return ReadXLS(path, firstOnly)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// trimRow drops trailing nil cells.
func trimRow(row []interface{}) []interface{} {
	n := len(row)
	for n > 0 && row[n-1] == nil {
		n--
	}
	return row[:n]
}

// trimRows drops trailing rows with no values.
func trimRows(rows [][]interface{}) [][]interface{} {
	n := len(rows)
	for n > 0 && len(trimRow(rows[n-1])) == 0 {
		n--
	}
	return rows[:n]
}
