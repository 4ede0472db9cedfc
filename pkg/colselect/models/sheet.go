// Package models defines data structures for column selection.
package models

// Sheet represents a single named table read from a workbook.
type Sheet struct {
	// Name is the sheet name as stored in the workbook.
	Name string `json:"name"`
	// Columns holds header names in file order. Duplicates are kept.
	Columns []string `json:"columns"`
	// Rows holds data rows below the header. Each row has at most
	// len(Columns) values; missing trailing values read as nil.
	Rows [][]interface{} `json:"rows,omitempty"`
}

// Value returns the value at row r and column c, or nil when the row is
// shorter than c.
func (s Sheet) Value(r, c int) interface{} {
	if r < 0 || r >= len(s.Rows) {
		return nil
	}
	row := s.Rows[r]
	if c < 0 || c >= len(row) {
		return nil
	}
	return row[c]
}

// SheetSummary describes a sheet without its row data.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Columns holds header names in file order.
	Columns []string `json:"columns"`
	// Rows is the number of data rows below the header.
	Rows int `json:"rows"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:D10").
	// Empty when the sheet holds no data.
	UsedRange string `json:"used_range,omitempty"`
}
