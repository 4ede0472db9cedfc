package parser

import (
	"fmt"
	"time"

	"github.com/ukaji3/colselect-go/pkg/colselect/models"
)

// Frame turns a grid into a sheet whose header is the physical row
// headerRow (1-based). Rows above the header are discarded and every row
// below it becomes a data row.
//
// The column count is the widest of the header and the data rows. Header
// cells that are blank, and columns that exist only in data rows, are named
// "Unnamed: <index>" with a 0-based index. Duplicate names are kept.
func Frame(g Grid, headerRow int) models.Sheet {
	sheet := models.Sheet{Name: g.Name, Columns: []string{}}

	h := headerRow - 1
	if h < 0 || h >= len(g.Cells) {
		return sheet
	}
	header := trimRow(g.Cells[h])
	data := trimRows(g.Cells[h+1:])

	width := len(header)
	for _, row := range data {
		if w := len(trimRow(row)); w > width {
			width = w
		}
	}

	sheet.Columns = make([]string, width)
	for i := range sheet.Columns {
		var v interface{}
		if i < len(header) {
			v = header[i]
		}
		sheet.Columns[i] = headerName(v, i)
	}

	if len(data) == 0 {
		return sheet
	}
	sheet.Rows = make([][]interface{}, len(data))
	for i, row := range data {
		out := make([]interface{}, width)
		copy(out, trimRow(row))
		sheet.Rows[i] = out
	}
	return sheet
}

// headerName renders a header cell as a column name.
func headerName(v interface{}, idx int) string {
	switch t := v.(type) {
	case nil:
		return fmt.Sprintf("Unnamed: %d", idx)
	case string:
		if t == "" {
			return fmt.Sprintf("Unnamed: %d", idx)
		}
		return t
	case time.Time:
		return t.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprint(t)
	}
}
