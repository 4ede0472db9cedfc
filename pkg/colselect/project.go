package colselect

import (
	"github.com/ukaji3/colselect-go/pkg/colselect/models"
)

// Project returns a workbook with one sheet per input sheet, keeping only
// the selected columns that exist in that sheet. Column order follows the
// sheet, rows and values are unchanged. Selected names absent from a sheet
// are skipped for that sheet.
func Project(wb *models.Workbook, selected models.Selection) (*models.Workbook, error) {
	if selected.Len() == 0 {
		return nil, newError(KindNoSelection, "project", "", ErrNoSelection)
	}

	out := &models.Workbook{
		BookName: wb.BookName,
		Sheets:   make([]models.Sheet, 0, len(wb.Sheets)),
	}
	for _, s := range wb.Sheets {
		out.Sheets = append(out.Sheets, projectSheet(s, selected))
	}
	return out, nil
}

func projectSheet(s models.Sheet, selected models.Selection) models.Sheet {
	var keep []int
	for i, name := range s.Columns {
		if selected.Has(name) {
			keep = append(keep, i)
		}
	}

	out := models.Sheet{
		Name:    s.Name,
		Columns: make([]string, len(keep)),
	}
	for j, i := range keep {
		out.Columns[j] = s.Columns[i]
	}

	if s.Rows == nil {
		return out
	}
	out.Rows = make([][]interface{}, len(s.Rows))
	for r := range s.Rows {
		row := make([]interface{}, len(keep))
		for j, i := range keep {
			row[j] = s.Value(r, i)
		}
		out.Rows[r] = row
	}
	return out
}
