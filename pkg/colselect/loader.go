package colselect

import (
	"errors"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/colselect-go/pkg/colselect/models"
	"github.com/ukaji3/colselect-go/pkg/colselect/parser"
)

var errNoSheets = errors.New("workbook has no sheets")

// ListColumns returns the column names of the first sheet of the workbook
// at path, read from the header row. Names are in file order and
// duplicates are kept.
func ListColumns(path string, opts Options) ([]string, error) {
	grids, err := readGrids("list_columns", path, true)
	if err != nil {
		return nil, err
	}

	sheet := parser.Frame(grids[0], opts.headerRow())
	log.Debug().
		Str("path", path).
		Str("sheet", sheet.Name).
		Int("columns", len(sheet.Columns)).
		Msg("Listed columns")
	return sheet.Columns, nil
}

// LoadAllSheets loads every sheet of the workbook at path, in workbook
// order, using the same header row as ListColumns.
func LoadAllSheets(path string, opts Options) (*models.Workbook, error) {
	grids, err := readGrids("load", path, false)
	if err != nil {
		return nil, err
	}

	wb := &models.Workbook{
		BookName: filepath.Base(path),
		Sheets:   make([]models.Sheet, 0, len(grids)),
	}
	for _, g := range grids {
		wb.Sheets = append(wb.Sheets, parser.Frame(g, opts.headerRow()))
	}
	return wb, nil
}

// Inspect summarizes every sheet of the workbook at path.
func Inspect(path string, opts Options) ([]models.SheetSummary, error) {
	grids, err := readGrids("inspect", path, false)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.SheetSummary, 0, len(grids))
	for _, g := range grids {
		sheet := parser.Frame(g, opts.headerRow())
		summaries = append(summaries, models.SheetSummary{
			Name:      sheet.Name,
			Columns:   sheet.Columns,
			Rows:      len(sheet.Rows),
			UsedRange: parser.UsedRange(g),
		})
	}
	return summaries, nil
}

func readGrids(op, path string, firstOnly bool) ([]parser.Grid, error) {
	if _, err := parser.DetectFormat(path); err != nil {
		return nil, newError(KindInvalidFormat, op, path, err)
	}

	grids, err := parser.ReadGrids(path, firstOnly)
	if err != nil {
		return nil, newError(KindIO, op, path, err)
	}
	if len(grids) == 0 {
		return nil, newError(KindIO, op, path, errNoSheets)
	}
	return grids, nil
}
