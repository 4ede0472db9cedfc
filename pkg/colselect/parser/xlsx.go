package parser

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads cell grids from an Office Open XML workbook.
func ReadXLSX(path string, firstOnly bool) ([]Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if firstOnly && len(sheetList) > 1 {
		sheetList = sheetList[:1]
	}

	typer := newCellTyper(f)
	grids := make([]Grid, 0, len(sheetList))
	for _, sheetName := range sheetList {
		cells, err := readXLSXSheet(f, typer, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		log.Debug().
			Str("sheet", sheetName).
			Int("rows", len(cells)).
			Msg("Read xlsx sheet")
		grids = append(grids, Grid{Name: sheetName, Cells: cells})
	}

	return grids, nil
}

func readXLSXSheet(f *excelize.File, typer *cellTyper, sheetName string) ([][]interface{}, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cells := make([][]interface{}, len(rows))
	for rowIdx, row := range rows {
		out := make([]interface{}, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if out[colIdx], err = typer.value(sheetName, ref, raw); err != nil {
				return nil, fmt.Errorf("cell %s: %w", ref, err)
			}
		}
		cells[rowIdx] = trimRow(out)
	}

	return trimRows(cells), nil
}
