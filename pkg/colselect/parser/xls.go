package parser

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/rs/zerolog/log"
)

// xlsCharset is the charset passed to the BIFF reader for byte strings.
const xlsCharset = "utf-8"

// ReadXLS reads cell grids from a legacy BIFF workbook. Cell text is typed
// with parseValue since the format reader only exposes displayed text.
func ReadXLS(path string, firstOnly bool) (grids []Grid, err error) {
	// The BIFF reader panics on malformed records.
	defer func() {
		if r := recover(); r != nil {
			grids, err = nil, fmt.Errorf("malformed xls workbook: %v", r)
		}
	}()

	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, err
	}

	n := wb.NumSheets()
	if firstOnly && n > 1 {
		n = 1
	}

	grids = make([]Grid, 0, n)
	for i := 0; i < n; i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			return nil, fmt.Errorf("sheet %d could not be read", i)
		}
		cells := readXLSSheet(ws)
		log.Debug().
			Str("sheet", ws.Name).
			Int("rows", len(cells)).
			Msg("Read xls sheet")
		grids = append(grids, Grid{Name: ws.Name, Cells: cells})
	}

	return grids, nil
}

func readXLSSheet(ws *xls.WorkSheet) [][]interface{} {
	var cells [][]interface{}
	for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
		row := xlsRow(ws, rowIdx)
		if row == nil {
			cells = append(cells, nil)
			continue
		}
		// LastCol is inclusive in some writers and exclusive in others;
		// reading one past it and trimming handles both.
		out := make([]interface{}, 0, row.LastCol()+1)
		for colIdx := 0; colIdx <= row.LastCol(); colIdx++ {
			text := row.Col(colIdx)
			if text == "" {
				out = append(out, nil)
				continue
			}
			out = append(out, parseValue(text))
		}
		cells = append(cells, trimRow(out))
	}
	return trimRows(cells)
}

// xlsRow returns the row at index i, or nil when the sheet has no record for
// it. WorkSheet.Row dereferences missing rows, so blank rows and empty sheets
// panic inside the reader.
func xlsRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}
