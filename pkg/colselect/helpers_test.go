package colselect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixtureSheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

// writeFixture saves a workbook whose sheets carry a title in row 1, the
// header in row 2 and data from row 3.
func writeFixture(t *testing.T, dir, name string, sheets ...fixtureSheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}

		title := []interface{}{"Report " + s.name}
		require.NoError(t, f.SetSheetRow(s.name, "A1", &title))
		require.NoError(t, f.SetSheetRow(s.name, "A2", &s.header))
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+3)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// scenarioWorkbook writes data.xlsx with Sheet1 (A,B,C) and Sheet2 (B,D).
func scenarioWorkbook(t *testing.T, dir string) string {
	t.Helper()
	return writeFixture(t, dir, "data.xlsx",
		fixtureSheet{
			name:   "Sheet1",
			header: []interface{}{"A", "B", "C"},
			rows: [][]interface{}{
				{int64(1), "x", 2.5},
				{int64(2), "y", 3.5},
				{int64(3), "z", 4.5},
			},
		},
		fixtureSheet{
			name:   "Sheet2",
			header: []interface{}{"B", "D"},
			rows: [][]interface{}{
				{"b1", int64(10)},
				{"b2", int64(20)},
			},
		},
	)
}

// copyFixture copies testdata/name into dir so outputs land beside the copy.
func copyFixture(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
