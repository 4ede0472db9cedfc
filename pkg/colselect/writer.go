package colselect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/ukaji3/colselect-go/pkg/colselect/models"
	"github.com/xuri/excelize/v2"
)

// timestampLayout renders as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

var errNothingToWrite = errors.New("no sheets to write")

// OutputPath returns where WriteWorkbook saves the projection of
// sourcePath: <dir>/<OutputDirName>/<base>_selected_data_<timestamp>.xlsx.
// Two calls within the same second return the same path.
func OutputPath(sourcePath string, opts Options) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	name := fmt.Sprintf("%s_selected_data_%s.xlsx", base, opts.now().Format(timestampLayout))
	return filepath.Join(filepath.Dir(sourcePath), opts.outputDirName(), name)
}

// WriteWorkbook saves every sheet of wb into a new workbook at
// OutputPath(sourcePath, opts), creating the output directory if needed.
// The first row of each sheet holds column names; no index column is
// written. On failure no output file is left behind.
func WriteWorkbook(wb *models.Workbook, sourcePath string, opts Options) (string, error) {
	outPath := OutputPath(sourcePath, opts)
	if len(wb.Sheets) == 0 {
		return "", newError(KindIO, "write", outPath, errNothingToWrite)
	}

	f, err := buildWorkbook(wb)
	if err != nil {
		return "", newError(KindIO, "write", outPath, err)
	}
	defer f.Close()

	opts.report(StagePreparing, 0.6)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return "", newError(KindIO, "write", outPath, err)
	}

	opts.report(StageSaving, 0.8)
	if err := saveAtomic(f, outPath); err != nil {
		return "", newError(KindIO, "write", outPath, err)
	}

	log.Debug().
		Str("path", outPath).
		Int("sheets", len(wb.Sheets)).
		Msg("Wrote workbook")
	return outPath, nil
}

// buildWorkbook renders wb into a new in-memory workbook.
func buildWorkbook(wb *models.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, s := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}

		if err := writeSheet(f, s); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, s models.Sheet) error {
	if len(s.Columns) == 0 {
		return nil
	}

	header := make([]interface{}, len(s.Columns))
	for i, name := range s.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
		return err
	}

	for r, row := range s.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// saveAtomic writes f to a temporary file next to path and renames it into
// place, removing the temporary file on failure.
func saveAtomic(f *excelize.File, path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".colselect-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = f.Write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
