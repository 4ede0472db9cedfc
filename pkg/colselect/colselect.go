package colselect

import (
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/colselect-go/pkg/colselect/models"
	"github.com/ukaji3/colselect-go/pkg/colselect/parser"
)

// ProjectAndSave loads every sheet of the workbook at path, keeps the
// selected columns and writes the result next to the source. It returns
// the output path.
func ProjectAndSave(path string, selected models.Selection, opts Options) (string, error) {
	res, err := ProjectAndSaveResult(path, selected, opts)
	if err != nil {
		return "", err
	}
	return res.OutputPath, nil
}

// ProjectAndSaveResult is ProjectAndSave with a per-sheet report.
func ProjectAndSaveResult(path string, selected models.Selection, opts Options) (*models.Result, error) {
	if selected.Len() == 0 {
		return nil, newError(KindNoSelection, "project", path, ErrNoSelection)
	}
	if _, err := parser.DetectFormat(path); err != nil {
		return nil, newError(KindInvalidFormat, "load", path, err)
	}

	opts.report(StageReading, 0.2)
	wb, err := LoadAllSheets(path, opts)
	if err != nil {
		return nil, err
	}

	opts.report(StageFiltering, 0.4)
	projected, err := Project(wb, selected)
	if err != nil {
		return nil, err
	}

	outPath, err := WriteWorkbook(projected, path, opts)
	if err != nil {
		return nil, err
	}
	opts.report(StageDone, 1.0)

	res := &models.Result{
		OutputPath: outPath,
		Sheets:     make([]models.SheetResult, 0, len(projected.Sheets)),
	}
	for _, s := range projected.Sheets {
		res.Sheets = append(res.Sheets, models.SheetResult{
			Name:    s.Name,
			Columns: s.Columns,
			Rows:    len(s.Rows),
		})
	}

	log.Info().
		Str("source", path).
		Str("output", outPath).
		Int("sheets", len(res.Sheets)).
		Int("selected", selected.Len()).
		Msg("Saved selected columns")
	return res, nil
}
