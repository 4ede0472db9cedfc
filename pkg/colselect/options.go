// Package colselect provides selective column projection across the sheets
// of an Excel workbook.
package colselect

import "time"

// DefaultHeaderRow is the 1-based physical row holding column names.
const DefaultHeaderRow = 2

// DefaultOutputDirName is the directory created next to the source file.
const DefaultOutputDirName = "Selected Data"

// Stage identifies a step of ProjectAndSave reported to a ProgressFunc.
type Stage string

const (
	// StageReading is reported before all sheets are loaded.
	StageReading Stage = "reading"
	// StageFiltering is reported before columns are projected.
	StageFiltering Stage = "filtering"
	// StagePreparing is reported before the output directory is created.
	StagePreparing Stage = "preparing"
	// StageSaving is reported before the output workbook is written.
	StageSaving Stage = "saving"
	// StageDone is reported after the output workbook is in place.
	StageDone Stage = "done"
)

// ProgressFunc receives a stage and the completed fraction in [0, 1].
type ProgressFunc func(stage Stage, fraction float64)

// Options configures loading and writing.
type Options struct {
	// HeaderRow is the 1-based physical row holding column names.
	// If zero, DefaultHeaderRow is used.
	HeaderRow int
	// OutputDirName is the name of the directory created next to the
	// source file. If empty, DefaultOutputDirName is used.
	OutputDirName string
	// Now returns the time used for output file names.
	// If nil, time.Now is used.
	Now func() time.Time
	// Progress is called as ProjectAndSave moves between stages.
	Progress ProgressFunc
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		HeaderRow:     DefaultHeaderRow,
		OutputDirName: DefaultOutputDirName,
		Now:           time.Now,
	}
}

func (o Options) headerRow() int {
	if o.HeaderRow > 0 {
		return o.HeaderRow
	}
	return DefaultHeaderRow
}

func (o Options) outputDirName() string {
	if o.OutputDirName != "" {
		return o.OutputDirName
	}
	return DefaultOutputDirName
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) report(stage Stage, fraction float64) {
	if o.Progress != nil {
		o.Progress(stage, fraction)
	}
}
