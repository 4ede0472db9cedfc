package models

// SheetResult reports what was written for one sheet.
type SheetResult struct {
	// Name is the output sheet name (same as the input sheet name).
	Name string `json:"name"`
	// Columns are the columns kept for this sheet, in sheet order.
	Columns []string `json:"columns"`
	// Rows is the number of data rows written.
	Rows int `json:"rows"`
}

// Result reports the outcome of a projection that was saved to disk.
type Result struct {
	// OutputPath is the path of the new workbook.
	OutputPath string `json:"output_path"`
	// Sheets lists per-sheet results in workbook order.
	Sheets []SheetResult `json:"sheets"`
}

// Missing returns the selected names that matched no column in any sheet.
func (r *Result) Missing(sel Selection) []string {
	found := make(map[string]bool)
	for _, s := range r.Sheets {
		for _, c := range s.Columns {
			found[c] = true
		}
	}
	var missing []string
	for _, n := range sel.Names() {
		if !found[n] {
			missing = append(missing, n)
		}
	}
	return missing
}
