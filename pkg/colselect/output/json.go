// Package output serializes selection results for display.
package output

import (
	"encoding/json"

	"github.com/ukaji3/colselect-go/pkg/colselect/models"
)

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ResultToJSON serializes a saved projection report.
func ResultToJSON(res *models.Result, pretty bool) ([]byte, error) {
	return ToJSON(res, pretty)
}

// SummariesToJSON serializes sheet summaries as a JSON array.
func SummariesToJSON(summaries []models.SheetSummary, pretty bool) ([]byte, error) {
	if summaries == nil {
		summaries = []models.SheetSummary{}
	}
	return ToJSON(summaries, pretty)
}

// ErrorObject is the JSON shape of a failed command.
type ErrorObject struct {
	// Error is the human-readable detail.
	Error string `json:"error"`
	// Kind is the error kind (e.g. "InvalidFormat"), when known.
	Kind string `json:"kind,omitempty"`
}
