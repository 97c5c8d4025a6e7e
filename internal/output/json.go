package output

import (
	"encoding/json"
	"fmt"
	"io"

	"reportdiff/internal/diff"
)

// JSONWriter outputs the full report as indented JSON. Values are written
// verbatim: no HTML escaping, so redaction markers and cell text survive
// untouched for downstream tooling.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *diff.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
