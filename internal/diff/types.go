package diff

import "github.com/google/uuid"

// ChangeType classifies a single difference.
type ChangeType string

const (
	Added    ChangeType = "ADDED"
	Removed  ChangeType = "REMOVED"
	Modified ChangeType = "MODIFIED"
)

// Difference is one surface-level factual change between two document
// snapshots. OldValue is nil for ADDED records, NewValue nil for REMOVED.
type Difference struct {
	Section  string     `json:"section"`
	Type     ChangeType `json:"change_type"`
	Location string     `json:"location"`
	OldValue *string    `json:"old_value"`
	NewValue *string    `json:"new_value"`
}

// Old returns the old value, or "" when absent.
func (d Difference) Old() string {
	if d.OldValue == nil {
		return ""
	}
	return *d.OldValue
}

// New returns the new value, or "" when absent.
func (d Difference) New() string {
	if d.NewValue == nil {
		return ""
	}
	return *d.NewValue
}

func strp(s string) *string { return &s }

// Report is the top-level output structure handed to renderers.
type Report struct {
	Tool         string       `json:"tool"`
	Version      string       `json:"version"`
	RunID        string       `json:"run_id"`
	OldFile      string       `json:"old_file,omitempty"`
	NewFile      string       `json:"new_file,omitempty"`
	TotalChanges int          `json:"total_changes"`
	Differences  []Difference `json:"differences"`
}

const (
	toolName      = "reportdiff"
	reportVersion = "1.0"
)

// BuildReport wraps a difference list for output.
func BuildReport(oldFile, newFile string, diffs []Difference) *Report {
	if diffs == nil {
		diffs = []Difference{}
	}
	return &Report{
		Tool:         toolName,
		Version:      reportVersion,
		RunID:        uuid.NewString(),
		OldFile:      oldFile,
		NewFile:      newFile,
		TotalChanges: len(diffs),
		Differences:  diffs,
	}
}
