package output

import (
	"fmt"
	"io"
	"os"

	"reportdiff/internal/diff"
)

// Writer writes a difference report in a specific format.
type Writer interface {
	Write(w io.Writer, report *diff.Report) error
}

// GetWriter returns a writer for the specified format. maxValueChars caps
// how much of each value the human-readable formats print; zero keeps the
// default.
func GetWriter(format string, maxValueChars int) (Writer, error) {
	switch format {
	case "text", "plain":
		return &TextWriter{MaxValueChars: maxValueChars}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{MaxValueChars: maxValueChars}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *diff.Report, format string, maxValueChars int, outPath string) error {
	writer, err := GetWriter(format, maxValueChars)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, report)
}

// sectionOrder returns the distinct sections in first-appearance order with
// their differences, preserving the document order the differ emits.
func sectionOrder(diffs []diff.Difference) ([]string, map[string][]diff.Difference) {
	var order []string
	grouped := make(map[string][]diff.Difference)
	for _, d := range diffs {
		if _, seen := grouped[d.Section]; !seen {
			order = append(order, d.Section)
		}
		grouped[d.Section] = append(grouped[d.Section], d)
	}
	return order, grouped
}

const defaultMaxValueChars = 120

// cap truncates a value for display. Nil values render as "(empty)".
func capValue(v *string, limit int) string {
	if limit <= 0 {
		limit = defaultMaxValueChars
	}
	if v == nil || *v == "" {
		return "(empty)"
	}
	r := []rune(*v)
	if len(r) <= limit {
		return *v
	}
	return string(r[:limit]) + "…"
}
