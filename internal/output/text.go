package output

import (
	"fmt"
	"io"
	"strings"

	"reportdiff/internal/diff"
)

// TextWriter outputs a human-readable plain-text summary.
type TextWriter struct {
	MaxValueChars int
}

func (t *TextWriter) Write(w io.Writer, report *diff.Report) error {
	ew := &errWriter{w: w}

	if len(report.Differences) == 0 {
		ew.println("No factual differences detected between the two document versions.")
		return ew.err
	}

	ew.printf("Difference Summary  (%d change(s) detected)\n", report.TotalChanges)
	ew.println(strings.Repeat("=", 56))

	order, grouped := sectionOrder(report.Differences)
	for _, section := range order {
		ew.printf("\n[%s]\n", section)
		for _, d := range grouped[section] {
			switch d.Type {
			case diff.Added:
				ew.printf("  + ADDED at %s: %s\n", d.Location, capValue(d.NewValue, t.MaxValueChars))
			case diff.Removed:
				ew.printf("  - REMOVED at %s: %s\n", d.Location, capValue(d.OldValue, t.MaxValueChars))
			default:
				ew.printf("  ~ CHANGED at %s:\n", d.Location)
				ew.printf("      was: %s\n", capValue(d.OldValue, t.MaxValueChars))
				ew.printf("      now: %s\n", capValue(d.NewValue, t.MaxValueChars))
			}
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
