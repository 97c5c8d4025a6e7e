package output

import (
	"io"
	"strings"

	"reportdiff/internal/diff"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct {
	MaxValueChars int
}

func (m *MarkdownWriter) Write(w io.Writer, report *diff.Report) error {
	ew := &errWriter{w: w}

	ew.printf("## Document Comparison\n\n")
	if report.OldFile != "" || report.NewFile != "" {
		ew.printf("`%s` → `%s`\n\n", report.OldFile, report.NewFile)
	}

	if len(report.Differences) == 0 {
		ew.println("No factual differences detected. :white_check_mark:")
		return ew.err
	}

	ew.printf("**%d change(s) detected**\n\n", report.TotalChanges)

	order, grouped := sectionOrder(report.Differences)
	for _, section := range order {
		ew.printf("### %s\n\n", section)
		ew.println("| Change | Location | Old | New |")
		ew.println("|--------|----------|-----|-----|")
		for _, d := range grouped[section] {
			ew.printf("| %s | %s | %s | %s |\n",
				d.Type,
				mdEscape(d.Location),
				mdEscape(mdValue(d.OldValue, m.MaxValueChars)),
				mdEscape(mdValue(d.NewValue, m.MaxValueChars)),
			)
		}
		ew.println("")
	}

	return ew.err
}

func mdValue(v *string, limit int) string {
	s := capValue(v, limit)
	if s == "(empty)" {
		return ""
	}
	return s
}

// mdEscape keeps cell values from breaking the table layout.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", "<br>")
}
