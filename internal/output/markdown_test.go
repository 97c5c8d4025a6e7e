package output

import (
	"bytes"
	"strings"
	"testing"

	"reportdiff/internal/diff"
)

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "## Document Comparison") {
		t.Errorf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "`old.xlsx` → `new.xlsx`") {
		t.Errorf("missing file line:\n%s", out)
	}
	if !strings.Contains(out, "### Text") || !strings.Contains(out, "### Table Sheet1") {
		t.Errorf("missing section headings:\n%s", out)
	}
	if !strings.Contains(out, "| Change | Location | Old | New |") {
		t.Errorf("missing table header:\n%s", out)
	}
	if !strings.Contains(out, "| MODIFIED | Line 2 | 100 | 120 |") {
		t.Errorf("missing modified row:\n%s", out)
	}
}

func TestMarkdownWriter_EscapesPipes(t *testing.T) {
	rep := diff.BuildReport("a", "b", []diff.Difference{
		{Section: "Table T", Type: diff.Added, Location: "Row 1",
			NewValue: strp("Widget | 5")},
	})

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `Widget \| 5`) {
		t.Errorf("pipe not escaped:\n%s", buf.String())
	}
}

func TestMarkdownWriter_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, diff.BuildReport("a", "b", nil)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No factual differences detected") {
		t.Errorf("missing no-changes message:\n%s", buf.String())
	}
}
