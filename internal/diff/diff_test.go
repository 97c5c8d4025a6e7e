package diff

import (
	"testing"

	"reportdiff/internal/document"
)

func TestCompare_Identical(t *testing.T) {
	doc := document.Content{
		Filename:   "report.xlsx",
		TextBlocks: []string{"Summary", "All good"},
		Tables: []document.Table{
			table("Sheet1", []string{"A"}, []string{"1"}),
		},
	}
	if diffs := Compare(doc, doc); len(diffs) != 0 {
		t.Errorf("self-compare produced %d differences, want 0", len(diffs))
	}
}

func TestCompare_TextBeforeTables(t *testing.T) {
	oldDoc := document.Content{
		TextBlocks: []string{"Revenue 100"},
		Tables:     []document.Table{table("Sheet1", []string{"A"}, []string{"1"})},
	}
	newDoc := document.Content{
		TextBlocks: []string{"Revenue 120"},
		Tables:     []document.Table{table("Sheet1", []string{"A"}, []string{"2"})},
	}

	diffs := Compare(oldDoc, newDoc)
	if len(diffs) != 2 {
		t.Fatalf("got %d differences, want 2: %+v", len(diffs), diffs)
	}
	if diffs[0].Section != "Text" {
		t.Errorf("first section = %q, want Text", diffs[0].Section)
	}
	if diffs[1].Section != "Table Sheet1" {
		t.Errorf("second section = %q, want Table Sheet1", diffs[1].Section)
	}
}

func TestCompare_Antisymmetry(t *testing.T) {
	oldDoc := document.Content{
		TextBlocks: []string{"a", "b"},
		Tables:     []document.Table{table("T", []string{"x"}, []string{"1"})},
	}
	newDoc := document.Content{
		TextBlocks: []string{"a", "B"},
		Tables: []document.Table{
			table("T", []string{"x"}, []string{"2"}),
			table("Extra", nil, []string{"z"}),
		},
	}

	forward := Compare(oldDoc, newDoc)
	backward := Compare(newDoc, oldDoc)
	if len(forward) != len(backward) {
		t.Fatalf("lengths differ: %d vs %d", len(forward), len(backward))
	}
	for i, f := range forward {
		b := backward[i]
		if f.Old() != b.New() || f.New() != b.Old() {
			t.Errorf("record %d values not swapped: %+v vs %+v", i, f, b)
		}
		switch f.Type {
		case Added:
			if b.Type != Removed {
				t.Errorf("record %d: ADDED should flip to REMOVED, got %s", i, b.Type)
			}
		case Removed:
			if b.Type != Added {
				t.Errorf("record %d: REMOVED should flip to ADDED, got %s", i, b.Type)
			}
		default:
			if b.Type != Modified {
				t.Errorf("record %d: MODIFIED should stay, got %s", i, b.Type)
			}
		}
	}
}

func TestBuildReport(t *testing.T) {
	diffs := []Difference{
		{Section: "Text", Type: Modified, Location: "Line 1", OldValue: strp("a"), NewValue: strp("b")},
		{Section: "Table T", Type: Added, Location: "Row 2", NewValue: strp("x")},
	}

	rep := BuildReport("old.pdf", "new.pdf", diffs)
	if rep.Tool != "reportdiff" {
		t.Errorf("Tool = %q", rep.Tool)
	}
	if rep.Version != "1.0" {
		t.Errorf("Version = %q", rep.Version)
	}
	if rep.RunID == "" {
		t.Error("RunID should be set")
	}
	if rep.OldFile != "old.pdf" || rep.NewFile != "new.pdf" {
		t.Errorf("files = %q, %q", rep.OldFile, rep.NewFile)
	}
	if rep.TotalChanges != 2 {
		t.Errorf("TotalChanges = %d, want 2", rep.TotalChanges)
	}

	again := BuildReport("old.pdf", "new.pdf", diffs)
	if again.RunID == rep.RunID {
		t.Error("RunID should be unique per run")
	}
}

func TestBuildReport_EmptyDiffs(t *testing.T) {
	rep := BuildReport("a", "b", nil)
	if rep.TotalChanges != 0 {
		t.Errorf("TotalChanges = %d, want 0", rep.TotalChanges)
	}
	if rep.Differences == nil {
		t.Error("Differences should be an empty slice, not nil, for stable JSON")
	}
}
