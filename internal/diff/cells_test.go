package diff

import (
	"testing"

	"reportdiff/internal/document"
)

func TestDiffTable_SingleCellModified(t *testing.T) {
	oldT := table("Sheet1", []string{"Name", "Qty"}, []string{"Widget", "5"})
	newT := table("Sheet1", []string{"Name", "Qty"}, []string{"Widget", "7"})

	diffs := diffTable(oldT, newT)
	if len(diffs) != 1 {
		t.Fatalf("got %d differences, want 1: %+v", len(diffs), diffs)
	}
	d := diffs[0]
	if d.Section != "Table Sheet1" {
		t.Errorf("Section = %q", d.Section)
	}
	if d.Type != Modified {
		t.Errorf("Type = %s, want MODIFIED", d.Type)
	}
	if d.Location != "Row 1, Col Qty" {
		t.Errorf("Location = %q, want Row 1, Col Qty", d.Location)
	}
	if d.Old() != "5" || d.New() != "7" {
		t.Errorf("values = %q -> %q, want 5 -> 7", d.Old(), d.New())
	}
}

func TestDiffTable_HeaderWidened(t *testing.T) {
	oldT := table("Sheet1", []string{"Q1", "Q2"}, []string{"1", "2"})
	newT := table("Sheet1", []string{"Q1", "Q2", "Q3"}, []string{"1", "2", "3"})

	diffs := diffTable(oldT, newT)
	if len(diffs) != 2 {
		t.Fatalf("got %d differences, want 2: %+v", len(diffs), diffs)
	}

	h := diffs[0]
	if h.Type != Modified || h.Location != "Header" {
		t.Errorf("first record = %s at %q, want MODIFIED Header", h.Type, h.Location)
	}
	if h.Old() != "Q1|Q2" || h.New() != "Q1|Q2|Q3" {
		t.Errorf("header values = %q -> %q", h.Old(), h.New())
	}

	c := diffs[1]
	if c.Location != "Row 1, Col Q3" {
		t.Errorf("cell location = %q, want Row 1, Col Q3", c.Location)
	}
	// The old row has no third cell; it compares as empty, not as a row change.
	if c.Old() != "" || c.New() != "3" {
		t.Errorf("cell values = %q -> %q, want \"\" -> 3", c.Old(), c.New())
	}
}

func TestDiffTable_RowAddedAndRemoved(t *testing.T) {
	oldT := table("Inventory", []string{"Name"},
		[]string{"a"}, []string{"b"}, []string{"c"})
	newT := table("Inventory", []string{"Name"},
		[]string{"a"}, []string{"b"})

	diffs := diffTable(oldT, newT)
	if len(diffs) != 1 {
		t.Fatalf("got %d differences, want 1: %+v", len(diffs), diffs)
	}
	if diffs[0].Type != Removed || diffs[0].Location != "Row 3" {
		t.Errorf("got %s at %q, want REMOVED Row 3", diffs[0].Type, diffs[0].Location)
	}
	if diffs[0].Old() != "c" || diffs[0].NewValue != nil {
		t.Errorf("values = %q / %v", diffs[0].Old(), diffs[0].NewValue)
	}

	diffs = diffTable(newT, oldT)
	if len(diffs) != 1 || diffs[0].Type != Added || diffs[0].Location != "Row 3" {
		t.Fatalf("reverse: got %+v, want single ADDED Row 3", diffs)
	}
}

func TestDiffTable_RowWidthChange(t *testing.T) {
	oldT := table("Data", nil, []string{"x", "y"})
	newT := table("Data", nil, []string{"x"})

	diffs := diffTable(oldT, newT)
	if len(diffs) != 1 {
		t.Fatalf("got %d differences, want 1: %+v", len(diffs), diffs)
	}
	d := diffs[0]
	// No header on either side, so the column is named by position.
	if d.Location != "Row 1, Col 2" {
		t.Errorf("Location = %q, want Row 1, Col 2", d.Location)
	}
	if d.Old() != "y" || d.New() != "" {
		t.Errorf("values = %q -> %q, want y -> \"\"", d.Old(), d.New())
	}
}

func TestDiffTable_MultipleCellsInOrder(t *testing.T) {
	oldT := table("Sheet1", []string{"A", "B"},
		[]string{"1", "2"},
		[]string{"3", "4"})
	newT := table("Sheet1", []string{"A", "B"},
		[]string{"1", "20"},
		[]string{"30", "4"})

	diffs := diffTable(oldT, newT)
	if len(diffs) != 2 {
		t.Fatalf("got %d differences, want 2", len(diffs))
	}
	if diffs[0].Location != "Row 1, Col B" || diffs[1].Location != "Row 2, Col A" {
		t.Errorf("locations = %q, %q", diffs[0].Location, diffs[1].Location)
	}
}

func TestDiffTable_Identical(t *testing.T) {
	tb := table("Sheet1", []string{"A"}, []string{"1"}, []string{"2"})
	if diffs := diffTable(tb, tb); len(diffs) != 0 {
		t.Errorf("self-diff produced %d differences, want 0", len(diffs))
	}
}

func TestColumnLabel(t *testing.T) {
	tests := []struct {
		name      string
		oldHeader []string
		newHeader []string
		c         int
		want      string
	}{
		{"old header wins", []string{"Qty"}, []string{"Count"}, 0, "Qty"},
		{"new header fallback", []string{}, []string{"Q3"}, 0, "Q3"},
		{"past old header", []string{"Q1"}, []string{"Q1", "Q2"}, 1, "Q2"},
		{"empty old cell falls through", []string{""}, []string{"Q1"}, 0, "Q1"},
		{"no header anywhere", nil, nil, 2, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := columnLabel(tt.oldHeader, tt.newHeader, tt.c); got != tt.want {
				t.Errorf("columnLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiffTable_CellHelperPads(t *testing.T) {
	tb := document.Table{Rows: [][]string{{"a"}}}
	if got := tb.Cell(0, 5); got != "" {
		t.Errorf("Cell past row end = %q, want empty", got)
	}
	if got := tb.Cell(3, 0); got != "" {
		t.Errorf("Cell past table end = %q, want empty", got)
	}
}
