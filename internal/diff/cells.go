package diff

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"reportdiff/internal/document"
)

// diffTable compares one paired (old, new) table. A header change emits
// exactly one MODIFIED record; rows present on both sides are always
// compared cell by cell, never reported as a single row change; rows on one
// side only become row-level ADDED/REMOVED records.
func diffTable(oldT, newT document.Table) []Difference {
	section := "Table " + oldT.Location
	var diffs []Difference

	if !slices.Equal(oldT.Header, newT.Header) {
		diffs = append(diffs, Difference{
			Section:  section,
			Type:     Modified,
			Location: "Header",
			OldValue: strp(strings.Join(oldT.Header, "|")),
			NewValue: strp(strings.Join(newT.Header, "|")),
		})
	}

	rows := max(len(oldT.Rows), len(newT.Rows))
	for r := 0; r < rows; r++ {
		switch {
		case r >= len(newT.Rows):
			diffs = append(diffs, Difference{
				Section:  section,
				Type:     Removed,
				Location: fmt.Sprintf("Row %d", r+1),
				OldValue: strp(serializeRow(oldT.Rows[r])),
			})
		case r >= len(oldT.Rows):
			diffs = append(diffs, Difference{
				Section:  section,
				Type:     Added,
				Location: fmt.Sprintf("Row %d", r+1),
				NewValue: strp(serializeRow(newT.Rows[r])),
			})
		default:
			// Cells past a row's end compare as empty strings, so a row
			// that changed width surfaces as cell edits in the widened
			// columns.
			width := max(len(oldT.Rows[r]), len(newT.Rows[r]))
			for c := 0; c < width; c++ {
				ov := oldT.Cell(r, c)
				nv := newT.Cell(r, c)
				if ov == nv {
					continue
				}
				diffs = append(diffs, Difference{
					Section:  section,
					Type:     Modified,
					Location: fmt.Sprintf("Row %d, Col %s", r+1, columnLabel(oldT.Header, newT.Header, c)),
					OldValue: strp(ov),
					NewValue: strp(nv),
				})
			}
		}
	}
	return diffs
}

// columnLabel names a column by its header when one exists at that index,
// preferring the old header, otherwise by 1-based position.
func columnLabel(oldHeader, newHeader []string, c int) string {
	if c < len(oldHeader) && oldHeader[c] != "" {
		return oldHeader[c]
	}
	if c < len(newHeader) && newHeader[c] != "" {
		return newHeader[c]
	}
	return strconv.Itoa(c + 1)
}
