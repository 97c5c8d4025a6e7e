package diff

import (
	"strings"

	"reportdiff/internal/document"
)

// tablePair is one pairing between the two documents. Exactly one side is
// nil for unpaired tables.
type tablePair struct {
	old *document.Table
	new *document.Table
}

// signature is a table's pairing key. It is derived, never stored.
func signature(t document.Table) string {
	return t.Location + "||" + strings.Join(t.Header, "|")
}

// pairTables matches tables across the two documents in two passes:
// exact signature pairing first, in document order, each table consumed at
// most once; then a positional fallback that pairs the i-th remaining old
// table with the i-th remaining new one, tolerating header edits that
// changed the signature. Leftovers come back one-sided.
//
// Pair order follows the old document, with new-only tables appended in new
// document order.
func pairTables(oldTables, newTables []document.Table) []tablePair {
	partner := make([]int, len(oldTables))
	for i := range partner {
		partner[i] = -1
	}
	usedNew := make([]bool, len(newTables))

	// Pass 1: signature pairing.
	for i := range oldTables {
		sig := signature(oldTables[i])
		for j := range newTables {
			if !usedNew[j] && signature(newTables[j]) == sig {
				partner[i] = j
				usedNew[j] = true
				break
			}
		}
	}

	// Pass 2: positional fallback over the remainders.
	var restOld, restNew []int
	for i, p := range partner {
		if p == -1 {
			restOld = append(restOld, i)
		}
	}
	for j, used := range usedNew {
		if !used {
			restNew = append(restNew, j)
		}
	}
	for i := 0; i < len(restOld) && i < len(restNew); i++ {
		partner[restOld[i]] = restNew[i]
		usedNew[restNew[i]] = true
	}

	pairs := make([]tablePair, 0, len(oldTables)+len(newTables))
	for i := range oldTables {
		p := tablePair{old: &oldTables[i]}
		if partner[i] >= 0 {
			p.new = &newTables[partner[i]]
		}
		pairs = append(pairs, p)
	}
	for j := range newTables {
		if !usedNew[j] {
			pairs = append(pairs, tablePair{new: &newTables[j]})
		}
	}
	return pairs
}

// DiffTables pairs the tables of two documents and emits the differences:
// whole-table ADDED/REMOVED for unpaired tables, cell-level comparison for
// paired ones.
func DiffTables(oldTables, newTables []document.Table) []Difference {
	var diffs []Difference
	for _, p := range pairTables(oldTables, newTables) {
		switch {
		case p.new == nil:
			diffs = append(diffs, Difference{
				Section:  "Table " + p.old.Location,
				Type:     Removed,
				Location: "(entire table)",
				OldValue: strp(serializeTable(*p.old)),
			})
		case p.old == nil:
			diffs = append(diffs, Difference{
				Section:  "Table " + p.new.Location,
				Type:     Added,
				Location: "(entire table)",
				NewValue: strp(serializeTable(*p.new)),
			})
		default:
			diffs = append(diffs, diffTable(*p.old, *p.new)...)
		}
	}
	return diffs
}

func serializeTable(t document.Table) string {
	var lines []string
	if len(t.Header) > 0 {
		lines = append(lines, serializeRow(t.Header))
	}
	for _, row := range t.Rows {
		lines = append(lines, serializeRow(row))
	}
	return strings.Join(lines, "\n")
}

func serializeRow(row []string) string {
	return strings.Join(row, " | ")
}
