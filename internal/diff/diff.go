package diff

import "reportdiff/internal/document"

// Compare returns every surface-level factual difference between two
// document snapshots, in document order: the text section first, then tables
// in old-document order, then tables present only in the new document.
// Comparing a document against itself yields an empty list.
func Compare(old, new document.Content) []Difference {
	diffs := DiffText(old.TextBlocks, new.TextBlocks)
	diffs = append(diffs, DiffTables(old.Tables, new.Tables)...)
	return diffs
}
