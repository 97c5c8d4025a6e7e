// Package diff mechanically compares two normalized document snapshots and
// reports every surface-level factual change.
//
// Text blocks are aligned line by line with a Myers minimal edit script.
// Every line is significant, with no junk-line heuristics, so the result is
// deterministic and never silently drops a difference. Tables are paired by
// structural signature (location label plus header row) with a positional
// fallback for tables whose header changed, then compared header, row, and
// cell at a time.
//
// The comparison is purely mechanical: no business meaning is attached to
// any value. All inputs are treated as immutable and every Difference is
// freshly constructed, so concurrent callers just need independent
// snapshots.
package diff
