package diff

import (
	"fmt"
	"strings"
)

// DiffText aligns the text blocks of two documents line by line and emits a
// Difference per changed region. Blocks are joined with newlines and re-split
// so differences are reported at line granularity. Blank lines are kept;
// they are structurally significant.
func DiffText(oldBlocks, newBlocks []string) []Difference {
	oldLines := splitLines(oldBlocks)
	newLines := splitLines(newBlocks)

	var diffs []Difference
	for _, op := range opcodes(oldLines, newLines) {
		switch op.tag {
		case opEqual:
			// No record for unchanged runs.
		case opInsert:
			diffs = append(diffs, Difference{
				Section:  "Text",
				Type:     Added,
				Location: lineRange(op.j1, op.j2),
				NewValue: strp(strings.Join(newLines[op.j1:op.j2], "\n")),
			})
		case opDelete:
			diffs = append(diffs, Difference{
				Section:  "Text",
				Type:     Removed,
				Location: lineRange(op.i1, op.i2),
				OldValue: strp(strings.Join(oldLines[op.i1:op.i2], "\n")),
			})
		case opReplace:
			diffs = append(diffs, Difference{
				Section:  "Text",
				Type:     Modified,
				Location: lineRange(op.i1, op.i2),
				OldValue: strp(strings.Join(oldLines[op.i1:op.i2], "\n")),
				NewValue: strp(strings.Join(newLines[op.j1:op.j2], "\n")),
			})
		}
	}
	return diffs
}

// splitLines yields one entry per line of the joined blocks. A document of
// nothing but empty blocks still has lines: only a fully empty join produces
// zero, so blank-only documents stay comparable.
func splitLines(blocks []string) []string {
	joined := strings.Join(blocks, "\n")
	if joined == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(joined, "\n"), "\n")
}

// lineRange renders a 0-based half-open range as 1-based inclusive.
func lineRange(start, end int) string {
	if end-start <= 1 {
		return fmt.Sprintf("Line %d", start+1)
	}
	return fmt.Sprintf("Line %d-%d", start+1, end)
}

type opTag int

const (
	opEqual opTag = iota
	opInsert
	opDelete
	opReplace
)

// opcode is one step of an edit script over 0-based half-open ranges:
// a[i1:i2] versus b[j1:j2].
type opcode struct {
	tag            opTag
	i1, i2, j1, j2 int
}

// opcodes computes a coalesced edit script between a and b from a minimal
// edit distance alignment. Adjacent delete/insert regions between two matched
// lines collapse into a single replace. Every line is significant: there is
// no junk-line heuristic, so identical lines always align.
func opcodes(a, b []string) []opcode {
	matches := matchPairs(a, b)
	n, m := len(a), len(b)

	var ops []opcode
	ai, bi := 0, 0
	emitGap := func(i2, j2 int) {
		switch {
		case ai < i2 && bi < j2:
			ops = append(ops, opcode{opReplace, ai, i2, bi, j2})
		case ai < i2:
			ops = append(ops, opcode{opDelete, ai, i2, bi, j2})
		case bi < j2:
			ops = append(ops, opcode{opInsert, ai, i2, bi, j2})
		}
	}

	for _, mt := range matches {
		emitGap(mt[0], mt[1])
		if last := len(ops) - 1; last >= 0 && ops[last].tag == opEqual && ops[last].i2 == mt[0] {
			ops[last].i2 = mt[0] + 1
			ops[last].j2 = mt[1] + 1
		} else {
			ops = append(ops, opcode{opEqual, mt[0], mt[0] + 1, mt[1], mt[1] + 1})
		}
		ai, bi = mt[0]+1, mt[1]+1
	}
	emitGap(n, m)
	return ops
}

// matchPairs returns the (i, j) index pairs with a[i] == b[j] along an
// optimal alignment, ascending, using Myers' O(ND) edit-script algorithm.
func matchPairs(a, b []string) [][2]int {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	limit := n + m
	off := limit
	v := make([]int, 2*limit+1)
	var trace [][]int
	dist := -1

search:
	for d := 0; d <= limit; d++ {
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				trace = append(trace, append([]int(nil), v...))
				dist = d
				break search
			}
		}
		trace = append(trace, append([]int(nil), v...))
	}

	// Walk back from (n, m) through the saved V snapshots, collecting the
	// diagonal runs (matched lines) of each step.
	var matches [][2]int
	x, y := n, m
	for d := dist; d > 0; d-- {
		prev := trace[d-1]
		k := x - y
		var pk int
		if k == -d || (k != d && prev[off+k-1] < prev[off+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		px := prev[off+pk]
		py := px - pk

		// One edit step out of (px, py), then a snake of equal lines.
		sx, sy := px+1, py
		if pk == k+1 {
			sx, sy = px, py+1
		}
		for x > sx && y > sy {
			x--
			y--
			matches = append(matches, [2]int{x, y})
		}
		x, y = px, py
	}
	// Leading snake on the main diagonal (the d == 0 prefix).
	for x > 0 && y > 0 {
		x--
		y--
		matches = append(matches, [2]int{x, y})
	}

	for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
		matches[i], matches[j] = matches[j], matches[i]
	}
	return matches
}
