package redact

import (
	"sort"

	"reportdiff/internal/document"
)

// Placeholder is the literal marker substituted for every detected span.
const Placeholder = "[REDACTED]"

// Span is a detected PII occurrence: half-open byte offsets into the scanned
// string plus the matching category's name.
type Span struct {
	Start    int
	End      int
	Category string
}

// Redactor detects and masks PII using an ordered category list. The zero
// value is not usable; construct with New or Default.
type Redactor struct {
	categories []Category
}

// New creates a Redactor over an explicit ordered category list.
func New(categories []Category) *Redactor {
	return &Redactor{categories: categories}
}

// Default creates a Redactor over the built-in category list.
func Default() *Redactor {
	return New(Builtin())
}

// candidate pairs a span with its category's position in the list, which
// breaks ties between equal-length overlapping spans.
type candidate struct {
	span  Span
	order int
}

// Detect returns the disjoint PII spans in text, sorted by start offset.
// Each category finds its own non-overlapping matches independently; when
// spans from different categories collide, the longest survives.
func (r *Redactor) Detect(text string) []Span {
	var raw []candidate
	for order, c := range r.categories {
		for _, loc := range c.pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if c.group > 0 {
				start, end = loc[2*c.group], loc[2*c.group+1]
			}
			if start < 0 || start >= end {
				continue
			}
			if c.valid != nil && !c.valid(text, start, end) {
				continue
			}
			raw = append(raw, candidate{span: Span{Start: start, End: end, Category: c.Name}, order: order})
		}
	}
	return resolveOverlaps(raw)
}

// resolveOverlaps keeps the longest span of any overlapping group, breaking
// length ties by category order, then earliest start. The result is disjoint
// and sorted by start offset.
func resolveOverlaps(raw []candidate) []Span {
	sort.SliceStable(raw, func(i, j int) bool {
		li := raw[i].span.End - raw[i].span.Start
		lj := raw[j].span.End - raw[j].span.Start
		if li != lj {
			return li > lj
		}
		if raw[i].order != raw[j].order {
			return raw[i].order < raw[j].order
		}
		return raw[i].span.Start < raw[j].span.Start
	})

	var kept []Span
	for _, c := range raw {
		overlaps := false
		for _, k := range kept {
			if c.span.Start < k.End && k.Start < c.span.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, c.span)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}

// Redact returns text with every detected span replaced by Placeholder.
// Spans are rewritten right to left so the offsets of unprocessed spans stay
// valid while the string changes length.
func (r *Redactor) Redact(text string) string {
	spans := r.Detect(text)
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		text = text[:s.Start] + Placeholder + text[s.End:]
	}
	return text
}

// RedactRows applies Redact to every cell of a row matrix, preserving shape.
func (r *Redactor) RedactRows(rows [][]string) [][]string {
	if rows == nil {
		return nil
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = r.Redact(cell)
		}
	}
	return out
}

// Document returns a redacted copy of doc: text blocks, table headers, and
// table cells are masked; location labels and metadata pass through.
func (r *Redactor) Document(doc document.Content) document.Content {
	out := document.Content{
		Filename: doc.Filename,
		Format:   doc.Format,
		Metadata: doc.Metadata,
	}
	for _, block := range doc.TextBlocks {
		out.TextBlocks = append(out.TextBlocks, r.Redact(block))
	}
	for _, t := range doc.Tables {
		rt := document.Table{Location: t.Location, Rows: r.RedactRows(t.Rows)}
		for _, h := range t.Header {
			rt.Header = append(rt.Header, r.Redact(h))
		}
		out.Tables = append(out.Tables, rt)
	}
	return out
}
