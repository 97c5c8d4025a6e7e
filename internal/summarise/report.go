package summarise

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"reportdiff/internal/document"
)

var (
	factualNumberRE = regexp.MustCompile(`(?i)[$€£]?\s*[\d,]+\.?\d*\s*%?` +
		`|[\d,]+\.?\d*\s*(?:million|billion|thousand|mn|bn|k)\b`)

	factualDateRE = regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}` +
		`|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s,]+\d{1,2}[\s,]+\d{2,4}` +
		`|Q[1-4]\s*\d{4}` +
		`|FY\s*\d{2,4}`)
)

// isFactualLine reports whether a line contains numbers, currency, dates, or
// percentages. Such lines carry the document's hard facts and are surfaced
// verbatim in the summary.
func isFactualLine(line string) bool {
	if factualNumberRE.MatchString(line) {
		return true
	}
	if factualDateRE.MatchString(line) {
		return true
	}
	return strings.Contains(line, "%")
}

// ColumnProfile aggregates one table column: how many cells were numeric or
// textual, and min/max/sum over the numeric ones.
type ColumnProfile struct {
	Name         string   `json:"name"`
	NumericCount int      `json:"numeric_count"`
	TextCount    int      `json:"text_count"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	Sum          *float64 `json:"sum,omitempty"`
}

// TableProfile describes one table's shape and per-column statistics. Rows
// are included verbatim only for small tables.
type TableProfile struct {
	Location string          `json:"location"`
	Headers  []string        `json:"headers"`
	RowCount int             `json:"row_count"`
	Columns  []ColumnProfile `json:"columns"`
	Rows     [][]string      `json:"rows,omitempty"`
}

// Tables with at most this many rows are reproduced in full.
const maxProfiledRows = 20

func profileTable(t document.Table) TableProfile {
	cols := make([]ColumnProfile, 0, len(t.Header))
	for i, header := range t.Header {
		cp := ColumnProfile{Name: header}
		sum := 0.0
		for _, row := range t.Rows {
			if i >= len(row) {
				continue
			}
			if num, ok := tryFloatCell(row[i]); ok {
				cp.NumericCount++
				sum += num
				if cp.Min == nil || num < *cp.Min {
					v := num
					cp.Min = &v
				}
				if cp.Max == nil || num > *cp.Max {
					v := num
					cp.Max = &v
				}
			} else if strings.TrimSpace(row[i]) != "" {
				cp.TextCount++
			}
		}
		if cp.NumericCount > 0 {
			cp.Sum = &sum
		}
		cols = append(cols, cp)
	}

	tp := TableProfile{
		Location: t.Location,
		Headers:  t.Header,
		RowCount: len(t.Rows),
		Columns:  cols,
	}
	if len(t.Rows) <= maxProfiledRows {
		tp.Rows = t.Rows
	}
	return tp
}

// Summarise produces a factual, extractive summary of a single document.
// "json" selects the machine shape; anything else the plain listing.
func Summarise(doc document.Content, format string) (string, error) {
	if format == "json" {
		return summariseJSON(doc)
	}
	return summarisePlain(doc), nil
}

func textLinesOf(doc document.Content) []string {
	var out []string
	for _, l := range blockLines(strings.Join(doc.TextBlocks, "\n")) {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func summarisePlain(doc document.Content) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("Report Summary: %s", doc.Filename))
	lines = append(lines, strings.Repeat("=", 56))

	lines = append(lines, fmt.Sprintf("\nFormat : %s", strings.ToUpper(doc.Format)))
	for _, k := range sortedKeys(doc.Metadata) {
		if doc.Metadata[k] != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", k, doc.Metadata[k]))
		}
	}

	textLines := textLinesOf(doc)
	wordCount := 0
	for _, l := range textLines {
		wordCount += len(strings.Fields(l))
	}
	lines = append(lines, fmt.Sprintf("\nText   : %d line(s), ~%d word(s)", len(textLines), wordCount))
	lines = append(lines, fmt.Sprintf("Tables : %d", len(doc.Tables)))

	var factual, other []string
	for _, l := range textLines {
		if isFactualLine(l) {
			factual = append(factual, l)
		} else {
			other = append(other, l)
		}
	}
	if len(factual) > 0 {
		lines = append(lines, fmt.Sprintf("\n--- Key factual lines (%d) ---", len(factual)))
		for _, l := range factual {
			lines = append(lines, fmt.Sprintf("  > %s", strings.TrimSpace(l)))
		}
	}
	if len(other) > 0 {
		lines = append(lines, fmt.Sprintf("\n--- Other text lines (%d) ---", len(other)))
		for _, l := range other {
			lines = append(lines, fmt.Sprintf("    %s", strings.TrimSpace(l)))
		}
	}

	if len(doc.Tables) > 0 {
		lines = append(lines, "\n--- Table profiles ---")
		for _, table := range doc.Tables {
			tp := profileTable(table)
			lines = append(lines, fmt.Sprintf("\n  [%s]  %d data row(s)", tp.Location, tp.RowCount))
			lines = append(lines, fmt.Sprintf("  Headers: %s", strings.Join(tp.Headers, " | ")))
			for _, cp := range tp.Columns {
				switch {
				case cp.NumericCount > 0:
					lines = append(lines, fmt.Sprintf("    %s: %d numeric value(s)  min=%v  max=%v  sum=%v",
						cp.Name, cp.NumericCount, *cp.Min, *cp.Max, *cp.Sum))
				case cp.TextCount > 0:
					lines = append(lines, fmt.Sprintf("    %s: %d text value(s)", cp.Name, cp.TextCount))
				}
			}
			if tp.Rows != nil {
				lines = append(lines, "  Data rows:")
				for ri, row := range tp.Rows {
					lines = append(lines, fmt.Sprintf("    Row %d: %s", ri+1, strings.Join(row, " | ")))
				}
			}
		}
	}

	return strings.Join(lines, "\n")
}

func summariseJSON(doc document.Content) (string, error) {
	textLines := textLinesOf(doc)
	factual := []string{}
	other := []string{}
	wordCount := 0
	for _, l := range textLines {
		wordCount += len(strings.Fields(l))
		if isFactualLine(l) {
			factual = append(factual, strings.TrimSpace(l))
		} else {
			other = append(other, strings.TrimSpace(l))
		}
	}

	profiles := []TableProfile{}
	for _, table := range doc.Tables {
		profiles = append(profiles, profileTable(table))
	}

	out := struct {
		Filename string            `json:"filename"`
		Format   string            `json:"format"`
		Metadata map[string]string `json:"metadata"`
		Text     struct {
			TotalLines      int      `json:"total_lines"`
			WordCount       int      `json:"word_count"`
			KeyFactualLines []string `json:"key_factual_lines"`
			OtherLines      []string `json:"other_lines"`
		} `json:"text"`
		Tables []TableProfile `json:"tables"`
	}{
		Filename: doc.Filename,
		Format:   doc.Format,
		Metadata: doc.Metadata,
		Tables:   profiles,
	}
	out.Text.TotalLines = len(textLines)
	out.Text.WordCount = wordCount
	out.Text.KeyFactualLines = factual
	out.Text.OtherLines = other

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling summary: %w", err)
	}
	return string(data), nil
}
