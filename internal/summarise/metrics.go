package summarise

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reportdiff/internal/document"
)

// DocumentMeta describes a document's file properties and structure.
type DocumentMeta struct {
	Filename      string            `json:"filename"`
	Format        string            `json:"format"`
	FileMetadata  map[string]string `json:"file_metadata"`
	TextLineCount int               `json:"text_line_count"`
	WordCount     int               `json:"word_count"`
	TableCount    int               `json:"table_count"`
	PagesOrSlides int               `json:"pages_or_slides"`
	DatesFound    []string          `json:"dates_found"`
}

// InlineMetric is a labelled numeric value found in running text.
type InlineMetric struct {
	Label        string   `json:"label"`
	RawValue     string   `json:"raw_value"`
	NumericValue *float64 `json:"numeric_value"`
	Unit         string   `json:"unit"`
	SourceLine   string   `json:"source_line"`
	LineNumber   int      `json:"line_number"`
}

// TabularMetric is a numeric cell in a table, with row and column context.
type TabularMetric struct {
	TableLocation string  `json:"table_location"`
	ColumnHeader  string  `json:"column_header"`
	RowLabel      string  `json:"row_label"`
	RawValue      string  `json:"raw_value"`
	NumericValue  float64 `json:"numeric_value"`
	RowIndex      int     `json:"row_index"`
	ColIndex      int     `json:"col_index"`
}

// ExtractionResult bundles everything the metric pass found.
type ExtractionResult struct {
	Metadata       DocumentMeta
	InlineMetrics  []InlineMetric
	TabularMetrics []TabularMetric
}

var (
	// Labelled metric: "Some Label: $1,234.56" or "Some Label = 14.5%".
	labelledMetricRE = regexp.MustCompile(`(?i)([A-Za-z][A-Za-z0-9 /&-]{1,60}?)\s*[:=–—-]\s*((?:[$€£¥₹]\s*)?-?[\d,]+\.?\d*(?:\s*(?:million|billion|thousand|mn|bn|k|m|b)\b)?\s*%?)`)

	// Ratio: "Current Ratio: 3.5:1".
	ratioRE = regexp.MustCompile(`([A-Za-z][A-Za-z0-9 /&-]{1,40}?)\s*[:=–—-]\s*(\d+\.?\d*\s*:\s*\d+\.?\d*)`)

	metricDateRE = regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}` +
		`|(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*[\s,]+\d{1,2}[\s,]*\d{2,4}` +
		`|Q[1-4]\s*['’]?\d{2,4}` +
		`|FY\s*['’]?\d{2,4}` +
		`|20\d{2}|19\d{2}`)

	ratioValueRE = regexp.MustCompile(`^\d+\.?\d*\s*:\s*\d+\.?\d*`)
)

// Suffix multipliers, longest first so "million" is not consumed as "m".
var multipliers = []struct {
	suffix string
	mult   float64
}{
	{"thousand", 1e3},
	{"million", 1e6},
	{"billion", 1e9},
	{"mn", 1e6},
	{"bn", 1e9},
	{"k", 1e3},
	{"m", 1e6},
	{"b", 1e9},
}

// parseNumeric converts a raw metric value like "$1.2M" or "14.5%" into a
// plain number, applying scale-word multipliers.
func parseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimRight(s, "%")
	for _, sym := range []string{"$", "€", "£", "¥", "₹"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))

	mult := 1.0
	lower := strings.ToLower(s)
	for _, m := range multipliers {
		if strings.HasSuffix(lower, m.suffix) {
			s = strings.TrimSpace(s[:len(s)-len(m.suffix)])
			mult = m.mult
			break
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v * mult, true
}

func detectUnit(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "%") {
		return "percent"
	}
	currencies := []struct{ sym, name string }{
		{"$", "USD"}, {"€", "EUR"}, {"£", "GBP"}, {"¥", "JPY"}, {"₹", "INR"},
	}
	for _, c := range currencies {
		if strings.Contains(raw, c.sym) {
			return c.name
		}
	}
	if strings.Contains(raw, ":") && ratioValueRE.MatchString(raw) {
		return "ratio"
	}
	return "number"
}

// tryFloatCell parses a table cell as a number, tolerating separators,
// currency symbols, and a trailing percent sign.
func tryFloatCell(val string) (float64, bool) {
	cleaned := strings.NewReplacer(",", "", "$", "", "€", "", "£", "").Replace(val)
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimRight(cleaned, "%")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// blockLines splits a text block into lines without introducing a trailing
// empty line for a terminal newline. An empty block has no lines.
func blockLines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(block, "\n"), "\n")
}

func extractMetadata(doc document.Content) DocumentMeta {
	allText := strings.Join(doc.TextBlocks, "\n")

	var textLines []string
	for _, l := range blockLines(allText) {
		if strings.TrimSpace(l) != "" {
			textLines = append(textLines, l)
		}
	}
	wordCount := 0
	for _, l := range textLines {
		wordCount += len(strings.Fields(l))
	}

	dates := []string{}
	seen := make(map[string]bool)
	for _, d := range metricDateRE.FindAllString(allText, -1) {
		d = strings.TrimSpace(d)
		if !seen[d] {
			dates = append(dates, d)
			seen[d] = true
		}
	}

	return DocumentMeta{
		Filename:      doc.Filename,
		Format:        doc.Format,
		FileMetadata:  doc.Metadata,
		TextLineCount: len(textLines),
		WordCount:     wordCount,
		TableCount:    len(doc.Tables),
		PagesOrSlides: len(doc.TextBlocks),
		DatesFound:    dates,
	}
}

func extractInlineMetrics(doc document.Content) []InlineMetric {
	var metrics []InlineMetric
	type spanKey struct{ line, start, end int }
	seen := make(map[spanKey]bool)
	lineNum := 0

	for _, block := range doc.TextBlocks {
		for _, line := range blockLines(block) {
			lineNum++
			stripped := strings.TrimSpace(line)
			if stripped == "" {
				continue
			}

			for _, loc := range labelledMetricRE.FindAllStringSubmatchIndex(stripped, -1) {
				key := spanKey{lineNum, loc[0], loc[1]}
				if seen[key] {
					continue
				}
				seen[key] = true

				rawVal := strings.TrimSpace(stripped[loc[4]:loc[5]])
				m := InlineMetric{
					Label:      strings.TrimSpace(stripped[loc[2]:loc[3]]),
					RawValue:   rawVal,
					Unit:       detectUnit(rawVal),
					SourceLine: stripped,
					LineNumber: lineNum,
				}
				if v, ok := parseNumeric(rawVal); ok {
					m.NumericValue = &v
				}
				metrics = append(metrics, m)
			}

			for _, loc := range ratioRE.FindAllStringSubmatchIndex(stripped, -1) {
				key := spanKey{lineNum, loc[0], loc[1]}
				if seen[key] {
					continue
				}
				seen[key] = true
				metrics = append(metrics, InlineMetric{
					Label:      strings.TrimSpace(stripped[loc[2]:loc[3]]),
					RawValue:   strings.TrimSpace(stripped[loc[4]:loc[5]]),
					Unit:       "ratio",
					SourceLine: stripped,
					LineNumber: lineNum,
				})
			}
		}
	}
	return metrics
}

func extractTabularMetrics(doc document.Content) []TabularMetric {
	var metrics []TabularMetric

	for _, table := range doc.Tables {
		// The first column is treated as row labels unless most of its
		// values are numeric.
		firstColIsLabel := true
		if len(table.Header) > 0 && len(table.Rows) > 0 {
			numFirst := 0
			for _, r := range table.Rows {
				if len(r) > 0 {
					if _, ok := tryFloatCell(r[0]); ok {
						numFirst++
					}
				}
			}
			if float64(numFirst) > float64(len(table.Rows))*0.5 {
				firstColIsLabel = false
			}
		}

		for ri, row := range table.Rows {
			rowLabel := fmt.Sprintf("Row %d", ri+1)
			if firstColIsLabel && len(row) > 0 {
				rowLabel = row[0]
			}

			for ci, cell := range row {
				if firstColIsLabel && ci == 0 {
					continue
				}
				num, ok := tryFloatCell(cell)
				if !ok {
					continue
				}

				colHeader := fmt.Sprintf("Col %d", ci+1)
				if ci < len(table.Header) {
					colHeader = table.Header[ci]
				}

				metrics = append(metrics, TabularMetric{
					TableLocation: table.Location,
					ColumnHeader:  colHeader,
					RowLabel:      rowLabel,
					RawValue:      strings.TrimSpace(cell),
					NumericValue:  num,
					RowIndex:      ri + 1,
					ColIndex:      ci + 1,
				})
			}
		}
	}
	return metrics
}

// ExtractMetrics finds the document's metadata, inline metrics, and tabular
// metrics. Detection is pattern-based and attaches no meaning to any label.
func ExtractMetrics(doc document.Content) ExtractionResult {
	return ExtractionResult{
		Metadata:       extractMetadata(doc),
		InlineMetrics:  extractInlineMetrics(doc),
		TabularMetrics: extractTabularMetrics(doc),
	}
}

var groupedPrinter = message.NewPrinter(language.English)

// groupedNumber renders a parsed value with thousands separators, e.g.
// 1200000 as "1,200,000.00".
func groupedNumber(v float64) string {
	return groupedPrinter.Sprintf("%.2f", v)
}

// FormatMetrics renders an extraction result. "json" produces the machine
// shape; anything else the plain listing.
func FormatMetrics(result ExtractionResult, format string) (string, error) {
	if format == "json" {
		return formatMetricsJSON(result)
	}
	return formatMetricsPlain(result), nil
}

func formatMetricsPlain(result ExtractionResult) string {
	var lines []string
	m := result.Metadata

	lines = append(lines, fmt.Sprintf("Metric Extraction: %s", m.Filename))
	lines = append(lines, strings.Repeat("=", 60))

	lines = append(lines, "\n── Document Metadata ──")
	lines = append(lines, fmt.Sprintf("  Format         : %s", strings.ToUpper(m.Format)))
	lines = append(lines, fmt.Sprintf("  Pages/Slides   : %d", m.PagesOrSlides))
	lines = append(lines, fmt.Sprintf("  Text lines     : %d", m.TextLineCount))
	lines = append(lines, fmt.Sprintf("  Word count     : ~%d", m.WordCount))
	lines = append(lines, fmt.Sprintf("  Tables         : %d", m.TableCount))
	for _, k := range sortedKeys(m.FileMetadata) {
		if m.FileMetadata[k] != "" {
			lines = append(lines, fmt.Sprintf("  %s: %s", k, m.FileMetadata[k]))
		}
	}
	if len(m.DatesFound) > 0 {
		lines = append(lines, fmt.Sprintf("  Dates found    : %s", strings.Join(m.DatesFound, ", ")))
	}

	if len(result.InlineMetrics) > 0 {
		lines = append(lines, fmt.Sprintf("\n── Inline Metrics (%d) ──", len(result.InlineMetrics)))
		for _, im := range result.InlineMetrics {
			nv := ""
			if im.NumericValue != nil {
				nv = fmt.Sprintf(" (= %s)", groupedNumber(*im.NumericValue))
			}
			lines = append(lines, fmt.Sprintf("  %s: %s  [%s]%s", im.Label, im.RawValue, im.Unit, nv))
			lines = append(lines, fmt.Sprintf("      source: %q  (line %d)", im.SourceLine, im.LineNumber))
		}
	}

	if len(result.TabularMetrics) > 0 {
		var order []string
		byTable := make(map[string][]TabularMetric)
		for _, tm := range result.TabularMetrics {
			if _, ok := byTable[tm.TableLocation]; !ok {
				order = append(order, tm.TableLocation)
			}
			byTable[tm.TableLocation] = append(byTable[tm.TableLocation], tm)
		}

		lines = append(lines, fmt.Sprintf("\n── Tabular Metrics (%d) ──", len(result.TabularMetrics)))
		for _, loc := range order {
			lines = append(lines, fmt.Sprintf("\n  [%s]", loc))
			for _, tm := range byTable[loc] {
				lines = append(lines, fmt.Sprintf("    %s / %s: %s  (= %s)",
					tm.RowLabel, tm.ColumnHeader, tm.RawValue, groupedNumber(tm.NumericValue)))
			}
		}
	}

	total := len(result.InlineMetrics) + len(result.TabularMetrics)
	lines = append(lines, "\n── Summary ──")
	lines = append(lines, fmt.Sprintf("  Total metrics found : %d", total))
	lines = append(lines, fmt.Sprintf("  Inline (text)       : %d", len(result.InlineMetrics)))
	lines = append(lines, fmt.Sprintf("  Tabular (tables)    : %d", len(result.TabularMetrics)))

	return strings.Join(lines, "\n")
}

func formatMetricsJSON(result ExtractionResult) (string, error) {
	inline := result.InlineMetrics
	if inline == nil {
		inline = []InlineMetric{}
	}
	tabular := result.TabularMetrics
	if tabular == nil {
		tabular = []TabularMetric{}
	}

	out := struct {
		Metadata       DocumentMeta    `json:"metadata"`
		InlineMetrics  []InlineMetric  `json:"inline_metrics"`
		TabularMetrics []TabularMetric `json:"tabular_metrics"`
		Summary        struct {
			TotalMetrics int `json:"total_metrics"`
			InlineCount  int `json:"inline_count"`
			TabularCount int `json:"tabular_count"`
		} `json:"summary"`
	}{
		Metadata:       result.Metadata,
		InlineMetrics:  inline,
		TabularMetrics: tabular,
	}
	out.Summary.TotalMetrics = len(inline) + len(tabular)
	out.Summary.InlineCount = len(inline)
	out.Summary.TabularCount = len(tabular)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling metrics: %w", err)
	}
	return string(data), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
