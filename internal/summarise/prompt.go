package summarise

import (
	"encoding/json"
	"fmt"
	"strings"

	"reportdiff/internal/document"
)

const summarySystemPrompt = `You are a document-summarisation assistant. You will receive the full
extracted content of a single business report - text lines and table data -
in structured JSON format. The data has already been extracted mechanically
and any PII has been redacted.

STRICT RULES - you MUST follow every one:

1. ONLY reference information that is explicitly present in the extracted data
   provided. Do NOT use outside knowledge, business definitions, domain
   expertise, or prior training data about any company, product, or industry.

2. Do NOT hallucinate, assume, infer, or speculate about anything not in the
   data. If something is ambiguous or incomplete, say "data not available"
   rather than guess.

3. Do NOT interpret what any figure means for the business. Report WHAT the
   document contains, not WHAT it implies.

4. Produce your output using this exact structure:

   ## Document Overview
   - Filename, format, and metadata (author, title, etc.) if available.
   - Number of text lines, approximate word count, number of tables.

   ## Key Figures
   List every distinct number, currency amount, percentage, and date that
   appears in the text or tables. For each, state:
   - The exact value as it appears in the data.
   - The context (which line or which table/row/column it came from).
   Group them by section (Text vs each Table).

   ## Text Content Summary
   Summarise the text content in 3-5 concise bullet points. Each bullet
   must quote or closely paraphrase an actual line from the data - do NOT
   add information that isn't there.

   ## Table Summaries
   For each table:
   - Location / sheet name.
   - Column headers.
   - Row count.
   - For numeric columns: min, max, and total.
   - Reproduce the table data in a readable markdown table.

   ## Structural Overview
   One short paragraph describing the overall structure of the document
   (e.g. "The document contains 6 paragraphs of text followed by 1 table
   with 3 columns and 2 data rows").

5. Use neutral, factual language only. No subjective adjectives like
   "impressive", "strong", "concerning".

6. Every piece of data you reference MUST appear verbatim in the JSON input.
   If you cannot find it there, do not mention it.

7. Accuracy is paramount. Double-check every number you quote against the
   source JSON. If a number does not appear in the JSON, do not include it.`

const metricsSystemPrompt = `You are a metric-extraction assistant. You will receive the full extracted
content of a business report - text lines and table data - in structured
JSON format. The data has already been extracted mechanically and any PII
has been redacted.

STRICT RULES - you MUST follow every one:

1. ONLY reference data that is explicitly present in the JSON input. Do NOT
   use outside knowledge, business definitions, or domain expertise.

2. Do NOT hallucinate, assume, infer, or speculate. If a metric's unit or
   context is unclear, label it "unspecified" - do not guess.

3. Your job is to identify every distinct metric, KPI, and measurable data
   point in the document. A "metric" is any labelled or contextualised
   numeric value - including currencies, percentages, counts, ratios, dates
   tied to periods, and numeric table cells with header context.

4. Produce your output using this exact structure:

   ## Document Metadata
   - Filename, format, pages/slides, text lines, word count, tables.
   - All dates and time periods found.
   - Any file-level metadata (author, title, etc.).

   ## Inline Metrics (from text)
   For each metric found in text lines, list:
   - **Label** - the text label or context preceding the number.
   - **Value** - the exact numeric value as it appears.
   - **Parsed value** - the number in standard form (e.g. "$1.2M" -> 1,200,000).
   - **Unit** - currency code, "percent", "ratio", "count", or "unspecified".
   - **Source** - the exact line it was extracted from.

   ## Tabular Metrics (from tables)
   For each table, reproduce it as a markdown table and then list every numeric
   cell as a metric:
   - **Row label** (first column or row index) + **Column header** -> **Value**.

   ## KPI Summary Table
   A consolidated markdown table of ALL metrics (inline + tabular) with columns:
   | # | Label | Value | Unit | Source (text line / table location) |

   ## Statistics
   - Total metrics found.
   - Breakdown: inline vs tabular.
   - Breakdown by unit type (currency, percent, ratio, count, unspecified).

5. Use neutral, factual language. No subjective adjectives.

6. Every value you quote MUST appear verbatim in the JSON input. Double-check
   each number against the source data.

7. Accuracy is paramount. Missing a metric is better than inventing one.`

// SummarySystemPrompt returns the system prompt for the LLM summary pass.
func SummarySystemPrompt() string { return summarySystemPrompt }

// MetricsSystemPrompt returns the system prompt for the LLM metric pass.
func MetricsSystemPrompt() string { return metricsSystemPrompt }

// ContentPayload renders the extracted document as indented JSON: non-blank
// text lines plus every table verbatim. The same payload feeds the prompt
// and the cache key, so cache hits track the exact data sent to the provider.
func ContentPayload(doc document.Content) (string, error) {
	textLines := []string{}
	for _, block := range doc.TextBlocks {
		for _, line := range blockLines(block) {
			if s := strings.TrimSpace(line); s != "" {
				textLines = append(textLines, s)
			}
		}
	}

	type tablePayload struct {
		Location string     `json:"location"`
		Headers  []string   `json:"headers"`
		Rows     [][]string `json:"rows"`
	}
	tables := []tablePayload{}
	for _, t := range doc.Tables {
		tables = append(tables, tablePayload{
			Location: t.Location,
			Headers:  t.Header,
			Rows:     t.Rows,
		})
	}

	payload := struct {
		Filename  string            `json:"filename"`
		Format    string            `json:"format"`
		Metadata  map[string]string `json:"metadata"`
		TextLines []string          `json:"text_lines"`
		Tables    []tablePayload    `json:"tables"`
	}{
		Filename:  doc.Filename,
		Format:    doc.Format,
		Metadata:  doc.Metadata,
		TextLines: textLines,
		Tables:    tables,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling document content: %w", err)
	}
	return string(data), nil
}

// BuildSummaryPrompt wraps the content payload in the summary user message.
func BuildSummaryPrompt(doc document.Content) (string, error) {
	payload, err := ContentPayload(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Below is the full extracted content of a business report (JSON). "+
		"Summarise it following your instructions exactly.\n\n```json\n%s\n```", payload), nil
}

// BuildMetricsPrompt wraps the content payload in the metric-extraction user
// message.
func BuildMetricsPrompt(doc document.Content) (string, error) {
	payload, err := ContentPayload(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Below is the full extracted content of a business report (JSON). "+
		"Extract every metric, KPI, and measurable data point following "+
		"your instructions exactly.\n\n```json\n%s\n```", payload), nil
}
