package document

// Table is one extracted table: a human-readable location label (sheet name,
// page number, or table index), an optional header row, and data rows. Rows
// may be ragged; consumers treat cells past a row's end as empty strings.
type Table struct {
	Location string     `json:"location"`
	Header   []string   `json:"header,omitempty"`
	Rows     [][]string `json:"rows"`
}

// Cell returns the cell at column c of row r, or "" when the table has no
// such cell. Short rows are padded conceptually, never mutated.
func (t Table) Cell(r, c int) string {
	if r < 0 || r >= len(t.Rows) {
		return ""
	}
	row := t.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// Content is a normalized document snapshot. Extractors produce it; the
// differ and redactor consume it. Metadata is format-provided and opaque.
type Content struct {
	Filename   string            `json:"filename"`
	Format     string            `json:"format"`
	TextBlocks []string          `json:"text_blocks,omitempty"`
	Tables     []Table           `json:"tables,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}
