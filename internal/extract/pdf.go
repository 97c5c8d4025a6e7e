package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"reportdiff/internal/document"
)

// extractPDF pulls plain text per page; each non-empty page becomes one
// text block. PDFs carry no reliable table structure, so tabular content
// surfaces through the text section.
func extractPDF(path string) (document.Content, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return document.Content{}, err
	}
	defer f.Close()

	var doc document.Content
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single damaged page should not sink the whole document.
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			doc.TextBlocks = append(doc.TextBlocks, text)
		}
	}
	return doc, nil
}
