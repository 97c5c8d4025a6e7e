package extract

import (
	"os"
	"strings"

	"reportdiff/internal/document"
)

// extractText handles plain text and markdown. The whole file becomes a
// single text block with line endings normalized and trailing whitespace
// trimmed per line, so reported line numbers match the file on disk.
func extractText(path string) (document.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Content{}, err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")

	var doc document.Content
	if text == "" {
		return doc, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	doc.TextBlocks = []string{strings.Join(lines, "\n")}
	return doc, nil
}
