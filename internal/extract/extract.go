package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"reportdiff/internal/document"
)

type extractFunc func(path string) (document.Content, error)

var extractors = map[string]extractFunc{
	".pdf":  extractPDF,
	".xlsx": extractXLSX,
	".docx": extractDOCX,
	".csv":  extractCSV,
	".tsv":  extractTSV,
	".txt":  extractText,
	".md":   extractText,
}

// Supported returns the recognized file extensions, sorted.
func Supported() []string {
	exts := make([]string, 0, len(extractors))
	for ext := range extractors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// File reads a document and normalizes it into format-agnostic content.
// The extension selects the extractor; unknown extensions are an error.
func File(path string) (document.Content, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := extractors[ext]
	if !ok {
		return document.Content{}, fmt.Errorf("unsupported file type %q (supported: %s)",
			ext, strings.Join(Supported(), ", "))
	}
	if _, err := os.Stat(path); err != nil {
		return document.Content{}, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := fn(path)
	if err != nil {
		return document.Content{}, fmt.Errorf("extracting %s: %w", path, err)
	}
	doc.Filename = filepath.Base(path)
	doc.Format = strings.TrimPrefix(ext, ".")
	if doc.Metadata == nil {
		doc.Metadata = map[string]string{}
	}
	return doc, nil
}

// clean normalizes a raw cell value for comparison.
func clean(s string) string {
	return strings.TrimSpace(s)
}

func cleanRow(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = clean(c)
	}
	return out
}

// emptyGrid reports whether a header and every row hold only empty cells.
func emptyGrid(header []string, rows [][]string) bool {
	for _, h := range header {
		if h != "" {
			return false
		}
	}
	for _, row := range rows {
		for _, c := range row {
			if c != "" {
				return false
			}
		}
	}
	return true
}
