package extract

import (
	"encoding/csv"
	"os"

	"reportdiff/internal/document"
)

// Delimited files get a fixed location label so renamed files still pair
// by signature when their header matches.
const delimitedLocation = "Data"

func extractCSV(path string) (document.Content, error) {
	return extractDelimited(path, ',')
}

func extractTSV(path string) (document.Content, error) {
	return extractDelimited(path, '\t')
}

func extractDelimited(path string, comma rune) (document.Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return document.Content{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return document.Content{}, err
	}

	var doc document.Content
	if len(records) == 0 {
		return doc, nil
	}

	header := cleanRow(records[0])
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, cleanRow(rec))
	}
	if emptyGrid(header, rows) {
		return doc, nil
	}

	doc.Tables = []document.Table{{
		Location: delimitedLocation,
		Header:   header,
		Rows:     rows,
	}}
	return doc, nil
}
