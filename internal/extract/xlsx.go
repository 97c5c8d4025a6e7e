package extract

import (
	"github.com/xuri/excelize/v2"

	"reportdiff/internal/document"
)

// extractXLSX reads every sheet as one table: first row is the header, the
// rest are data rows. Sheets with no non-empty cell are skipped.
func extractXLSX(path string) (document.Content, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return document.Content{}, err
	}
	defer f.Close()

	var doc document.Content
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return document.Content{}, err
		}
		if len(rows) == 0 {
			continue
		}

		header := cleanRow(rows[0])
		body := make([][]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			body = append(body, cleanRow(row))
		}
		if emptyGrid(header, body) {
			continue
		}

		doc.Tables = append(doc.Tables, document.Table{
			Location: sheet,
			Header:   header,
			Rows:     body,
		})
	}

	props, err := f.GetDocProps()
	if err == nil && props != nil {
		doc.Metadata = map[string]string{}
		if props.Creator != "" {
			doc.Metadata["author"] = props.Creator
		}
		if props.Title != "" {
			doc.Metadata["title"] = props.Title
		}
	}
	return doc, nil
}
