package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"reportdiff/internal/document"
)

// Minimal WordprocessingML shapes. encoding/xml matches on local names, so
// the w: namespace prefixes in the archive are irrelevant here.
type docxBody struct {
	Paragraphs []docxParagraph `xml:"body>p"`
	Tables     []docxTable     `xml:"body>tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Texts []string `xml:"t"`
}

type docxTable struct {
	Rows []docxTableRow `xml:"tr"`
}

type docxTableRow struct {
	Cells []docxTableCell `xml:"tc"`
}

type docxTableCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

type docxCoreProps struct {
	Creator string `xml:"creator"`
	Title   string `xml:"title"`
}

// extractDOCX reads a Word document: non-empty paragraphs become text
// blocks, tables become "Table N" tables with the first row as header.
func extractDOCX(path string) (document.Content, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return document.Content{}, err
	}
	defer zr.Close()

	var body docxBody
	if err := readZipXML(&zr.Reader, "word/document.xml", &body); err != nil {
		return document.Content{}, err
	}

	var doc document.Content
	for _, p := range body.Paragraphs {
		if text := paragraphText(p); text != "" {
			doc.TextBlocks = append(doc.TextBlocks, text)
		}
	}

	for i, tbl := range body.Tables {
		grid := make([][]string, 0, len(tbl.Rows))
		for _, row := range tbl.Rows {
			cells := make([]string, len(row.Cells))
			for c, cell := range row.Cells {
				var parts []string
				for _, p := range cell.Paragraphs {
					if text := paragraphText(p); text != "" {
						parts = append(parts, text)
					}
				}
				cells[c] = strings.Join(parts, "\n")
			}
			grid = append(grid, cells)
		}
		if len(grid) == 0 {
			continue
		}
		doc.Tables = append(doc.Tables, document.Table{
			Location: fmt.Sprintf("Table %d", i+1),
			Header:   grid[0],
			Rows:     grid[1:],
		})
	}

	// Core properties are optional; a missing part is not an error.
	var props docxCoreProps
	if err := readZipXML(&zr.Reader, "docProps/core.xml", &props); err == nil {
		doc.Metadata = map[string]string{
			"author": props.Creator,
			"title":  props.Title,
		}
	}
	return doc, nil
}

func paragraphText(p docxParagraph) string {
	var b strings.Builder
	for _, r := range p.Runs {
		for _, t := range r.Texts {
			b.WriteString(t)
		}
	}
	return strings.TrimSpace(b.String())
}

func readZipXML(zr *zip.Reader, name string, v any) error {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		return xml.NewDecoder(rc).Decode(v)
	}
	return fmt.Errorf("missing archive part %s", name)
}
