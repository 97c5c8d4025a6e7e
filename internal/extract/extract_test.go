package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile_UnsupportedExtension(t *testing.T) {
	_, err := File("report.xyz")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), ".xyz") {
		t.Errorf("error should name the extension: %v", err)
	}
	if !strings.Contains(err.Error(), ".xlsx") {
		t.Errorf("error should list supported extensions: %v", err)
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFile_Text(t *testing.T) {
	path := writeFile(t, "notes.txt", "Revenue grew.\r\n\r\nCosts fell.  \n")

	doc, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Filename != "notes.txt" || doc.Format != "txt" {
		t.Errorf("identity = %q / %q", doc.Filename, doc.Format)
	}
	want := []string{"Revenue grew.\n\nCosts fell."}
	if !reflect.DeepEqual(doc.TextBlocks, want) {
		t.Errorf("TextBlocks = %q, want %q", doc.TextBlocks, want)
	}
	if len(doc.Tables) != 0 {
		t.Errorf("text files should carry no tables, got %d", len(doc.Tables))
	}
}

func TestFile_TextEmpty(t *testing.T) {
	doc, err := File(writeFile(t, "empty.md", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.TextBlocks) != 0 {
		t.Errorf("empty file produced blocks: %q", doc.TextBlocks)
	}
}

func TestFile_CSV(t *testing.T) {
	path := writeFile(t, "inv.csv", "Name, Qty \nWidget,5\nGadget,12\n")

	doc, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.Tables))
	}
	tb := doc.Tables[0]
	if tb.Location != "Data" {
		t.Errorf("Location = %q, want Data", tb.Location)
	}
	if !reflect.DeepEqual(tb.Header, []string{"Name", "Qty"}) {
		t.Errorf("Header = %q", tb.Header)
	}
	if !reflect.DeepEqual(tb.Rows, [][]string{{"Widget", "5"}, {"Gadget", "12"}}) {
		t.Errorf("Rows = %q", tb.Rows)
	}
}

func TestFile_CSVRaggedRows(t *testing.T) {
	doc, err := File(writeFile(t, "ragged.csv", "a,b\n1\n2,3,4\n"))
	if err != nil {
		t.Fatal(err)
	}
	rows := doc.Tables[0].Rows
	if len(rows[0]) != 1 || len(rows[1]) != 3 {
		t.Errorf("ragged widths not preserved: %q", rows)
	}
}

func TestFile_CSVEmpty(t *testing.T) {
	doc, err := File(writeFile(t, "empty.csv", ""))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Tables) != 0 {
		t.Errorf("empty csv produced tables: %+v", doc.Tables)
	}
}

func TestFile_TSV(t *testing.T) {
	doc, err := File(writeFile(t, "inv.tsv", "Name\tQty\nWidget\t5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(doc.Tables[0].Header, []string{"Name", "Qty"}) {
		t.Errorf("Header = %q", doc.Tables[0].Header)
	}
}

const docxDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Quarterly summary.</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">  </w:t></w:r></w:p>
    <w:p><w:r><w:t>Revenue </w:t></w:r><w:r><w:t>grew.</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Qty</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>Widget</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>5</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

const docxCoreXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
 xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:creator>A. Author</dc:creator>
  <dc:title>Q3 Report</dc:title>
</cp:coreProperties>`

func writeDocx(t *testing.T, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile_DOCX(t *testing.T) {
	path := writeDocx(t, map[string]string{
		"word/document.xml": docxDocumentXML,
		"docProps/core.xml": docxCoreXML,
	})

	doc, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	wantText := []string{"Quarterly summary.", "Revenue grew."}
	if !reflect.DeepEqual(doc.TextBlocks, wantText) {
		t.Errorf("TextBlocks = %q, want %q", doc.TextBlocks, wantText)
	}

	if len(doc.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.Tables))
	}
	tb := doc.Tables[0]
	if tb.Location != "Table 1" {
		t.Errorf("Location = %q, want Table 1", tb.Location)
	}
	if !reflect.DeepEqual(tb.Header, []string{"Name", "Qty"}) {
		t.Errorf("Header = %q", tb.Header)
	}
	if !reflect.DeepEqual(tb.Rows, [][]string{{"Widget", "5"}}) {
		t.Errorf("Rows = %q", tb.Rows)
	}

	if doc.Metadata["author"] != "A. Author" || doc.Metadata["title"] != "Q3 Report" {
		t.Errorf("Metadata = %v", doc.Metadata)
	}
}

func TestFile_DOCXWithoutCoreProps(t *testing.T) {
	path := writeDocx(t, map[string]string{"word/document.xml": docxDocumentXML})

	doc, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Metadata == nil {
		t.Error("Metadata should be initialized even without core properties")
	}
}

func TestFile_DOCXMissingDocumentPart(t *testing.T) {
	path := writeDocx(t, map[string]string{"docProps/core.xml": docxCoreXML})
	if _, err := File(path); err == nil {
		t.Fatal("expected error when word/document.xml is missing")
	}
}

func TestSupported(t *testing.T) {
	exts := Supported()
	if !sortedStrings(exts) {
		t.Errorf("Supported() not sorted: %v", exts)
	}
	for _, want := range []string{".csv", ".docx", ".md", ".pdf", ".tsv", ".txt", ".xlsx"} {
		found := false
		for _, ext := range exts {
			if ext == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing extension %s in %v", want, exts)
		}
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestEmptyGrid(t *testing.T) {
	if !emptyGrid([]string{"", ""}, [][]string{{"", ""}}) {
		t.Error("all-empty grid should report empty")
	}
	if emptyGrid([]string{"h"}, nil) {
		t.Error("non-empty header should not report empty")
	}
	if emptyGrid(nil, [][]string{{"", "x"}}) {
		t.Error("non-empty cell should not report empty")
	}
}
