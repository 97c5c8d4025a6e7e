package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"reportdiff/internal/diff"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Tool         string `json:"tool"`
		TotalChanges int    `json:"total_changes"`
		Differences  []struct {
			Section    string  `json:"section"`
			ChangeType string  `json:"change_type"`
			Location   string  `json:"location"`
			OldValue   *string `json:"old_value"`
			NewValue   *string `json:"new_value"`
		} `json:"differences"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Tool != "reportdiff" {
		t.Errorf("tool = %q", decoded.Tool)
	}
	if decoded.TotalChanges != 3 {
		t.Errorf("total_changes = %d, want 3", decoded.TotalChanges)
	}
	if len(decoded.Differences) != 3 {
		t.Fatalf("differences = %d, want 3", len(decoded.Differences))
	}

	added := decoded.Differences[1]
	if added.ChangeType != "ADDED" {
		t.Errorf("change_type = %q", added.ChangeType)
	}
	if added.OldValue != nil {
		t.Error("ADDED old_value should be JSON null")
	}
	if added.NewValue == nil || *added.NewValue != "Gadget | 7" {
		t.Errorf("new_value = %v", added.NewValue)
	}
}

func TestJSONWriter_NoHTMLEscaping(t *testing.T) {
	old := "<section> & co"
	report := diff.BuildReport("a", "b", []diff.Difference{
		{Section: "Text", Type: diff.Removed, Location: "Line 1", OldValue: &old},
	})

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"<section> & co"`)) {
		t.Errorf("angle brackets should not be escaped:\n%s", buf.String())
	}
}

func TestJSONWriter_EmptyDifferencesArray(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, diff.BuildReport("a", "b", nil)); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if _, ok := decoded["differences"].([]any); !ok {
		t.Errorf("differences should be an array, got %T", decoded["differences"])
	}
}
