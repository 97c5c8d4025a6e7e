package analyse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reportdiff/internal/config"
	"reportdiff/internal/diff"
)

func strp(s string) *string { return &s }

func sampleDiffs() []diff.Difference {
	return []diff.Difference{
		{Section: "Text", Type: diff.Modified, Location: "Line 2",
			OldValue: strp("100"), NewValue: strp("120")},
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.LLM.Provider = "openai"
	cfg.Cache.Enabled = false
	return cfg
}

// openaiStub answers the OpenAI chat completions shape with a fixed body.
func openaiStub(t *testing.T, content string, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
			"usage": map[string]any{"total_tokens": 10},
		})
	}))
}

func TestRun_EmptyDiff(t *testing.T) {
	got, err := Run(context.Background(), nil, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got != NoChangesMessage {
		t.Errorf("Run = %q, want no-changes message", got)
	}
}

func TestRun_SendsDiffAndReturnsAnalysis(t *testing.T) {
	var sawPayload string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		for _, m := range req.Messages {
			if m.Role == "user" {
				sawPayload = m.Content
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "## Executive Overview"}},
			},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("REPORTDIFF_OPENAI_BASE_URL", server.URL)

	got, err := Run(context.Background(), sampleDiffs(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got != "## Executive Overview" {
		t.Errorf("Run = %q", got)
	}
	if !strings.Contains(sawPayload, `"change_type": "MODIFIED"`) {
		t.Errorf("user prompt missing diff payload: %q", sawPayload)
	}
	if !strings.Contains(sawPayload, "```json") {
		t.Errorf("user prompt missing json fence: %q", sawPayload)
	}
}

func TestRun_CachesResponse(t *testing.T) {
	hits := 0
	server := openaiStub(t, "cached analysis", &hits)
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("REPORTDIFF_OPENAI_BASE_URL", server.URL)

	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = t.TempDir()

	for i := 0; i < 2; i++ {
		got, err := Run(context.Background(), sampleDiffs(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if got != "cached analysis" {
			t.Errorf("run %d = %q", i, got)
		}
	}
	if hits != 1 {
		t.Errorf("provider called %d times, want 1 (second run should hit cache)", hits)
	}
}

func TestRun_MaxDiffsCap(t *testing.T) {
	var sawPayload string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for _, m := range req.Messages {
			if m.Role == "user" {
				sawPayload = m.Content
			}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("REPORTDIFF_OPENAI_BASE_URL", server.URL)

	cfg := testConfig()
	cfg.LLM.MaxDiffs = 1
	diffs := []diff.Difference{
		{Section: "Text", Type: diff.Modified, Location: "Line 1", OldValue: strp("a"), NewValue: strp("b")},
		{Section: "Text", Type: diff.Modified, Location: "Line 9", OldValue: strp("x"), NewValue: strp("y")},
	}

	if _, err := Run(context.Background(), diffs, cfg); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sawPayload, "Line 9") {
		t.Error("payload should be capped at llm.maxDiffs records")
	}
	if !strings.Contains(sawPayload, "Line 1") {
		t.Error("payload should keep the leading records")
	}
}

func TestRun_ProviderError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := testConfig()
	if _, err := Run(context.Background(), sampleDiffs(), cfg); err == nil {
		t.Fatal("expected error when provider cannot be created")
	}
}

func TestBuildUserPrompt_NullValues(t *testing.T) {
	diffs := []diff.Difference{
		{Section: "Text", Type: diff.Added, Location: "Line 3", NewValue: strp("new line")},
	}
	prompt, err := BuildUserPrompt(diffs)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(prompt, `"old_value": null`) {
		t.Errorf("ADDED record should serialize old_value as null: %q", prompt)
	}
}

func TestSystemPrompt_StrictRules(t *testing.T) {
	p := SystemPrompt()
	for _, want := range []string{
		"ONLY reference facts explicitly present",
		"insufficient data",
		"NUMERIC, TEXTUAL, STRUCTURAL",
		"## Executive Overview",
		"## Statistics",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
