package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropic_Analyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("Missing API key header")
		}
		if r.Header.Get("anthropic-version") != anthropicAPIVersion {
			t.Error("Missing anthropic-version header")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.System == "" {
			t.Error("system prompt not forwarded")
		}

		resp := anthropicResponse{
			Content: []anthropicBlock{
				{Type: "text", Text: "## Executive Overview"},
			},
			Usage: anthropicUsage{InputTokens: 100, OutputTokens: 10},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey:  "test-key",
		model:   defaultAnthropicModel,
		baseURL: server.URL,
		client:  server.Client(),
	}

	resp, err := a.Analyze(context.Background(), AnalysisRequest{
		SystemPrompt: "rules",
		UserPrompt:   "diff data",
		MaxTokens:    10,
	})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if resp.Content != "## Executive Overview" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensUsed != 110 {
		t.Errorf("TokensUsed = %d, want 110", resp.TokensUsed)
	}
}

func TestAnthropic_AuthError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	a := &Anthropic{
		apiKey:  "bad-key",
		model:   defaultAnthropicModel,
		baseURL: server.URL,
		client:  server.Client(),
	}

	_, err := a.Analyze(context.Background(), AnalysisRequest{UserPrompt: "x"})
	if err == nil {
		t.Fatal("Expected auth error")
	}
	if !IsAuthError(err) {
		t.Errorf("Expected auth error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("auth errors must not be retried, got %d attempts", attempts)
	}
}

func TestNewAnthropic_MissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropic(""); err == nil {
		t.Fatal("expected error when ANTHROPIC_API_KEY is unset")
	}
}

func TestNewAnthropic_DefaultModel(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "k")
	a, err := NewAnthropic("")
	if err != nil {
		t.Fatal(err)
	}
	if a.model != defaultAnthropicModel {
		t.Errorf("model = %q, want %q", a.model, defaultAnthropicModel)
	}
}
