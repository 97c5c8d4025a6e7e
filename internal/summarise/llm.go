package summarise

import (
	"context"
	"fmt"
	"strings"

	"reportdiff/internal/cache"
	"reportdiff/internal/config"
	"reportdiff/internal/document"
	"reportdiff/internal/providers"
)

const llmTemperature = 0.1

// RunSummary sends the extracted, redacted document content to the
// configured LLM provider for a structured summary. Responses are cached by
// provider, model, and content payload. Callers decide how to handle errors;
// the mechanical summary is always available as a fallback.
func RunSummary(ctx context.Context, doc document.Content, cfg config.Config) (string, error) {
	return runLLM(ctx, doc, cfg, "report summary", SummarySystemPrompt(), BuildSummaryPrompt)
}

// RunMetrics sends the extracted, redacted document content to the
// configured LLM provider for metric extraction. Same caching and error
// contract as RunSummary.
func RunMetrics(ctx context.Context, doc document.Content, cfg config.Config) (string, error) {
	return runLLM(ctx, doc, cfg, "metric extraction", MetricsSystemPrompt(), BuildMetricsPrompt)
}

func runLLM(ctx context.Context, doc document.Content, cfg config.Config,
	label, systemPrompt string, buildPrompt func(document.Content) (string, error)) (string, error) {

	payload, err := ContentPayload(doc)
	if err != nil {
		return "", err
	}

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		// A broken cache dir should not block the LLM pass.
		c, _ = cache.New(false, "", 0)
	}
	// The label keeps summary and metric responses for the same document
	// under distinct keys.
	key := cache.BuildCacheKey(cfg.LLM.Provider, cfg.LLM.Model, label+"\n"+payload)
	if cached, ok := c.Get(key); ok {
		return cached, nil
	}

	provider, err := providers.New(cfg.LLM.Provider, cfg.LLM.Model)
	if err != nil {
		return "", fmt.Errorf("creating provider: %w", err)
	}

	userPrompt, err := buildPrompt(doc)
	if err != nil {
		return "", err
	}

	resp, err := provider.Analyze(ctx, providers.AnalysisRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    4096,
		Temperature:  llmTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm %s: %w", label, err)
	}

	out := fmt.Sprintf("[LLM-enhanced %s via %s / %s]\n%s\n\n%s",
		label, provider.Name(), provider.Model(), strings.Repeat("=", 64), resp.Content)

	// Cache write failures are not fatal; the result still stands.
	_ = c.Put(key, out)
	return out, nil
}

// IsAuthError reports whether the LLM pass failed because of provider
// authentication, so the CLI can map it to the right exit code.
func IsAuthError(err error) bool {
	return providers.IsAuthError(err)
}
