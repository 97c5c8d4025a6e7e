package analyse

import (
	"context"
	"fmt"

	"reportdiff/internal/cache"
	"reportdiff/internal/config"
	"reportdiff/internal/diff"
	"reportdiff/internal/providers"
)

// NoChangesMessage is returned without calling any provider when the diff
// is empty.
const NoChangesMessage = "No factual differences detected between the two document versions."

const analysisTemperature = 0.1

// Run sends the redacted differences to the configured LLM provider and
// returns its analysis. Responses are cached by provider, model, and diff
// payload. Callers decide how to handle errors; the mechanical summary is
// always available as a fallback.
func Run(ctx context.Context, diffs []diff.Difference, cfg config.Config) (string, error) {
	if len(diffs) == 0 {
		return NoChangesMessage, nil
	}

	if cfg.LLM.MaxDiffs > 0 && len(diffs) > cfg.LLM.MaxDiffs {
		diffs = diffs[:cfg.LLM.MaxDiffs]
	}

	payload, err := DiffPayload(diffs)
	if err != nil {
		return "", err
	}

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		// A broken cache dir should not block analysis.
		c, _ = cache.New(false, "", 0)
	}
	key := cache.BuildCacheKey(cfg.LLM.Provider, cfg.LLM.Model, payload)
	if cached, ok := c.Get(key); ok {
		return cached, nil
	}

	provider, err := providers.New(cfg.LLM.Provider, cfg.LLM.Model)
	if err != nil {
		return "", fmt.Errorf("creating provider: %w", err)
	}

	userPrompt, err := BuildUserPrompt(diffs)
	if err != nil {
		return "", err
	}

	resp, err := provider.Analyze(ctx, providers.AnalysisRequest{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   userPrompt,
		MaxTokens:    4096,
		Temperature:  analysisTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("provider analysis: %w", err)
	}

	// Cache write failures are not fatal; the analysis still stands.
	_ = c.Put(key, resp.Content)
	return resp.Content, nil
}

// IsAuthError reports whether the analysis failed because of provider
// authentication, so the CLI can map it to the right exit code.
func IsAuthError(err error) bool {
	return providers.IsAuthError(err)
}
