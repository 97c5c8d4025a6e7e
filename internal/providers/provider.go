package providers

import (
	"context"
	"fmt"
)

// AnalysisRequest contains the prompts sent to an LLM.
type AnalysisRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// AnalysisResponse contains the raw response from an LLM.
type AnalysisResponse struct {
	Content    string
	TokensUsed int
}

// Analyst is the provider abstraction interface.
type Analyst interface {
	Analyze(ctx context.Context, req AnalysisRequest) (AnalysisResponse, error)
	Name() string
	Model() string
}

// New creates a provider by name. An empty model selects the provider's
// default.
func New(provider, model string) (Analyst, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
