// Package providers implements LLM provider integrations for the analysis
// pass.
//
// Supported providers: Anthropic, OpenAI, and Ollama/LM Studio via the
// OpenAI-compatible API. All providers share the Analyst interface and
// retry transient failures (rate limits, 5xx) with exponential backoff;
// authentication errors are returned immediately.
package providers
