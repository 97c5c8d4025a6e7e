// Package analyse runs the optional LLM pass over a computed diff.
//
// The provider receives only the structured, already-redacted difference
// records, never the source documents, and the system prompt forbids it
// from using outside knowledge. Results are cached on disk keyed by
// provider, model, and diff payload.
package analyse
