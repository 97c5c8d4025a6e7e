// Package cache provides file-based caching of LLM analysis responses.
//
// Entries are keyed by a SHA-256 hash of provider, model, and the full diff
// payload, stored as JSON files in the platform cache directory, and expire
// after a configurable TTL.
package cache
