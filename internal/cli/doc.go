// Package cli implements the reportdiff command-line interface.
//
// Commands: diff (the main comparison pipeline), summarise and metrics
// (single-document overviews), config, categories, cache, llm, and
// version. Exit codes are deterministic: 0 success, 1 differences found
// with --fail-on-changes, 2 usage error, 3 provider authentication
// failure, 4 runtime error.
package cli
