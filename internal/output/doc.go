// Package output renders difference reports in text, JSON, and markdown.
//
// The text format groups changes by section with +/-/~ markers and caps
// long values; JSON emits the full report structure; markdown produces a
// table per section suitable for PR comments.
package output
