// Package document defines the normalized document model shared by the
// extractors, the redactor, and the diff engine.
//
// A Content value is an immutable snapshot: text blocks in reading order,
// tables with a location label plus header and data rows, and opaque
// format-provided metadata. Nothing downstream mutates a Content; redaction
// and comparison always construct fresh values.
package document
