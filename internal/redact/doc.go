// Package redact removes personally identifiable information from document
// text before it is compared or displayed.
//
// Detection is deterministic regex matching over a fixed, ordered category
// list: SSNs, email addresses, US phone numbers, credit/debit card numbers
// (gated by the Luhn checksum), IPv4 addresses, labelled dates of birth,
// US street addresses, and labelled person names. There are no ML models;
// the same input always produces the same spans. All patterns are RE2, so
// matching is linear in the input.
//
// Overlapping spans from different categories are resolved by keeping the
// longest span; equal lengths fall back to category order. Surviving spans
// are replaced right to left with [REDACTED] so offsets stay valid as the
// string changes length.
//
// The category list is injectable: callers may supply their own ordered list
// via New, or load one from YAML with LoadCategories.
package redact
