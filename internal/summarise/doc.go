// Package summarise produces factual overviews of a single document: an
// extractive summary of its text and tables, and a metric extraction pass
// that finds labelled numbers, currency amounts, percentages, and ratios.
//
// Both passes are mechanical. The engine does not know what "Revenue" means;
// it recognises the shape of a metric (label plus number) and extracts the
// label and the value verbatim. An optional LLM pass reworks the extracted
// content into a polished summary without ever seeing the source file.
package summarise
