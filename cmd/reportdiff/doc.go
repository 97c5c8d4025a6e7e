// Reportdiff compares two versions of a business report and produces a
// concise, neutral summary of visible factual differences.
//
// It extracts text and tables from PDF, Excel, Word, CSV/TSV, and plain
// text documents, redacts PII before anything leaves the process, and
// reports every change with a deterministic location label. An optional
// LLM pass categorises the mechanical diff without ever seeing the source
// documents.
//
// Usage:
//
//	reportdiff diff old.pdf new.pdf            # compare two report versions
//	reportdiff diff old.xlsx new.xlsx -f json  # machine-readable output
//	reportdiff diff v1.docx v2.docx --llm anthropic
//	reportdiff summarise report.pdf            # overview of a single report
//	reportdiff metrics report.xlsx             # labelled numbers and KPIs
//	reportdiff categories list                 # show redaction categories
//	reportdiff cache clear                     # drop cached LLM analyses
package main
