// Package extract reads source documents into the normalized content model.
//
// Each supported format (pdf, xlsx, docx, csv, tsv, txt, md) has its own
// extractor; all of them return the same document.Content shape so the
// comparison pipeline never looks at file formats. Cell values are trimmed
// during extraction, which is the only normalization applied before
// comparison.
package extract
