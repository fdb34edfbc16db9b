// Package tabular turns raw carrier rate-table exports (CSV/TSV text or XLSX
// sheets) into a RawTable of string cells without interpreting the columns.
package tabular

import "strings"

// DetectDelimiter inspects only the first line and picks the most likely
// field separator. Tab wins when present and at least as frequent as the
// punctuation separators; semicolon beats comma (European exports quote
// decimals with commas); comma is the default.
func DetectDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}
	tabs := strings.Count(line, "\t")
	commas := strings.Count(line, ",")
	semis := strings.Count(line, ";")
	switch {
	case tabs > 0 && tabs >= commas && tabs >= semis:
		return '\t'
	case semis > commas:
		return ';'
	default:
		return ','
	}
}
