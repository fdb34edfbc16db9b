package fields

import (
	"strconv"
	"strings"
)

// ParseDecimal converts a cell to a number under the configured decimal
// separator. Empty cells and unparseable leftovers yield 0 rather than an
// error; a bad cell must not abort a whole table ingest.
func ParseDecimal(cell string, decimalSep rune) float64 {
	clean := cleanNumeric(cell, decimalSep)
	if clean == "" {
		return 0
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt converts a cell to a whole number with the same cleansing rules,
// defaulting to 0 on failure. Used for lead-time columns.
func ParseInt(cell string, decimalSep rune) int {
	clean := cleanNumeric(cell, decimalSep)
	if clean == "" {
		return 0
	}
	n, err := strconv.Atoi(clean)
	if err == nil {
		return n
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// cleanNumeric strips currency symbols and unit noise, keeping only digits,
// separators and the sign. Under a comma decimal separator the dots are
// thousands markers and are removed before the comma becomes the dot.
func cleanNumeric(cell string, decimalSep rune) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range cell {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if decimalSep == ',' {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	return clean
}

// LooksNumeric reports whether a document value string can pass as a number
// in either locale convention, and what it parses to. "32.50" and "25,90"
// both qualify.
func LooksNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return f, true
	}
	// Comma-decimal form: drop thousands dots, promote the comma.
	alt := strings.ReplaceAll(clean, ".", "")
	alt = strings.ReplaceAll(alt, ",", ".")
	if f, err := strconv.ParseFloat(alt, 64); err == nil {
		return f, true
	}
	return 0, false
}
