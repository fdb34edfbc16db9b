// Package fields maps raw table columns onto the semantic rate fields and
// coerces cell text into typed values.
package fields

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader canonicalizes a raw header into a comparison key:
// lowercased, accents stripped, every run of non-alphanumerics collapsed to a
// single underscore, outer underscores trimmed. "CEP Início" -> "cep_inicio".
func NormalizeHeader(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
