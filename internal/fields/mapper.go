package fields

import "strings"

// ColumnMapping binds semantic fields to zero-based column indices.
// Auto-detection never binds two fields to one column, but operator edits
// may, and that is accepted as-is.
type ColumnMapping map[Semantic]int

// DetectColumns matches normalized headers against the alias table. For each
// semantic field the leftmost column whose normalized header equals the field
// name or one of its aliases wins; unmatched fields stay unbound. When
// neither CEP boundary binds, a positional fallback takes the first two
// columns whose normalized header contains a postal-range term and binds them
// to start and end, in order.
func DetectColumns(headers []string) ColumnMapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	mapping := make(ColumnMapping)
	for _, field := range Semantics {
		for i, h := range normalized {
			if h == string(field) || isAlias(field, h) {
				mapping[field] = i
				break
			}
		}
	}

	_, haveStart := mapping[CEPStart]
	_, haveEnd := mapping[CEPEnd]
	if !haveStart && !haveEnd && len(headers) >= 2 {
		bound := 0
		for i, h := range normalized {
			if !looksPostal(h) {
				continue
			}
			if bound == 0 {
				mapping[CEPStart] = i
			} else {
				mapping[CEPEnd] = i
			}
			bound++
			if bound == 2 {
				break
			}
		}
	}
	return mapping
}

func isAlias(field Semantic, normalized string) bool {
	for _, a := range fieldAliases[field] {
		if normalized == a {
			return true
		}
	}
	return false
}

func looksPostal(normalized string) bool {
	for _, term := range postalRangeTerms {
		if strings.Contains(normalized, term) {
			return true
		}
	}
	return false
}
