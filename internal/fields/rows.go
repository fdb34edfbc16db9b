package fields

import (
	"strings"

	"github.com/fretemap/fretemap-cli/internal/tabular"
)

// cepWidth is the fixed width of a Brazilian postal code identifier.
const cepWidth = 8

// DefaultWeightMaxSentinel marks an unbounded upper weight band.
const DefaultWeightMaxSentinel = 9999

// RateRow is one normalized rate-table entry.
type RateRow struct {
	CEPStart     string  `json:"cep_start"`
	CEPEnd       string  `json:"cep_end"`
	WeightMin    float64 `json:"weight_min"`
	WeightMax    float64 `json:"weight_max"`
	Price        float64 `json:"price"`
	LeadTimeDays int     `json:"lead_time_days"`
}

// RowOptions tunes normalization of tokenized rows.
type RowOptions struct {
	// DecimalSeparator is '.' or ','; ',' fits most Brazilian carrier exports.
	DecimalSeparator rune
	// WeightMaxSentinel substitutes for an absent upper weight bound.
	WeightMaxSentinel float64
}

// DefaultRowOptions returns the separator and sentinel used when the operator
// declares nothing.
func DefaultRowOptions() RowOptions {
	return RowOptions{DecimalSeparator: ',', WeightMaxSentinel: DefaultWeightMaxSentinel}
}

// BuildRows applies a column mapping to a tokenized table. Rows whose CEP
// range has an empty endpoint after digit-stripping are dropped, not erred:
// carrier exports routinely carry footer or subtotal lines.
func BuildRows(t *tabular.RawTable, m ColumnMapping, opt RowOptions) []RateRow {
	if opt.DecimalSeparator == 0 {
		opt.DecimalSeparator = ','
	}
	if opt.WeightMaxSentinel == 0 {
		opt.WeightMaxSentinel = DefaultWeightMaxSentinel
	}

	out := make([]RateRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		start := FormatCEP(cellAt(row, m, CEPStart))
		end := FormatCEP(cellAt(row, m, CEPEnd))
		if start == "" || end == "" {
			continue
		}
		r := RateRow{
			CEPStart:  start,
			CEPEnd:    end,
			WeightMin: ParseDecimal(cellAt(row, m, WeightMin), opt.DecimalSeparator),
			Price:     ParseDecimal(cellAt(row, m, Price), opt.DecimalSeparator),
			LeadTimeDays: ParseInt(
				cellAt(row, m, LeadTime), opt.DecimalSeparator),
		}
		if cell := cellAt(row, m, WeightMax); strings.TrimSpace(cell) != "" {
			r.WeightMax = ParseDecimal(cell, opt.DecimalSeparator)
		} else {
			r.WeightMax = opt.WeightMaxSentinel
		}
		out = append(out, r)
	}
	return out
}

func cellAt(row []string, m ColumnMapping, field Semantic) string {
	idx, ok := m[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// FormatCEP strips everything but digits and left-pads with zeros to the
// fixed CEP width. Returns "" when no digits remain, which callers treat as
// a discardable row. Inputs already longer than the width pass through
// untruncated.
func FormatCEP(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	for len(digits) < cepWidth {
		digits = "0" + digits
	}
	return digits
}
