// Package preview applies a field mapping to a concrete document and
// produces the normalized options the operator sees before committing.
package preview

import (
	"github.com/fretemap/fretemap-cli/internal/discovery"
	"github.com/fretemap/fretemap-cli/internal/document"
	"github.com/fretemap/fretemap-cli/internal/fields"
)

// Placeholder fills text fields the mapping cannot resolve.
const Placeholder = "—"

// DefaultLimit caps on-screen previews.
const DefaultLimit = 10

// Option is one normalized quote option. Transient: derived for display or
// export, never persisted as-is.
type Option struct {
	CarrierName  string  `json:"carrier_name"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"delivery_days"`
	CarrierID    string  `json:"carrier_id"`
}

// Build resolves the mapping's options path against doc and extracts up to
// limit options. A path that misses, or lands on a non-array, yields an empty
// preview rather than an error; missing per-field keys fall back to
// placeholders and zeros. Pure: rerunning with the same inputs rebuilds the
// same preview, which is how operator overrides are applied.
func Build(doc document.Value, m discovery.FieldMapping, limit int) []Option {
	if limit <= 0 {
		limit = DefaultLimit
	}
	arr, ok := doc.Resolve(m.OptionsPath)
	if !ok || arr.Kind() != document.KindArray {
		return nil
	}
	elems := arr.Elems()
	if len(elems) > limit {
		elems = elems[:limit]
	}
	out := make([]Option, 0, len(elems))
	for _, el := range elems {
		out = append(out, Option{
			CarrierName:  textField(el, m.CarrierName),
			Price:        numberField(el, m.Price),
			DeliveryDays: intField(el, m.DeliveryDays),
			CarrierID:    textField(el, m.CarrierID),
		})
	}
	return out
}

// Rebuild reassigns one role slot and re-derives the full preview from the
// same sample document.
func Rebuild(doc document.Value, m discovery.FieldMapping, role discovery.Role, key string, limit int) (discovery.FieldMapping, []Option) {
	next := m.WithField(role, key)
	return next, Build(doc, next, limit)
}

func textField(el document.Value, key string) string {
	if key == "" {
		return Placeholder
	}
	v, ok := el.Get(key)
	if !ok {
		return Placeholder
	}
	switch v.Kind() {
	case document.KindString:
		if v.StringVal() == "" {
			return Placeholder
		}
		return v.StringVal()
	case document.KindNull:
		return Placeholder
	default:
		return v.Render()
	}
}

func numberField(el document.Value, key string) float64 {
	if key == "" {
		return 0
	}
	v, ok := el.Get(key)
	if !ok {
		return 0
	}
	switch v.Kind() {
	case document.KindNumber:
		return v.NumberVal()
	case document.KindString:
		if f, ok := fields.LooksNumeric(v.StringVal()); ok {
			return f
		}
	}
	return 0
}

func intField(el document.Value, key string) int {
	return int(numberField(el, key))
}
