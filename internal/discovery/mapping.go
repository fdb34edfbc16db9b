package discovery

import (
	"errors"

	"github.com/fretemap/fretemap-cli/internal/document"
)

// ErrNoCandidate reports a document with no object-shaped array anywhere
// within the traversal bounds. Non-fatal: callers surface it as a warning and
// still let the operator inspect the raw structure.
var ErrNoCandidate = errors.New("no candidate options array found in document")

// FieldMapping is the persisted configuration binding document keys to the
// normalized option fields. OptionsPath locates the options array; the rest
// are keys looked up on each array element. This shape is stored as-is and
// reused against live quote documents until replaced.
type FieldMapping struct {
	OptionsPath  string `json:"optionsPath" yaml:"optionsPath"`
	CarrierName  string `json:"carrierName,omitempty" yaml:"carrierName,omitempty"`
	Price        string `json:"price,omitempty" yaml:"price,omitempty"`
	DeliveryDays string `json:"deliveryDays,omitempty" yaml:"deliveryDays,omitempty"`
	CarrierID    string `json:"carrierId,omitempty" yaml:"carrierId,omitempty"`
	ErrorField   string `json:"errorField,omitempty" yaml:"errorField,omitempty"`
}

// BuildMapping assembles a FieldMapping from a candidate, assigning each role
// slot the first field detected for it in original field order. Slots with no
// detected field stay empty.
func BuildMapping(c ArrayCandidate) FieldMapping {
	m := FieldMapping{OptionsPath: c.Path}
	for _, f := range c.Fields {
		switch f.Role {
		case RoleCarrierName:
			if m.CarrierName == "" {
				m.CarrierName = f.Key
			}
		case RolePrice:
			if m.Price == "" {
				m.Price = f.Key
			}
		case RoleLeadTime:
			if m.DeliveryDays == "" {
				m.DeliveryDays = f.Key
			}
		case RoleCarrierID:
			if m.CarrierID == "" {
				m.CarrierID = f.Key
			}
		case RoleErrorFlag:
			if m.ErrorField == "" {
				m.ErrorField = f.Key
			}
		}
	}
	return m
}

// WithField returns a copy of m with one role slot reassigned to key. Used
// when the operator overrides a suggestion; the preview is then re-derived
// from scratch rather than patched.
func (m FieldMapping) WithField(role Role, key string) FieldMapping {
	switch role {
	case RoleCarrierName:
		m.CarrierName = key
	case RolePrice:
		m.Price = key
	case RoleLeadTime:
		m.DeliveryDays = key
	case RoleCarrierID:
		m.CarrierID = key
	case RoleErrorFlag:
		m.ErrorField = key
	}
	return m
}

// Analysis is the result of one document ingest.
type Analysis struct {
	Candidates []ArrayCandidate
	Best       *ArrayCandidate
	Mapping    FieldMapping
}

// Analyze discovers candidates, elects the best and builds its mapping.
// A document with no candidate returns ErrNoCandidate alongside the (empty)
// analysis so the caller can still show what was traversed.
func Analyze(doc document.Value) (Analysis, error) {
	candidates := Discover(doc)
	a := Analysis{Candidates: candidates}
	best, ok := Best(candidates)
	if !ok {
		return a, ErrNoCandidate
	}
	a.Best = &best
	a.Mapping = BuildMapping(best)
	return a, nil
}
