package preview_test

import (
	"testing"

	"github.com/fretemap/fretemap-cli/internal/discovery"
	"github.com/fretemap/fretemap-cli/internal/document"
	"github.com/fretemap/fretemap-cli/internal/preview"
)

func mustJSON(t *testing.T, src string) document.Value {
	t.Helper()
	v, err := document.DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func TestBuildScenario(t *testing.T) {
	doc := mustJSON(t, `{"cotacoes":[{"transportadora":"Jadlog","preco":"32.50","prazo_dias":"4"}]}`)
	m := discovery.FieldMapping{
		OptionsPath:  "cotacoes",
		CarrierName:  "transportadora",
		Price:        "preco",
		DeliveryDays: "prazo_dias",
	}
	pv := preview.Build(doc, m, 0)
	if len(pv) != 1 {
		t.Fatalf("preview = %v", pv)
	}
	got := pv[0]
	want := preview.Option{CarrierName: "Jadlog", Price: 32.5, DeliveryDays: 4, CarrierID: preview.Placeholder}
	if got != want {
		t.Fatalf("option = %+v, want %+v", got, want)
	}
}

func TestBuildPathMissYieldsEmptyPreview(t *testing.T) {
	doc := mustJSON(t, `{"cotacoes":[{"preco":1}]}`)
	if pv := preview.Build(doc, discovery.FieldMapping{OptionsPath: "quotes"}, 0); len(pv) != 0 {
		t.Fatalf("preview = %v", pv)
	}
	// Path resolving to a non-array is the same miss.
	if pv := preview.Build(doc, discovery.FieldMapping{OptionsPath: "cotacoes.0.preco"}, 0); len(pv) != 0 {
		t.Fatalf("preview = %v", pv)
	}
}

func TestBuildEmptyPathUsesRoot(t *testing.T) {
	doc := mustJSON(t, `[{"price":9.9}]`)
	pv := preview.Build(doc, discovery.FieldMapping{Price: "price"}, 0)
	if len(pv) != 1 || pv[0].Price != 9.9 {
		t.Fatalf("preview = %v", pv)
	}
	if pv[0].CarrierName != preview.Placeholder {
		t.Fatalf("unmapped carrier should be the placeholder, got %q", pv[0].CarrierName)
	}
}

func TestBuildCapsAtLimit(t *testing.T) {
	doc := mustJSON(t, `[
		{"price":1},{"price":2},{"price":3},{"price":4},{"price":5},{"price":6},
		{"price":7},{"price":8},{"price":9},{"price":10},{"price":11},{"price":12}]`)
	pv := preview.Build(doc, discovery.FieldMapping{Price: "price"}, 0)
	if len(pv) != preview.DefaultLimit {
		t.Fatalf("len = %d, want %d", len(pv), preview.DefaultLimit)
	}
}

func TestRebuildOverride(t *testing.T) {
	doc := mustJSON(t, `{"options":[{"name":"PAC","price":25.9,"valor_total":30.4}]}`)
	m := discovery.FieldMapping{OptionsPath: "options", CarrierName: "name", Price: "price"}
	next, pv := preview.Rebuild(doc, m, discovery.RolePrice, "valor_total", 0)
	if next.Price != "valor_total" {
		t.Fatalf("override not applied: %+v", next)
	}
	if len(pv) != 1 || pv[0].Price != 30.4 {
		t.Fatalf("preview = %v", pv)
	}
	// The original mapping is untouched; the preview is a pure re-derivation.
	if m.Price != "price" {
		t.Fatalf("input mapping mutated: %+v", m)
	}
}

func TestBuildMissingFieldsUseDefaults(t *testing.T) {
	doc := mustJSON(t, `{"options":[{"name":"PAC"}]}`)
	m := discovery.FieldMapping{OptionsPath: "options", CarrierName: "name", Price: "price", DeliveryDays: "days"}
	pv := preview.Build(doc, m, 0)
	if len(pv) != 1 {
		t.Fatalf("preview = %v", pv)
	}
	if pv[0].Price != 0 || pv[0].DeliveryDays != 0 || pv[0].CarrierID != preview.Placeholder {
		t.Fatalf("defaults wrong: %+v", pv[0])
	}
}
