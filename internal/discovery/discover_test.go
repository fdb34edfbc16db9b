package discovery

import (
	"reflect"
	"testing"

	"github.com/fretemap/fretemap-cli/internal/document"
)

func mustJSON(t *testing.T, src string) document.Value {
	t.Helper()
	v, err := document.DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

func TestDiscoverOptionsArray(t *testing.T) {
	doc := mustJSON(t, `{"options":[
		{"name":"PAC","price":25.9,"delivery_days":5},
		{"name":"SEDEX","price":45,"delivery_days":2}]}`)
	cands := Discover(doc)
	if len(cands) != 1 {
		t.Fatalf("candidates = %v", cands)
	}
	c := cands[0]
	if c.Path != "options" || c.Length != 2 {
		t.Fatalf("candidate = %+v", c)
	}
	roles := map[string]Role{}
	for _, f := range c.Fields {
		roles[f.Key] = f.Role
	}
	if roles["name"] != RoleCarrierName || roles["price"] != RolePrice || roles["delivery_days"] != RoleLeadTime {
		t.Fatalf("roles = %v", roles)
	}
}

func TestDiscoverRootArray(t *testing.T) {
	doc := mustJSON(t, `[{"carrier":"X","price":1}]`)
	cands := Discover(doc)
	if len(cands) != 1 || cands[0].Path != "" {
		t.Fatalf("candidates = %v", cands)
	}
}

func TestDiscoverScalarArrayProducesNoCandidate(t *testing.T) {
	doc := mustJSON(t, `{"ids":[1,2,3],"labels":["a","b"]}`)
	if cands := Discover(doc); len(cands) != 0 {
		t.Fatalf("candidates = %v", cands)
	}
}

func TestDiscoverDepthBound(t *testing.T) {
	within := mustJSON(t, `{"a":{"b":{"c":{"d":{"arr":[{"price":1}]}}}}}`)
	if cands := Discover(within); len(cands) != 1 {
		t.Fatalf("array at depth 5 should be found, got %v", cands)
	}
	beyond := mustJSON(t, `{"a":{"b":{"c":{"d":{"e":{"arr":[{"price":1}]}}}}}}`)
	if cands := Discover(beyond); len(cands) != 0 {
		t.Fatalf("array beyond depth 5 should be skipped, got %v", cands)
	}
}

func TestDiscoverNestedArraysWithinFanOut(t *testing.T) {
	doc := mustJSON(t, `{"groups":[
		{"quotes":[{"price":10,"carrier":"A"}]},
		{"quotes":[{"price":12,"carrier":"B"}]}]}`)
	cands := Discover(doc)
	paths := make([]string, len(cands))
	for i, c := range cands {
		paths[i] = c.Path
	}
	want := []string{"groups", "groups.0.quotes", "groups.1.quotes"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
}

func TestDiscoverIdempotent(t *testing.T) {
	src := `{"cotacoes":[{"transportadora":"Jadlog","preco":"32.50","prazo_dias":"4"}],
		"meta":{"extras":[{"id":7}]}}`
	first, err := Analyze(mustJSON(t, src))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Analyze(mustJSON(t, src))
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if again.Best.Path != first.Best.Path || again.Mapping != first.Mapping {
			t.Fatalf("analysis not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestAnalyzeNoCandidate(t *testing.T) {
	_, err := Analyze(mustJSON(t, `{"status":"ok","count":3}`))
	if err != ErrNoCandidate {
		t.Fatalf("got %v, want ErrNoCandidate", err)
	}
}

func TestAnalyzeScenarioB(t *testing.T) {
	a, err := Analyze(mustJSON(t, `{"cotacoes":[{"transportadora":"Jadlog","preco":"32.50","prazo_dias":"4"}]}`))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.Best.Path != "cotacoes" {
		t.Fatalf("best path = %q", a.Best.Path)
	}
	want := FieldMapping{
		OptionsPath:  "cotacoes",
		CarrierName:  "transportadora",
		Price:        "preco",
		DeliveryDays: "prazo_dias",
	}
	if a.Mapping != want {
		t.Fatalf("mapping = %+v, want %+v", a.Mapping, want)
	}
}
