package fields

import "testing"

func TestDetectColumnsAliases(t *testing.T) {
	m := DetectColumns([]string{"cep_de", "cep_ate", "valor"})
	if m[CEPStart] != 0 || m[CEPEnd] != 1 || m[Price] != 2 {
		t.Fatalf("mapping = %v", m)
	}
	if _, ok := m[LeadTime]; ok {
		t.Fatalf("lead_time should be unbound, got %v", m)
	}
}

func TestDetectColumnsAccentedHeaders(t *testing.T) {
	m := DetectColumns([]string{"CEP Início", "CEP Fim", "Preço", "Prazo"})
	if m[CEPStart] != 0 || m[CEPEnd] != 1 || m[Price] != 2 || m[LeadTime] != 3 {
		t.Fatalf("mapping = %v", m)
	}
}

func TestDetectColumnsPositionalFallback(t *testing.T) {
	m := DetectColumns([]string{"faixa1", "faixa2"})
	if m[CEPStart] != 0 || m[CEPEnd] != 1 {
		t.Fatalf("fallback mapping = %v", m)
	}
}

func TestDetectColumnsFallbackSkipsNonPostal(t *testing.T) {
	m := DetectColumns([]string{"descricao", "cep1", "cep2", "valor"})
	if m[CEPStart] != 1 || m[CEPEnd] != 2 {
		t.Fatalf("fallback mapping = %v", m)
	}
}

func TestDetectColumnsNoFallbackWhenOneBound(t *testing.T) {
	// cep_inicio binds by alias; the fallback must not fire and rebind.
	m := DetectColumns([]string{"cep_inicio", "faixa_x"})
	if m[CEPStart] != 0 {
		t.Fatalf("mapping = %v", m)
	}
	if _, ok := m[CEPEnd]; ok {
		t.Fatalf("cep_end should stay unbound, got %v", m)
	}
}

func TestDetectColumnsFirstMatchWins(t *testing.T) {
	m := DetectColumns([]string{"valor", "valor_frete"})
	if m[Price] != 0 {
		t.Fatalf("price should bind leftmost, got %v", m)
	}
}
