package fields

import "testing"

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CEP Início", "cep_inicio"},
		{"CEP Fim", "cep_fim"},
		{"Valor (R$)", "valor_r"},
		{"Prazo - dias úteis", "prazo_dias_uteis"},
		{"  peso__máximo  ", "peso_maximo"},
		{"PREÇO", "preco"},
		{"faixa1", "faixa1"},
		{"", ""},
		{"___", ""},
	}
	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
