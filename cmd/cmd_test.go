package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fretemap/fretemap-cli/internal/discovery"
)

func TestParseRoleSet(t *testing.T) {
	role, key, err := parseRoleSet("price=valor_total")
	if err != nil || role != discovery.RolePrice || key != "valor_total" {
		t.Fatalf("got %v/%q/%v", role, key, err)
	}
	if _, _, err := parseRoleSet("price"); err == nil {
		t.Fatalf("missing '=' should fail")
	}
	if _, _, err := parseRoleSet("weirdrole=x"); err == nil {
		t.Fatalf("unknown role should fail")
	}
}

func TestReadTableAutoDetect(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tabela.csv")
	content := "cep_inicio;cep_fim;valor;prazo\n01000000;01999999;25,90;5\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tbl, err := readTable(p)
	if err != nil {
		t.Fatalf("readTable: %v", err)
	}
	if tbl.Delimiter != ';' || len(tbl.Rows) != 1 {
		t.Fatalf("table = %+v", tbl)
	}
}

func TestReadDocumentByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "cotacao.json")
	if err := os.WriteFile(jsonPath, []byte(`{"cotacoes":[{"preco":1}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := readDocument(jsonPath)
	if err != nil {
		t.Fatalf("readDocument json: %v", err)
	}
	if _, ok := doc.Get("cotacoes"); !ok {
		t.Fatalf("json doc = %v", doc)
	}

	yamlPath := filepath.Join(dir, "cotacao.yaml")
	if err := os.WriteFile(yamlPath, []byte("cotacoes:\n  - preco: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err = readDocument(yamlPath)
	if err != nil {
		t.Fatalf("readDocument yaml: %v", err)
	}
	if _, ok := doc.Get("cotacoes"); !ok {
		t.Fatalf("yaml doc = %v", doc)
	}

	badPath := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(badPath, []byte(`{"cotacoes": [`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := readDocument(badPath); err == nil {
		t.Fatalf("malformed document should fail")
	}
}
