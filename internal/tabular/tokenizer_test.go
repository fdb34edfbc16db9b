package tabular

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitLineQuoted(t *testing.T) {
	got := splitLine(`"He said ""hi"", ok";10`, ';')
	want := []string{`He said "hi", ok`, "10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitLine = %#v, want %#v", got, want)
	}
}

func TestSplitLineDelimiterInsideQuotes(t *testing.T) {
	got := splitLine(`"a;b";c`, ';')
	want := []string{"a;b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitLine = %#v, want %#v", got, want)
	}
}

func TestParseBasics(t *testing.T) {
	tbl, err := Parse("cep_inicio;cep_fim;valor\n01000000;01999999;25,90\n", ';')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tbl.Headers) != 3 {
		t.Fatalf("headers = %v", tbl.Headers)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0][2] != "25,90" {
		t.Fatalf("rows = %v", tbl.Rows)
	}
}

func TestParseStripsBOMAndBlankLines(t *testing.T) {
	tbl, err := Parse("\ufeffa;b\n\n1;2\n\n", ';')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tbl.Headers[0] != "a" {
		t.Fatalf("BOM not stripped: %q", tbl.Headers[0])
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("blank lines kept: %v", tbl.Rows)
	}
}

func TestParseFormatErrors(t *testing.T) {
	if _, err := Parse("only one line", ';'); !errors.Is(err, ErrFormat) {
		t.Fatalf("single line: got %v, want ErrFormat", err)
	}
	if _, err := Parse("singlecolumn\n1\n2", ';'); !errors.Is(err, ErrFormat) {
		t.Fatalf("one column: got %v, want ErrFormat", err)
	}
	if _, err := Parse("", ';'); !errors.Is(err, ErrFormat) {
		t.Fatalf("empty text: got %v, want ErrFormat", err)
	}
}

func TestRowsNotPadded(t *testing.T) {
	tbl, err := Parse("a;b;c\n1;2\n", ';')
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tbl.Rows[0]) != 2 {
		t.Fatalf("tokenizer must not pad rows, got %v", tbl.Rows[0])
	}
}
