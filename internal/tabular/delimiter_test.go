package tabular

import "testing"

func TestDetectDelimiter(t *testing.T) {
	cases := []struct {
		name string
		text string
		want rune
	}{
		{"tab wins when present", "a\tb;c\n1\t2;3", '\t'},
		{"semicolon beats comma", "a;b,c;d\n1;2;3", ';'},
		{"comma default", "a,b,c\n1,2,3", ','},
		{"no separators at all", "header\nvalue", ','},
		{"only first line counts", "a,b\n1;2;3;4", ','},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectDelimiter(tc.text); got != tc.want {
				t.Fatalf("DetectDelimiter(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
