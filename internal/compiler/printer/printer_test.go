package printer

import (
	"strings"
	"testing"

	"github.com/btouchard/plume/internal/compiler/parser"
)

func TestFormatCanonicalizesSpacing(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"{{1+2}}", "{{ 1 + 2 }}"},
		{"{{   name   }}", "{{ name }}"},
		{"Hello {{name}}!", "Hello {{ name }}!"},
		{"{{ 1 / 2 + 3 * 2 + 42 }}", "{{ 1 / 2 + 3 * 2 + 42 }}"},
		{"plain text", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		root, err := parser.Parse("test", tt.input)
		if err != nil {
			t.Fatalf("%q: parse error: %v", tt.input, err)
		}
		if got := Format(root); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDump(t *testing.T) {
	root, err := parser.Parse("test", "Hi {{ 1 + x }}")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var b strings.Builder
	Dump(&b, root)
	out := b.String()

	for _, want := range []string{
		"List (2 children)",
		`Text @0 "Hi "`,
		"VariableBlock @3",
		`Math @6 "+"`,
		"Int @6 1",
		"Ident @10 x",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}
