package lexer

import (
	"testing"

	"github.com/btouchard/plume/internal/compiler/token"
)

func TestPlainText(t *testing.T) {
	l := New("Hello world")
	tok := l.NextToken()
	if tok.Type != token.TEXT || tok.Literal != "Hello world" {
		t.Fatalf("expected TEXT %q, got %s %q", "Hello world", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != token.EOF {
		t.Fatalf("expected EOF, got %s", tok.Type)
	}
}

func TestEmptyInput(t *testing.T) {
	tokens := New("").Run()
	if len(tokens) != 1 || tokens[0].Type != token.EOF {
		t.Fatalf("expected single EOF token, got %v", tokens)
	}
}

func TestVariableBlockTokens(t *testing.T) {
	input := "{{ greeting }}"

	expected := []struct {
		typ    token.Type
		lit    string
		offset int
	}{
		{token.VAR_START, "{{", 0},
		{token.SPACE, " ", 2},
		{token.IDENT, "greeting", 3},
		{token.SPACE, " ", 11},
		{token.VAR_END, "}}", 12},
		{token.EOF, "", 14},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ || tok.Literal != exp.lit {
			t.Fatalf("test[%d] - expected %s(%q), got %s(%q)", i, exp.typ, exp.lit, tok.Type, tok.Literal)
		}
		if tok.Pos.Offset != exp.offset {
			t.Errorf("test[%d] - expected offset %d, got %d", i, exp.offset, tok.Pos.Offset)
		}
	}
}

func TestOperatorsAndLiterals(t *testing.T) {
	input := "{{1+3.41}}{{1-42}}{{a*2}}{{b/true}}"

	expected := []struct {
		typ token.Type
		lit string
	}{
		{token.VAR_START, "{{"}, {token.INT, "1"}, {token.PLUS, "+"}, {token.FLOAT, "3.41"}, {token.VAR_END, "}}"},
		{token.VAR_START, "{{"}, {token.INT, "1"}, {token.MINUS, "-"}, {token.INT, "42"}, {token.VAR_END, "}}"},
		{token.VAR_START, "{{"}, {token.IDENT, "a"}, {token.ASTERISK, "*"}, {token.INT, "2"}, {token.VAR_END, "}}"},
		{token.VAR_START, "{{"}, {token.IDENT, "b"}, {token.SLASH, "/"}, {token.BOOL, "true"}, {token.VAR_END, "}}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ || tok.Literal != exp.lit {
			t.Fatalf("test[%d] - expected %s(%q), got %s(%q)", i, exp.typ, exp.lit, tok.Type, tok.Literal)
		}
	}
}

func TestTextAroundBlocks(t *testing.T) {
	input := "Hello {{ name }}!"

	expected := []token.Type{
		token.TEXT, token.VAR_START, token.SPACE, token.IDENT, token.SPACE,
		token.VAR_END, token.TEXT, token.EOF,
	}

	tokens := New(input).Run()
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token[%d] - expected %s, got %s (%q)", i, exp, tokens[i].Type, tokens[i].Literal)
		}
	}

	if tokens[6].Literal != "!" {
		t.Errorf("expected trailing text %q, got %q", "!", tokens[6].Literal)
	}
}

func TestTagDelimiters(t *testing.T) {
	tokens := New("{% if %}").Run()

	expected := []token.Type{
		token.TAG_START, token.SPACE, token.IDENT, token.SPACE, token.TAG_END, token.EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token[%d] - expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestUnicodeTextOffsets(t *testing.T) {
	input := "{{ greeting }} 世界"

	tokens := New(input).Run()
	last := tokens[len(tokens)-2]
	if last.Type != token.TEXT || last.Literal != " 世界" {
		t.Fatalf("expected trailing unicode text, got %s %q", last.Type, last.Literal)
	}
	if last.Pos.Offset != 14 {
		t.Errorf("expected text at byte offset 14, got %d", last.Pos.Offset)
	}
}

func TestSpaceRunsCollapseToOneToken(t *testing.T) {
	tokens := New("{{   1   }}").Run()

	expected := []token.Type{
		token.VAR_START, token.SPACE, token.INT, token.SPACE, token.VAR_END, token.EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	if tokens[1].Literal != "   " {
		t.Errorf("expected space run preserved in literal, got %q", tokens[1].Literal)
	}
}

func TestIllegalCharacterInBlock(t *testing.T) {
	tokens := New("{{ $ }}").Run()

	var found bool
	for _, tok := range tokens {
		if tok.Type == token.ILLEGAL && tok.Literal == "$" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected ILLEGAL token for %q, got %v", "$", tokens)
	}
}

func TestLoneBraceIsText(t *testing.T) {
	tokens := New("a { b } c").Run()
	if len(tokens) != 2 || tokens[0].Type != token.TEXT || tokens[0].Literal != "a { b } c" {
		t.Fatalf("expected single TEXT token, got %v", tokens)
	}
}
