package token

import "testing"

func TestPrecedenceTiers(t *testing.T) {
	if ASTERISK.Precedence() <= PLUS.Precedence() {
		t.Errorf("expected * to bind tighter than +")
	}
	if SLASH.Precedence() != ASTERISK.Precedence() {
		t.Errorf("expected / and * on the same tier")
	}
	if PLUS.Precedence() != MINUS.Precedence() {
		t.Errorf("expected + and - on the same tier")
	}
}

func TestPrecedenceNonOperators(t *testing.T) {
	for _, typ := range []Type{TEXT, VAR_START, VAR_END, IDENT, INT, FLOAT, BOOL, SPACE, EOF} {
		if typ.Precedence() != LOWEST {
			t.Errorf("expected %s to have lowest precedence, got %d", typ, typ.Precedence())
		}
		if typ.IsOperator() {
			t.Errorf("expected %s not to be an operator", typ)
		}
	}
}

func TestTokenPrecedence(t *testing.T) {
	tok := Token{Type: SLASH, Literal: "/"}
	if tok.Precedence() != PRODUCT {
		t.Errorf("expected PRODUCT precedence, got %d", tok.Precedence())
	}
}
