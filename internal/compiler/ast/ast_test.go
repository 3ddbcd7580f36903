package ast

import (
	"testing"

	"github.com/btouchard/plume/internal/compiler/token"
)

func TestListPushPop(t *testing.T) {
	l := NewList(token.Position{})

	if !l.IsEmpty() {
		t.Fatalf("new list should be empty")
	}
	if n := l.Pop(); n != nil {
		t.Fatalf("pop on empty list should return nil, got %v", n)
	}

	a := &IntLit{Value: 1}
	b := &Ident{Name: "x"}
	l.Push(a)
	l.Push(b)

	if l.Len() != 2 {
		t.Fatalf("expected len 2, got %d", l.Len())
	}
	if got := l.Pop(); got != Node(b) {
		t.Errorf("expected to pop last pushed node, got %v", got)
	}
	if got := l.Pop(); got != Node(a) {
		t.Errorf("expected to pop first pushed node, got %v", got)
	}
	if !l.IsEmpty() {
		t.Errorf("list should be empty after popping everything")
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Text{Value: "hello "}, "hello "},
		{&Ident{Name: "greeting"}, "greeting"},
		{&IntLit{Value: 42}, "42"},
		{&FloatLit{Value: 3.5}, "3.5"},
		{&BoolLit{Value: true}, "true"},
		{&BoolLit{Value: false}, "false"},
		{&Math{Left: &IntLit{Value: 1}, Right: &IntLit{Value: 2}, Operator: "+"}, "1 + 2"},
		{&VariableBlock{Expr: &Ident{Name: "name"}}, "{{ name }}"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNestedMathString(t *testing.T) {
	// (1 / 2) + 1
	expr := &Math{
		Left:     &Math{Left: &IntLit{Value: 1}, Right: &IntLit{Value: 2}, Operator: "/"},
		Right:    &IntLit{Value: 1},
		Operator: "+",
	}
	if got := expr.String(); got != "1 / 2 + 1" {
		t.Errorf("String() = %q, want %q", got, "1 / 2 + 1")
	}
}

func TestListStringConcatenatesChildren(t *testing.T) {
	l := NewList(token.Position{})
	l.Push(&Text{Value: "Hello "})
	l.Push(&VariableBlock{Expr: &Ident{Name: "name"}})
	l.Push(&Text{Value: "!"})

	if got := l.String(); got != "Hello {{ name }}!" {
		t.Errorf("String() = %q, want %q", got, "Hello {{ name }}!")
	}
}
