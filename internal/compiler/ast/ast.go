package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btouchard/plume/internal/compiler/token"
)

// Node is the base interface for all AST nodes. Pos is the position of
// the first token that contributed to the node; String re-serializes
// the node to template source.
type Node interface {
	Pos() token.Position
	String() string
}

// Text is a run of literal template text, passed through verbatim.
type Text struct {
	Value    string
	Position token.Position
}

func (t *Text) Pos() token.Position { return t.Position }
func (t *Text) String() string      { return t.Value }

// Ident is an unresolved variable name; name binding happens at render
// time, outside this package.
type Ident struct {
	Name     string
	Position token.Position
}

func (i *Ident) Pos() token.Position { return i.Position }
func (i *Ident) String() string      { return i.Name }

// IntLit is a 32-bit integer literal.
type IntLit struct {
	Value    int32
	Position token.Position
}

func (i *IntLit) Pos() token.Position { return i.Position }
func (i *IntLit) String() string      { return strconv.FormatInt(int64(i.Value), 10) }

// FloatLit is a 32-bit float literal.
type FloatLit struct {
	Value    float32
	Position token.Position
}

func (f *FloatLit) Pos() token.Position { return f.Position }
func (f *FloatLit) String() string {
	return strconv.FormatFloat(float64(f.Value), 'g', -1, 32)
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value    bool
	Position token.Position
}

func (b *BoolLit) Pos() token.Position { return b.Position }
func (b *BoolLit) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Math is a binary arithmetic expression. Operator is exactly one of
// "+", "-", "*", "/"; Left and Right are fully reduced subtrees, never
// a List.
type Math struct {
	Left     Node
	Right    Node
	Operator string
	Position token.Position
}

func (m *Math) Pos() token.Position { return m.Position }
func (m *Math) String() string {
	return fmt.Sprintf("%s %s %s", m.Left.String(), m.Operator, m.Right.String())
}

// VariableBlock is a {{ expression }} construct. Expr is always a
// single fully reduced expression node.
type VariableBlock struct {
	Expr     Node
	Position token.Position
}

func (v *VariableBlock) Pos() token.Position { return v.Position }
func (v *VariableBlock) String() string {
	return "{{ " + v.Expr.String() + " }}"
}

// List is an ordered sequence of nodes. It is both the parser's root
// (children alternate freely between Text and VariableBlock) and the
// transient working stack used during expression reduction.
type List struct {
	Children []Node
	Position token.Position
}

func NewList(pos token.Position) *List {
	return &List{Position: pos}
}

func (l *List) Pos() token.Position { return l.Position }

func (l *List) String() string {
	var b strings.Builder
	for _, c := range l.Children {
		b.WriteString(c.String())
	}
	return b.String()
}

// Push appends a node to the end of the list.
func (l *List) Push(n Node) {
	l.Children = append(l.Children, n)
}

// Pop removes and returns the last node, or nil if the list is empty.
func (l *List) Pop() Node {
	if len(l.Children) == 0 {
		return nil
	}
	n := l.Children[len(l.Children)-1]
	l.Children = l.Children[:len(l.Children)-1]
	return n
}

func (l *List) Len() int {
	return len(l.Children)
}

func (l *List) IsEmpty() bool {
	return len(l.Children) == 0
}
