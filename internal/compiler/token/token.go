package token

type Type string

// Position is a location in the template source. Offset is the byte
// offset of the token's first byte; Line and Column are 1-based and
// only used for diagnostics.
type Position struct {
	Line   int
	Column int
	Offset int
}

type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

const (
	// Special
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	// Template structure
	TEXT      Type = "TEXT"
	VAR_START Type = "{{"
	VAR_END   Type = "}}"
	TAG_START Type = "{%"
	TAG_END   Type = "%}"

	// Identifiers + literals
	IDENT Type = "IDENT"
	INT   Type = "INT"
	FLOAT Type = "FLOAT"
	BOOL  Type = "BOOL"

	// Operators
	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	SLASH    Type = "/"

	// Whitespace inside a block (significant to the parser's cursor)
	SPACE Type = "SPACE"
)

// Precedence tiers for the expression engine. There are only two:
// multiplicative above additive. Every other token sits at LOWEST so
// the parser can compare precedences without special-casing.
const (
	LOWEST  int = iota
	SUM         // + -
	PRODUCT     // * /
)

var precedences = map[Type]int{
	PLUS:     SUM,
	MINUS:    SUM,
	ASTERISK: PRODUCT,
	SLASH:    PRODUCT,
}

// Precedence returns the binding power of t, or LOWEST for tokens
// without arithmetic meaning.
func (t Type) Precedence() int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

// Precedence returns the binding power of the token's type.
func (t Token) Precedence() int {
	return t.Type.Precedence()
}

// IsOperator reports whether t is one of the four arithmetic operators.
func (t Type) IsOperator() bool {
	_, ok := precedences[t]
	return ok
}
