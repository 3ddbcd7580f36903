package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/btouchard/plume/internal/compiler/token"
)

// Lexer tokenizes template source. Outside delimiters everything is
// raw TEXT; inside a {{ }} or {% %} block it emits expression tokens,
// including SPACE runs, which the parser's cursor skips explicitly.
type Lexer struct {
	input        string
	position     int  // current offset in input (bytes)
	readPosition int  // next reading position (bytes)
	ch           rune // current character
	line         int  // current line (1-based)
	column       int  // current column (1-based)
	inBlock      bool // inside {{ }} or {% %}
}

func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// Run tokenizes the whole input eagerly. The returned slice always
// ends with an EOF token, so lookahead past the last meaningful token
// is well-defined.
func (l *Lexer) Run() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += size

		if l.ch == '\n' {
			l.line++
			l.column = 0
		} else {
			l.column++
		}
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

func (l *Lexer) NextToken() token.Token {
	if l.inBlock {
		return l.blockToken()
	}
	return l.textToken()
}

// textToken lexes outside of delimiters: raw text up to the next
// {{ or {%, or the delimiter itself.
func (l *Lexer) textToken() token.Token {
	pos := l.currentPos()

	if l.ch == 0 {
		return token.Token{Type: token.EOF, Literal: "", Pos: pos}
	}

	if l.ch == '{' && l.peekChar() == '{' {
		l.readChar()
		l.readChar()
		l.inBlock = true
		return token.Token{Type: token.VAR_START, Literal: "{{", Pos: pos}
	}

	if l.ch == '{' && l.peekChar() == '%' {
		l.readChar()
		l.readChar()
		l.inBlock = true
		return token.Token{Type: token.TAG_START, Literal: "{%", Pos: pos}
	}

	start := l.position
	for l.ch != 0 {
		if l.ch == '{' && (l.peekChar() == '{' || l.peekChar() == '%') {
			break
		}
		l.readChar()
	}

	return token.Token{Type: token.TEXT, Literal: l.input[start:l.position], Pos: pos}
}

// blockToken lexes inside {{ }} / {% %}.
func (l *Lexer) blockToken() token.Token {
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Literal: "", Pos: pos}

	case isSpace(l.ch):
		start := l.position
		for isSpace(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.SPACE, Literal: l.input[start:l.position], Pos: pos}

	case l.ch == '}' && l.peekChar() == '}':
		l.readChar()
		l.readChar()
		l.inBlock = false
		return token.Token{Type: token.VAR_END, Literal: "}}", Pos: pos}

	case l.ch == '%' && l.peekChar() == '}':
		l.readChar()
		l.readChar()
		l.inBlock = false
		return token.Token{Type: token.TAG_END, Literal: "%}", Pos: pos}

	case l.ch == '+':
		l.readChar()
		return token.Token{Type: token.PLUS, Literal: "+", Pos: pos}

	case l.ch == '-':
		l.readChar()
		return token.Token{Type: token.MINUS, Literal: "-", Pos: pos}

	case l.ch == '*':
		l.readChar()
		return token.Token{Type: token.ASTERISK, Literal: "*", Pos: pos}

	case l.ch == '/':
		l.readChar()
		return token.Token{Type: token.SLASH, Literal: "/", Pos: pos}

	case isDigit(l.ch):
		lit, isFloat := l.readNumber()
		typ := token.INT
		if isFloat {
			typ = token.FLOAT
		}
		return token.Token{Type: typ, Literal: lit, Pos: pos}

	case isLetter(l.ch):
		lit := l.readIdentifier()
		typ := token.IDENT
		if lit == "true" || lit == "false" {
			typ = token.BOOL
		}
		return token.Token{Type: typ, Literal: lit, Pos: pos}

	default:
		lit := string(l.ch)
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: lit, Pos: pos}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() (string, bool) {
	start := l.position
	isFloat := false

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // consume .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position], isFloat
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
