package parser

import (
	"strconv"

	"github.com/btouchard/plume/internal/compiler/ast"
	"github.com/btouchard/plume/internal/compiler/errors"
	"github.com/btouchard/plume/internal/compiler/lexer"
	"github.com/btouchard/plume/internal/compiler/token"
)

// Parser turns a template into an AST. The whole input is tokenized
// eagerly at construction; parsing is a single left-to-right walk over
// the token list. The first malformed construct aborts the parse with
// a *errors.ParseError and no partial tree.
//
// A Parser is single-use and not safe for concurrent use, but
// independent parsers may run in parallel.
type Parser struct {
	name   string
	tokens []token.Token
	pos    int // index of the next token to read
}

// New creates a parser for the given template. name is only used in
// diagnostics.
func New(name, input string) *Parser {
	return &Parser{
		name:   name,
		tokens: lexer.New(input).Run(),
	}
}

// Parse is a convenience wrapper: tokenize and parse in one call.
func Parse(name, input string) (*ast.List, error) {
	return New(name, input).Parse()
}

// Parse walks the token list and returns the root node. The root is
// always a List whose children alternate freely between Text and
// VariableBlock nodes, in source order.
func (p *Parser) Parse() (*ast.List, error) {
	root := ast.NewList(p.tokens[0].Pos)

	for {
		node, err := p.parseNext()
		if err != nil {
			return nil, err
		}
		if node == nil {
			return root, nil
		}
		root.Push(node)
	}
}

// ---- token cursor ----

// peek returns the current token without consuming it. The lexer
// guarantees a trailing EOF sentinel, so in-bounds lookahead never
// runs off the list; past the end we keep returning it.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// next consumes and returns the current token.
func (p *Parser) next() token.Token {
	tok := p.peek()
	p.pos++
	return tok
}

// peekNonSpace looks ahead to the next token that isn't a SPACE,
// without consuming it. The lookahead advances by exactly one
// non-space token, so rewinding by one position restores the cursor.
// Any future lookahead of more than one token must not reuse this
// rewind-by-one trick.
func (p *Parser) peekNonSpace() token.Token {
	tok := p.next()
	for tok.Type == token.SPACE {
		tok = p.next()
	}
	p.pos--

	return tok
}

// nextNonSpace consumes tokens up to and including the next non-space
// token and returns it.
func (p *Parser) nextNonSpace() token.Token {
	tok := p.next()
	for tok.Type == token.SPACE {
		tok = p.next()
	}
	return tok
}

// expect consumes the next non-space token, failing if its type is
// not t.
func (p *Parser) expect(t token.Type) (token.Token, error) {
	tok := p.peekNonSpace()
	if tok.Type != t {
		return tok, errors.New(p.name, tok, "expected %s", t)
	}
	return p.nextNonSpace(), nil
}

// ---- top-level dispatch ----

// parseNext parses one top-level node, or returns nil at end of input.
func (p *Parser) parseNext() (ast.Node, error) {
	switch tok := p.peek(); tok.Type {
	case token.VAR_START:
		return p.parseVariableBlock()
	case token.TEXT:
		return p.parseText(), nil
	case token.TAG_START:
		return nil, errors.New(p.name, tok, "tag blocks ({%% %%}) are not supported")
	default:
		return nil, nil
	}
}

func (p *Parser) parseText() ast.Node {
	tok := p.next()
	return &ast.Text{Value: tok.Literal, Position: tok.Pos}
}

// parseVariableBlock parses {{ expression }}. The node is positioned
// at the opening delimiter.
func (p *Parser) parseVariableBlock() (ast.Node, error) {
	start, err := p.expect(token.VAR_START)
	if err != nil {
		return nil, err
	}

	expr, err := p.parseWholeExpression(nil, token.VAR_END)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.VAR_END); err != nil {
		return nil, err
	}

	return &ast.VariableBlock{Expr: expr, Position: start.Pos}, nil
}

// ---- expression engine ----

// parseWholeExpression parses operand/operator tokens up to the
// terminator into a single expression tree, resolving the two
// precedence tiers (* / above + -) by precedence climbing: one-token
// lookahead and a working stack, no precedence table.
//
// The stack is shared with recursive calls so the right-hand side
// parse can see what has already been accumulated; every call's net
// effect on it is zero (it seeds one operand and finally pops one
// node), which is what makes the sharing sound.
func (p *Parser) parseWholeExpression(stack *ast.List, terminator token.Type) (ast.Node, error) {
	if stack == nil {
		stack = ast.NewList(p.peekNonSpace().Pos)
	}

	seed, err := p.parseSingleExpression(terminator)
	if err != nil {
		return nil, err
	}
	stack.Push(seed)

	for {
		tok := p.peekNonSpace()
		if tok.Type == terminator {
			if stack.IsEmpty() {
				return nil, errors.New(p.name, tok, "unexpected end of expression")
			}
			return stack.Pop(), nil
		}

		switch tok.Type {
		case token.PLUS, token.MINUS:
			p.nextNonSpace()
			if stack.IsEmpty() {
				// cannot happen: the stack is always seeded above
				continue
			}

			// The right-hand side of + or - must consult the rest of
			// the expression, because a following * or / binds
			// tighter than the pending operator.
			rhs, err := p.parseWholeExpression(stack, terminator)
			if err != nil {
				return nil, err
			}

			if p.peekNonSpace().Precedence() > tok.Precedence() {
				// A higher tier follows: defer the combination until
				// the chain to the right is fully resolved.
				stack.Push(rhs)
				return p.parseWholeExpression(stack, terminator)
			}

			lhs := stack.Pop()
			stack.Push(&ast.Math{
				Left:     lhs,
				Right:    rhs,
				Operator: tok.Literal,
				Position: lhs.Pos(),
			})

		case token.ASTERISK, token.SLASH:
			p.nextNonSpace()
			if stack.IsEmpty() {
				return nil, errors.New(p.name, tok, "unexpected %s at start of expression", tok.Literal)
			}

			// * and / are the highest tier, so the right operand can
			// never start a tighter-binding sub-expression: a single
			// operand is enough.
			rhs, err := p.parseSingleExpression(terminator)
			if err != nil {
				return nil, err
			}

			lhs := stack.Pop()
			stack.Push(&ast.Math{
				Left:     lhs,
				Right:    rhs,
				Operator: tok.Literal,
				Position: lhs.Pos(),
			})

		default:
			return nil, errors.New(p.name, tok, "unexpected token in expression")
		}
	}
}

// parseSingleExpression parses exactly one operand: an identifier or
// a literal.
func (p *Parser) parseSingleExpression(terminator token.Type) (ast.Node, error) {
	tok := p.peekNonSpace()

	if tok.Type == terminator {
		return nil, errors.New(p.name, tok, "expected an expression")
	}

	switch tok.Type {
	case token.IDENT:
		return p.parseIdentifier(), nil
	case token.INT, token.FLOAT, token.BOOL:
		return p.parseLiteral()
	case token.PLUS, token.MINUS:
		return nil, errors.New(p.name, tok, "unary %s is not supported", tok.Literal)
	default:
		return nil, errors.New(p.name, tok, "unexpected token in expression")
	}
}

func (p *Parser) parseIdentifier() ast.Node {
	tok := p.nextNonSpace()
	return &ast.Ident{Name: tok.Literal, Position: tok.Pos}
}

func (p *Parser) parseLiteral() (ast.Node, error) {
	tok := p.nextNonSpace()

	switch tok.Type {
	case token.INT:
		v, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return nil, errors.New(p.name, tok, "invalid integer literal")
		}
		return &ast.IntLit{Value: int32(v), Position: tok.Pos}, nil

	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Literal, 32)
		if err != nil {
			return nil, errors.New(p.name, tok, "invalid float literal")
		}
		return &ast.FloatLit{Value: float32(v), Position: tok.Pos}, nil

	case token.BOOL:
		// Strict spelling only. The lexer already guarantees this,
		// but a literal that is neither is still rejected rather
		// than coerced.
		switch tok.Literal {
		case "true":
			return &ast.BoolLit{Value: true, Position: tok.Pos}, nil
		case "false":
			return &ast.BoolLit{Value: false, Position: tok.Pos}, nil
		default:
			return nil, errors.New(p.name, tok, "invalid boolean literal")
		}

	default:
		return nil, errors.New(p.name, tok, "unexpected token when parsing literal")
	}
}
