package errors

import (
	"fmt"

	"github.com/btouchard/plume/internal/compiler/token"
)

// ParseError is a fatal parse failure carrying the offending token and
// its source position. A single parse returns at most one ParseError:
// the parser aborts on the first malformed construct and produces no
// partial tree.
type ParseError struct {
	Name    string // template name, for diagnostics
	Tok     token.Token
	Message string
}

func (e *ParseError) Error() string {
	pos := e.Tok.Pos
	if e.Name != "" {
		return fmt.Sprintf("%s:%d:%d: %s (near %s %q)", e.Name, pos.Line, pos.Column, e.Message, e.Tok.Type, e.Tok.Literal)
	}
	return fmt.Sprintf("%d:%d: %s (near %s %q)", pos.Line, pos.Column, e.Message, e.Tok.Type, e.Tok.Literal)
}

// New builds a ParseError for the given template name and token.
func New(name string, tok token.Token, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Name:    name,
		Tok:     tok,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorList collects diagnostics across multiple templates, one entry
// per failed parse. Used by the CLI check command.
type ErrorList struct {
	Errors []*ParseError
}

func NewErrorList() *ErrorList {
	return &ErrorList{}
}

func (el *ErrorList) Add(err *ParseError) {
	el.Errors = append(el.Errors, err)
}

func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

func (el *ErrorList) String() string {
	s := ""
	for _, e := range el.Errors {
		s += e.Error() + "\n"
	}
	return s
}
