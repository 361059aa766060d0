/*
File    : lox/parser/parser.go

Package parser implements a recursive-descent parser:
tokens in, a statement tree out. Errors are batched: on a
parse error the parser reports a diagnostic, synchronizes to a probable
statement boundary, and keeps parsing so a single pass can surface every
error in a file.
*/
package parser

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/token"
)

// errParse marks a recognized-but-unsynchronized parse failure; it's used
// internally to unwind out of the current statement into synchronize.
var errParse = errors.New("parse error")

// Parser consumes a fixed token slice produced by the lexer.
type Parser struct {
	tokens []token.Token
	cur    int
	errs   *multierror.Error
}

// New creates a Parser over tokens (which must end in an EOF token).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the full `program -> declaration* EOF` grammar and returns
// every statement it could recover and, if any diagnostic was recorded, a
// non-nil error aggregating all of them.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	if p.errs != nil {
		return stmts, p.errs.ErrorOrNil()
	}
	return stmts, nil
}

// declaration -> classDecl | funDecl | varDecl | statement
// On error, synchronize and return nil so Parse skips the broken statement.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r == errParse {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// --- token cursor helpers ---

func (p *Parser) atEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.cur] }

func (p *Parser) previous() token.Token { return p.tokens[p.cur-1] }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

// match advances and returns true if the current token is one of types.
func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or raises a parse error.
func (p *Parser) consume(t token.Type, msg string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

// errorAt records a diagnostic at tok in the interpreter's wire format and
// returns the sentinel used to unwind to synchronize.
func (p *Parser) errorAt(tok token.Token, msg string) error {
	var rendered string
	if tok.Type == token.EOF {
		rendered = fmt.Sprintf("[line %d] Error at end: %s", tok.Line, msg)
	} else {
		rendered = fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, msg)
	}
	p.errs = multierror.Append(p.errs, fmt.Errorf("%s", rendered))
	return errParse
}

// synchronize discards tokens until it finds a likely statement boundary,
// bounding how far a single error cascades.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
