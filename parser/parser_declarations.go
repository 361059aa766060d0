/*
File    : lox/parser/parser_declarations.go

Declaration-level grammar: varDecl, funDecl/function, classDecl.
*/
package parser

import (
	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/token"
)

// varDecl -> "var" IDENTIFIER ("=" expression)? ";"  ("var" already consumed)
func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// function -> IDENTIFIER "(" params? ")" block  ("fun" already consumed for
// top-level declarations; class methods call this directly without it).
func (p *Parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// classDecl -> "class" IDENTIFIER ("<" IDENTIFIER)? "{" function* "}"
func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		superName := p.consume(token.IDENTIFIER, "Expect superclass name.")
		superclass = ast.NewVariable(superName)
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}
