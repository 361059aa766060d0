/*
File    : lox/ast/printer.go

A debug-only tree dumper, adapted from a root-level PrintingVisitor demo
(which walked an arithmetic-only demo grammar) onto this package's full
Lox statement/expression node set. Wired behind `lox --print-ast`.
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer renders a statement tree as an indented, parenthesized dump.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Print returns the rendered form of a full statement list.
func Print(stmts []Stmt) string {
	p := &Printer{}
	for _, s := range stmts {
		p.stmt(s)
	}
	return p.buf.String()
}

func (p *Printer) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) stmt(s Stmt) {
	switch n := s.(type) {
	case *ExpressionStmt:
		p.line("(expr)")
		p.nested(func() { p.expr(n.Expression) })
	case *PrintStmt:
		p.line("(print)")
		p.nested(func() { p.expr(n.Expression) })
	case *VarStmt:
		p.line("(var %s)", n.Name.Lexeme)
		if n.Initializer != nil {
			p.nested(func() { p.expr(n.Initializer) })
		}
	case *BlockStmt:
		p.line("(block)")
		p.nested(func() {
			for _, inner := range n.Statements {
				p.stmt(inner)
			}
		})
	case *IfStmt:
		p.line("(if)")
		p.nested(func() {
			p.expr(n.Condition)
			p.stmt(n.Then)
			if n.Else != nil {
				p.stmt(n.Else)
			}
		})
	case *WhileStmt:
		p.line("(while)")
		p.nested(func() {
			p.expr(n.Condition)
			p.stmt(n.Body)
		})
	case *ReturnStmt:
		p.line("(return)")
		if n.Value != nil {
			p.nested(func() { p.expr(n.Value) })
		}
	case *FunctionStmt:
		p.line("(fun %s)", n.Name.Lexeme)
		p.nested(func() {
			for _, inner := range n.Body {
				p.stmt(inner)
			}
		})
	case *ClassStmt:
		p.line("(class %s)", n.Name.Lexeme)
		p.nested(func() {
			for _, m := range n.Methods {
				p.stmt(m)
			}
		})
	default:
		p.line("(unknown stmt)")
	}
}

func (p *Printer) expr(e Expr) {
	switch n := e.(type) {
	case *Literal:
		p.line("(literal %s)", n.Value.Lexeme)
	case *Unary:
		p.line("(unary %s)", n.Op.Lexeme)
		p.nested(func() { p.expr(n.Right) })
	case *Binary:
		p.line("(binary %s)", n.Op.Lexeme)
		p.nested(func() { p.expr(n.Left); p.expr(n.Right) })
	case *Logical:
		p.line("(logical %s)", n.Op.Lexeme)
		p.nested(func() { p.expr(n.Left); p.expr(n.Right) })
	case *Grouping:
		p.line("(group)")
		p.nested(func() { p.expr(n.Inner) })
	case *Variable:
		p.line("(var %s)", n.Name.Lexeme)
	case *Assign:
		p.line("(assign %s)", n.Name.Lexeme)
		p.nested(func() { p.expr(n.Value) })
	case *Call:
		p.line("(call)")
		p.nested(func() {
			p.expr(n.Callee)
			for _, a := range n.Args {
				p.expr(a)
			}
		})
	case *Get:
		p.line("(get %s)", n.Name.Lexeme)
		p.nested(func() { p.expr(n.Object) })
	case *Set:
		p.line("(set %s)", n.Name.Lexeme)
		p.nested(func() { p.expr(n.Object); p.expr(n.Value) })
	case *This:
		p.line("(this)")
	case *Super:
		p.line("(super %s)", n.Method.Lexeme)
	default:
		p.line("(unknown expr)")
	}
}
