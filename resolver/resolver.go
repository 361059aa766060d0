/*
File    : lox/resolver/resolver.go

Package resolver performs a static pass: a single depth-first walk over the
statement tree that binds every name-use to a definite enclosing-scope
depth, so the evaluator never has to search the environment chain at
runtime. Without this pass a closure captured before a later shadowing
declaration would silently read the wrong binding.
*/
package resolver

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/token"
)

// Depths maps an expression's identity to how many environment links to
// walk up from the evaluator's current frame. Absence means "resolve
// through globals".
type Depths map[int64]int

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkInitializer
	fkMethod
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

type resolver struct {
	scopes      []map[string]bool
	depths      Depths
	currentFn   functionKind
	currentCls  classKind
	errs        *multierror.Error
}

// Resolve walks stmts and returns the depth table it built and, if any
// diagnostic was recorded, a non-nil error aggregating all of them.
func Resolve(stmts []ast.Stmt) (Depths, error) {
	r := &resolver{depths: make(Depths)}
	r.resolveStmts(stmts)
	if r.errs != nil {
		return r.depths, r.errs.ErrorOrNil()
	}
	return r.depths, nil
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fkFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.ReturnStmt:
		if r.currentFn == fkNone {
			r.reportf(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFn == fkInitializer {
				r.reportf(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	default:
		panic(fmt.Sprintf("resolver: unhandled statement %T", stmt))
	}
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingCls := r.currentCls
	r.currentCls = ckClass
	defer func() { r.currentCls = enclosingCls }()

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reportf(s.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentCls = ckSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, m := range s.Methods {
		kind := fkMethod
		if m.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(m, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionKind) {
	enclosingFn := r.currentFn
	r.currentFn = kind
	defer func() { r.currentFn = enclosingFn }()

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.reportf(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID(), e.Name)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// no names to bind

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentCls == ckNone {
			r.reportf(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID(), e.Keyword)

	case *ast.Super:
		switch r.currentCls {
		case ckNone:
			r.reportf(e.Keyword, "Can't use 'super' outside of a class.")
		case ckClass:
			r.reportf(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e.ID(), e.Keyword)

	default:
		panic(fmt.Sprintf("resolver: unhandled expression %T", expr))
	}
}

// resolveLocal searches the scope stack from innermost outward and records
// the hop count for exprID the first time name is found, leaving it
// unrecorded (global lookup) if no local scope declares it.
func (r *resolver) resolveLocal(exprID int64, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope as "not yet defined". Redeclaring
// a name within the same non-global scope is a diagnostic; the global scope
// (empty scope stack) permits silent rebinding.
func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reportf(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *resolver) reportf(tok token.Token, msg string) {
	var rendered string
	if tok.Type == token.EOF {
		rendered = fmt.Sprintf("[line %d] Error at end: %s", tok.Line, msg)
	} else {
		rendered = fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, msg)
	}
	r.errs = multierror.Append(r.errs, fmt.Errorf("%s", rendered))
}
