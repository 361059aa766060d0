/*
File    : lox/ast/ast.go

Package ast defines the statement and expression tree produced by the
parser and walked by the resolver and evaluator. Expr nodes carry a unique
ID so the resolver can key its depth table on a specific occurrence of a
name-use rather than on the name's text (hashing an expression's
content is wrong, since two uses of the same identifier must resolve
independently).
*/
package ast

import "github.com/cxljs/lox/token"

var nextID int64

func newID() int64 {
	nextID++
	return nextID
}

// Expr is any expression node. ID distinguishes syntactically identical but
// textually distinct occurrences (e.g. two uses of `x`).
type Expr interface {
	exprNode()
	ID() int64
}

type exprBase struct{ id int64 }

func (e exprBase) ID() int64 { return e.id }
func (exprBase) exprNode()   {}

// Literal is a literal token: number, string, true, false or nil.
type Literal struct {
	exprBase
	Value token.Token
}

// Unary is a prefix operator: `!right` or `-right`.
type Unary struct {
	exprBase
	Op    token.Token
	Right Expr
}

// Binary is an arithmetic/comparison/equality infix operator.
type Binary struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is `and`/`or`, kept distinct from Binary so the evaluator can
// implement short-circuit, truthy-returning semantics.
type Logical struct {
	exprBase
	Left  Expr
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression.
type Grouping struct {
	exprBase
	Inner Expr
}

// Variable reads a name.
type Variable struct {
	exprBase
	Name token.Token
}

// Assign writes a value to a name.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

// Call invokes a callee with positional arguments. Paren is the closing
// `)` token, used to attribute runtime errors to a line.
type Call struct {
	exprBase
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Get reads a property off an object (`object.name`).
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

// Set writes a property on an object (`object.name = value`).
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

// This is the `this` keyword inside a method body.
type This struct {
	exprBase
	Keyword token.Token
}

// Super is a `super.method` reference inside a subclass method body.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func newExpr() exprBase { return exprBase{id: newID()} }

func NewLiteral(value token.Token) *Literal { return &Literal{exprBase: newExpr(), Value: value} }
func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExpr(), Op: op, Right: right}
}
func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExpr(), Left: left, Op: op, Right: right}
}
func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExpr(), Left: left, Op: op, Right: right}
}
func NewGrouping(inner Expr) *Grouping { return &Grouping{exprBase: newExpr(), Inner: inner} }
func NewVariable(name token.Token) *Variable {
	return &Variable{exprBase: newExpr(), Name: name}
}
func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExpr(), Name: name, Value: value}
}
func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExpr(), Callee: callee, Paren: paren, Args: args}
}
func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExpr(), Object: object, Name: name}
}
func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExpr(), Object: object, Name: name, Value: value}
}
func NewThis(keyword token.Token) *This { return &This{exprBase: newExpr(), Keyword: keyword} }
func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExpr(), Keyword: keyword, Method: method}
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

type stmtBase struct{}

func (stmtBase) stmtNode() {}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	stmtBase
	Expression Expr
}

// PrintStmt evaluates an expression and writes its formatted value.
type PrintStmt struct {
	stmtBase
	Expression Expr
}

// VarStmt declares a name, optionally with an initializer.
type VarStmt struct {
	stmtBase
	Name        token.Token
	Initializer Expr // nil if absent
}

// BlockStmt is a `{ ... }` sequence executed in a fresh child scope.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	stmtBase
	Condition  Expr
	Then       Stmt
	Else       Stmt // nil if absent
}

// WhileStmt is a condition/body loop. `for` desugars into this plus a
// BlockStmt rather than its own node.
type WhileStmt struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

// ReturnStmt unwinds the innermost function call frame.
type ReturnStmt struct {
	stmtBase
	Keyword token.Token
	Value   Expr // nil if absent
}

// FunctionStmt declares a named function (also reused for class methods).
type FunctionStmt struct {
	stmtBase
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// ClassStmt declares a class, its optional superclass variable, and its
// methods.
type ClassStmt struct {
	stmtBase
	Name       token.Token
	Superclass *Variable // nil if absent
	Methods    []*FunctionStmt
}
