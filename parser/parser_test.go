package parser

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, error) {
	t.Helper()
	tokens, err := lexer.New(src).ScanTokens()
	assert.NoError(t, err)
	return New(tokens).Parse()
}

func TestParse_ExpressionStatement(t *testing.T) {
	stmts, err := parse(t, `1 + 2 * 3;`)
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	assert.True(t, ok)
	binary, ok := exprStmt.Expression.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", binary.Op.Lexeme)

	right, ok := binary.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", right.Op.Lexeme) // `*` binds tighter than `+`
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, err := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.NoError(t, err)
	assert.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	assert.True(t, ok)

	loopBody, ok := whileStmt.Body.(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, loopBody.Statements, 2) // original body + increment
}

func TestParse_ClassWithSuperclassAndMethods(t *testing.T) {
	src := heredoc.Doc(`
		class Base {
			greet() { print "hi"; }
		}
		class Derived < Base {
			greet() { super.greet(); }
		}
	`)
	stmts, err := parse(t, src)
	assert.NoError(t, err)
	assert.Len(t, stmts, 2)

	derived, ok := stmts[1].(*ast.ClassStmt)
	assert.True(t, ok)
	assert.NotNil(t, derived.Superclass)
	assert.Equal(t, "Base", derived.Superclass.Name.Lexeme)
	assert.Len(t, derived.Methods, 1)
}

func TestParse_InvalidAssignmentTargetReportsAndContinues(t *testing.T) {
	_, err := parse(t, `1 = 2;`)
	assert.Error(t, err)
}

func TestParse_TooManyArgumentsReportsButParses(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, err := parse(t, src)
	assert.Error(t, err) // still an error, but parsing doesn't abort (see finishCall)
}

func TestParse_TopLevelReturnStillParses(t *testing.T) {
	// Resolver, not parser, rejects top-level return.
	stmts, err := parse(t, `return 1;`)
	assert.NoError(t, err)
	_, ok := stmts[0].(*ast.ReturnStmt)
	assert.True(t, ok)
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	stmts, err := parse(t, `var = 1; var x = 2;`)
	assert.Error(t, err)
	// The second (valid) declaration should still be recovered.
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "x" {
			found = true
		}
	}
	assert.True(t, found)
}
