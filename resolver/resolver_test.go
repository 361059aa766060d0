package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/lexer"
	"github.com/cxljs/lox/parser"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, Depths, error) {
	t.Helper()
	tokens, err := lexer.New(src).ScanTokens()
	assert.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	assert.NoError(t, err)
	depths, rerr := Resolve(stmts)
	return stmts, depths, rerr
}

func TestResolve_LocalVariableGetsDepth(t *testing.T) {
	_, depths, err := resolveSrc(t, `{ var a = 1; { var b = a; } }`)
	assert.NoError(t, err)
	assert.NotEmpty(t, depths)
}

func TestResolve_SelfReferentialLocalInitializerErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var x = x; }`)
	assert.Error(t, err)
}

func TestResolve_TopLevelReturnErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `return 1;`)
	assert.Error(t, err)
}

func TestResolve_DuplicateLocalDeclarationErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	assert.Error(t, err)
}

func TestResolve_DuplicateGlobalDeclarationAllowed(t *testing.T) {
	_, _, err := resolveSrc(t, `var a = 1; var a = 2;`)
	assert.NoError(t, err)
}

func TestResolve_ThisOutsideClassErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `print this;`)
	assert.Error(t, err)
}

func TestResolve_SuperWithoutSuperclassErrors(t *testing.T) {
	_, _, err := resolveSrc(t, `class A { m() { super.m(); } }`)
	assert.Error(t, err)
}

func TestResolve_ClosureCaptureDepthIsStableAcrossShadowing(t *testing.T) {
	// Regression test: the variable expression inside
	// show's body should resolve `a` to the binding visible where show was
	// declared (the global), independent of any later shadowing declaration
	// in the enclosing block.
	src := `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "block";
			show();
		}
	`
	stmts, depths, err := resolveSrc(t, src)
	assert.NoError(t, err)

	block := stmts[1].(*ast.BlockStmt)
	fn := block.Statements[0].(*ast.FunctionStmt)
	printStmt := fn.Body[0].(*ast.PrintStmt)
	variable := printStmt.Expression.(*ast.Variable)

	// `a` is not declared inside show's own scope, so it resolves through
	// globals and is absent from the depth table.
	_, ok := depths[variable.ID()]
	assert.False(t, ok)
}

func TestResolve_DepthsForNestedBlocksMatchExpected(t *testing.T) {
	src := `
		{
			var a = 1;
			{
				var b = 2;
				{
					print a;
					print b;
				}
			}
		}
	`
	stmts, depths, err := resolveSrc(t, src)
	assert.NoError(t, err)

	outer := stmts[0].(*ast.BlockStmt)
	mid := outer.Statements[1].(*ast.BlockStmt)
	inner := mid.Statements[1].(*ast.BlockStmt)
	printA := inner.Statements[0].(*ast.PrintStmt).Expression.(*ast.Variable)
	printB := inner.Statements[1].(*ast.PrintStmt).Expression.(*ast.Variable)

	got := map[string]int{"a": depths[printA.ID()], "b": depths[printB.ID()]}
	want := map[string]int{"a": 2, "b": 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("depth mismatch (-want +got):\n%s", diff)
	}
}
