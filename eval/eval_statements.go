/*
File    : lox/eval/eval_statements.go

Statement execution. A block (bare `{ }`, a function body, a loop body)
always runs in a fresh child Environment so declarations inside it do not
leak outward, and execBlock restores the caller's frame on the way out
even when a return/error unwinds through it.
*/
package eval

import (
	"errors"
	"fmt"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/environment"
	"github.com/cxljs/lox/value"
)

func (in *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evalExpr(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := in.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, v.String())
		return nil

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = in.evalExpr(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return in.execBlock(s.Statements, environment.NewChild(in.env))

	case *ast.IfStmt:
		cond, err := in.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if value.IsTruthy(cond) {
			return in.execStmt(s.Then)
		}
		if s.Else != nil {
			return in.execStmt(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evalExpr(s.Condition)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
			if err := in.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.ReturnStmt:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			var err error
			v, err = in.evalExpr(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}

	case *ast.FunctionStmt:
		fn := NewFunction(s, in.env, false, in)
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ClassStmt:
		return in.execClass(s)

	default:
		return fmt.Errorf("eval: unhandled statement %T", stmt)
	}
}

func (in *Interpreter) execStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// execBlock swaps in env for the duration of stmts and always restores the
// previous frame, even when a returnSignal or runtime error is unwinding
// through it.
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()
	return in.execStmts(stmts)
}

func asReturn(err error) (returnSignal, bool) {
	var rs returnSignal
	if errors.As(err, &rs) {
		return rs, true
	}
	return returnSignal{}, false
}
