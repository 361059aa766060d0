/*
File    : lox/eval/eval_expressions.go

Expression evaluation, one arm per ast.Expr variant. Operator semantics
follow Lox's rules exactly: `+` overloads number-add and string-concat,
the rest of the arithmetic/comparison operators require two numbers,
equality (`==`/`!=`) is defined over any pair of values via value.Equal, and
truthiness follows value.IsTruthy (only `false` and `nil` are falsy).
*/
package eval

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/token"
	"github.com/cxljs/lox/value"
)

func (in *Interpreter) evalExpr(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evalExpr(e.Inner)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		v, err := in.lookUpVariable(e.Name.Lexeme, e.ID())
		if err != nil {
			return nil, in.undefinedVariableError(e.Name)
		}
		return v, nil

	case *ast.Assign:
		v, err := in.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if d, ok := in.depths[e.ID()]; ok {
			in.env.AssignAt(d, e.Name.Lexeme, v)
		} else if err := in.Globals.Assign(e.Name.Lexeme, v); err != nil {
			return nil, in.undefinedVariableError(e.Name)
		}
		return v, nil

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		v, err := in.lookUpVariable("this", e.ID())
		if err != nil {
			return nil, newRuntimeError(e.Keyword.Line, "Can't resolve 'this'.")
		}
		return v, nil

	case *ast.Super:
		return in.evalSuper(e)

	default:
		return nil, fmt.Errorf("eval: unhandled expression %T", expr)
	}
}

// literalValue decodes a scanned token into its runtime Value. The lexer
// already parsed NUMBER/STRING literals into Token.Literal; this just
// re-tags them into the value domain.
func literalValue(tok token.Token) value.Value {
	switch tok.Type {
	case token.NUMBER:
		return value.Number(tok.Literal.(float64))
	case token.STRING:
		return value.String(tok.Literal.(string))
	case token.TRUE:
		return value.Bool(true)
	case token.FALSE:
		return value.Bool(false)
	case token.NIL:
		return value.Nil{}
	default:
		panic(fmt.Sprintf("eval: unexpected literal token %s", tok.Type))
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, newRuntimeError(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return value.Bool(!value.IsTruthy(right)), nil
	default:
		return nil, newRuntimeError(e.Op.Line, "Unknown unary operator '%s'.", e.Op.Lexeme)
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Op.Line, "Operands must be two numbers or two strings.")
	case token.MINUS:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.SLASH:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, newRuntimeError(e.Op.Line, "divide by zero")
		}
		return ln / rn, nil
	case token.STAR:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.GREATER:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return value.Bool(ln > rn), nil
	case token.GREATER_EQUAL:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return value.Bool(ln >= rn), nil
	case token.LESS:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return value.Bool(ln < rn), nil
	case token.LESS_EQUAL:
		ln, rn, err := numberOperands(e.Op.Line, left, right)
		if err != nil {
			return nil, err
		}
		return value.Bool(ln <= rn), nil
	case token.EQUAL_EQUAL:
		return value.Bool(value.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return value.Bool(!value.Equal(left, right)), nil
	default:
		return nil, newRuntimeError(e.Op.Line, "Unknown binary operator '%s'.", e.Op.Lexeme)
	}
}

func numberOperands(line int, left, right value.Value) (value.Number, value.Number, error) {
	ln, ok := left.(value.Number)
	if !ok {
		return 0, 0, newRuntimeError(line, "Operands must be numbers.")
	}
	rn, ok := right.(value.Number)
	if !ok {
		return 0, 0, newRuntimeError(line, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	// Short-circuit: `or` returns early on a truthy left, `and` on a falsy
	// one, in both cases without evaluating the right operand.
	if e.Op.Type == token.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return in.evalExpr(e.Right)
}

// undefinedVariableError renders the runtime error for a missing binding,
// enriched with a fuzzy "did you mean" suggestion drawn from every name
// visible in the current frame chain plus globals.
func (in *Interpreter) undefinedVariableError(name token.Token) error {
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	if suggestion := in.suggestName(name.Lexeme); suggestion != "" {
		msg = fmt.Sprintf("%s Did you mean '%s'?", msg, suggestion)
	}
	return newRuntimeError(name.Line, "%s", msg)
}

func (in *Interpreter) suggestName(typo string) string {
	var candidates []string
	for env := in.env; env != nil; env = env.Enclosing() {
		candidates = append(candidates, env.Names()...)
	}
	best := ""
	bestDist := -1
	for _, c := range candidates {
		if c == typo {
			continue
		}
		d := fuzzy.RankMatchFold(typo, c)
		if d < 0 {
			continue
		}
		if bestDist == -1 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
