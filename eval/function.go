/*
File    : lox/eval/function.go

Function is a user-defined Lox function or method: an ast.FunctionStmt
paired with the Environment that was live at its declaration site (the
closure). Calling a Function runs its body in a fresh child of that
closure, never of the caller's frame — this is what makes closures and
class methods see the bindings they were declared next to rather than
whatever happens to be in scope at the call site.
*/
package eval

import (
	"fmt"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/environment"
	"github.com/cxljs/lox/value"
)

type Function struct {
	decl          *ast.FunctionStmt
	closure       *environment.Environment
	isInitializer bool
	interp        *Interpreter
}

func NewFunction(decl *ast.FunctionStmt, closure *environment.Environment, isInitializer bool, interp *Interpreter) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer, interp: interp}
}

func (*Function) valueNode() {}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme)
}

func (f *Function) Arity() int { return len(f.decl.Params) }

// Call binds args to params in a fresh frame and executes the body. An
// initializer (`init`) always returns the bound `this`, even on a bare
// `return;`, so
// that `SomeClass(...)` reliably yields the new instance.
func (f *Function) Call(args []value.Value) (value.Value, error) {
	callEnv := environment.NewChild(f.closure)
	for i, param := range f.decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	previous := f.interp.env
	f.interp.env = callEnv
	err := f.interp.execStmts(f.decl.Body)
	f.interp.env = previous

	if rs, isReturn := asReturn(err); isReturn {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return rs.value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return value.Nil{}, nil
}

// Bind returns a copy of f whose closure additionally defines `this` as
// instance, the mechanism that turns a class's method table entries into
// callables usable from `instance.method()` and `super.method()`.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewChild(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer, interp: f.interp}
}
