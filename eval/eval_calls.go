/*
File    : lox/eval/eval_calls.go

Call, property-get/set, class declaration and `super` dispatch. The resolver
always opens the `super` scope one level outside the `this` scope for the
same method body, which is why evalSuper reads `super` and `this` at
adjacent depths below.
*/
package eval

import (
	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/environment"
	"github.com/cxljs/lox/value"
)

func (in *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := in.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(args)
}

func (in *Interpreter) evalGet(e *ast.Get) (value.Value, error) {
	obj, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "Only instances have properties.")
	}
	return inst.Get(e.Name.Lexeme, e.Name.Line)
}

func (in *Interpreter) evalSet(e *ast.Set) (value.Value, error) {
	obj, err := in.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "Only instances have fields.")
	}
	v, err := in.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}

// evalSuper implements the fixed scope-distance relationship the resolver
// sets up: the "super" binding always sits exactly one frame further out
// than the "this" binding for the same method body (resolver.go's
// resolveClass opens the super-scope before the this-scope).
func (in *Interpreter) evalSuper(e *ast.Super) (value.Value, error) {
	d, ok := in.depths[e.ID()]
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line, "Can't resolve 'super'.")
	}
	superclass, ok := in.env.GetAt(d, "super").(*Class)
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line, "'super' did not resolve to a class.")
	}
	instance, ok := in.env.GetAt(d-1, "this").(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Keyword.Line, "'this' did not resolve to an instance.")
	}
	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}

// execClass declares a class, binding it in two passes (forward-declaring
// the name before building its method table) so methods can reference the
// class name and, via `super`, a superclass's methods.
func (in *Interpreter) execClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evalExpr(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, value.Nil{})

	methodEnv := in.env
	if superclass != nil {
		methodEnv = environment.NewChild(in.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, methodEnv, m.Name.Lexeme == "init", in)
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return in.env.Assign(s.Name.Lexeme, class)
}
