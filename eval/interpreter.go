/*
File    : lox/eval/interpreter.go

Package eval is the tree-walking evaluator: it executes the statement list
produced by the parser and resolved by the resolver, writing `print` output
to Stdout and runtime errors to Stderr. One Interpreter owns its own
output writers (Stdout, Stderr) for as long as it lives, which a Runner
stretches across every input of a REPL session.
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/environment"
	"github.com/cxljs/lox/resolver"
	"github.com/cxljs/lox/value"
)

// RuntimeError is a failure discovered while executing already-parsed,
// already-resolved code. These are reported individually, one per
// top-level statement, unlike the batched lex/parse/resolve errors.
type RuntimeError struct {
	Line int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Line)
}

func newRuntimeError(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack back to the enclosing Function.Call
// when a Lox `return` statement executes. It is not a user-facing error;
// execStmts/execBlock propagate it like any other error, and Function.Call
// recognizes it with asReturn (errors.As).
type returnSignal struct {
	value value.Value
}

func (returnSignal) Error() string { return "return outside function (interpreter bug)" }

// Interpreter holds the mutable execution state for one program run: the
// global frame, the frame currently in scope, and the resolver's depth
// table that tells variable/assignment/this/super lookups
// exactly how many frames to walk instead of searching.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	depths  resolver.Depths

	Stdout io.Writer
	Stderr io.Writer
	Log    *logrus.Logger
}

// New builds an Interpreter with clock() registered in the global frame and
// output directed at os.Stdout/os.Stderr.
func New(depths resolver.Depths) *Interpreter {
	globals := environment.New()
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	interp := &Interpreter{
		Globals: globals,
		env:     globals,
		depths:  depths,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Log:     log,
	}
	registerNatives(globals)
	return interp
}

// Interpret executes stmts in order, reporting the first runtime error
// encountered on that statement to Stderr and moving on to the next
// top-level statement, rather than aborting the whole program.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	var first error
	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			fmt.Fprintln(in.Stderr, err.Error())
			in.Log.WithError(err).Debug("runtime error")
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	return in.execStmt(stmt)
}

// SetDepths installs the depth table produced by resolving the statements
// about to be interpreted. A Runner calls this once per Run so a REPL
// session can re-resolve and swap the table between successive inputs
// while keeping the same global frame (and thus the same accumulated
// variables, functions and classes) across the whole session.
func (in *Interpreter) SetDepths(depths resolver.Depths) {
	in.depths = depths
}

// lookUpVariable resolves name/expr through the depth table when the
// resolver recorded one, falling back to a global lookup otherwise (an
// absent entry means "not found in any local scope").
func (in *Interpreter) lookUpVariable(name string, exprID int64) (value.Value, error) {
	if d, ok := in.depths[exprID]; ok {
		return in.env.GetAt(d, name), nil
	}
	return in.Globals.Get(name)
}
