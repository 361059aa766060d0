/*
File    : lox/lox/lox.go

Package lox wires the four pipeline stages — lexer, parser, resolver,
evaluator — into the single entry point cmd/lox and the REPL both call.
Lex/parse/resolve errors are collected and reported together and abort the
run; a runtime error is reported per top-level statement and does not stop
the remaining statements from executing.
*/
package lox

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cxljs/lox/ast"
	"github.com/cxljs/lox/diagnostics"
	"github.com/cxljs/lox/eval"
	"github.com/cxljs/lox/lexer"
	"github.com/cxljs/lox/parser"
	"github.com/cxljs/lox/resolver"
)

// Runner owns one Interpreter so a REPL session accumulates global state
// (variables, functions, classes) across successive calls to Run.
type Runner struct {
	interp *eval.Interpreter
	Log    *logrus.Logger
}

// NewRunner builds a Runner with a fresh global environment, printing to
// os.Stdout and reporting diagnostics to os.Stderr.
func NewRunner() *Runner {
	log := diagnostics.NewTracer(os.Stderr, logrus.WarnLevel)
	interp := eval.New(nil)
	interp.Log = log
	return &Runner{interp: interp, Log: log}
}

// SetOutput redirects both the `print` stream and the diagnostic stream.
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.interp.Stdout = stdout
	r.interp.Stderr = stderr
}

// SetDebug raises the Runner's trace level so every stage boundary logs.
func (r *Runner) SetDebug(on bool) {
	if on {
		r.Log.SetLevel(logrus.DebugLevel)
	} else {
		r.Log.SetLevel(logrus.WarnLevel)
	}
}

// Run lexes, parses, resolves and evaluates source, writing `print` output
// to Stdout and every diagnostic to Stderr. It returns the parsed
// statements (useful for --print-ast) and the first error encountered, if
// any stage failed.
func (r *Runner) Run(source string) ([]ast.Stmt, error) {
	tokens, lexErr := lexer.New(source).ScanTokens()
	diagnostics.Trace(r.Log, diagnostics.StageLex, lexErr)
	if lexErr != nil {
		diagnostics.Report(r.interp.Stderr, lexErr)
		return nil, lexErr
	}

	stmts, parseErr := parser.New(tokens).Parse()
	diagnostics.Trace(r.Log, diagnostics.StageParse, parseErr)
	if parseErr != nil {
		diagnostics.Report(r.interp.Stderr, parseErr)
		return stmts, parseErr
	}

	depths, resolveErr := resolver.Resolve(stmts)
	diagnostics.Trace(r.Log, diagnostics.StageResolve, resolveErr)
	if resolveErr != nil {
		diagnostics.Report(r.interp.Stderr, resolveErr)
		return stmts, resolveErr
	}

	r.interp.SetDepths(depths)
	runErr := r.interp.Interpret(stmts)
	diagnostics.Trace(r.Log, diagnostics.StageEvaluate, runErr)
	return stmts, runErr
}

// PrintAST renders stmts with ast.Print, for --print-ast.
func (r *Runner) PrintAST(w io.Writer, stmts []ast.Stmt) {
	io.WriteString(w, ast.Print(stmts))
}
