/*
File    : lox/cmd/lox/main.go

Entry point: `lox` with no arguments starts the REPL; `lox FILE` runs a
script and exits with the conventional Lox interpreter exit code (0 on
success, 65 on a lex/parse/resolve error, 70 on a runtime error); `--watch`
re-runs FILE on every save; `--debug` raises the trace logger to Debug;
`--print-ast` also dumps the parsed tree after running the script (the
script still runs; it is not a parse-only mode). More than one argument
prints `Usage: lox [filename]` and exits 1.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cxljs/lox/eval"
	"github.com/cxljs/lox/lox"
	"github.com/cxljs/lox/repl"
)

func main() {
	var (
		debug    bool
		watch    bool
		printAST bool
	)

	root := &cobra.Command{
		Use:   "lox [script]",
		Short: "Run or interactively evaluate Lox programs",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				cmd.SilenceErrors, cmd.SilenceUsage = true, true
				return fmt.Errorf("Usage: lox [filename]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if watch {
					return fmt.Errorf("--watch requires a script argument")
				}
				return runRepl()
			}
			return runFile(args[0], debug, watch, printAST)
		},
	}

	root.Flags().BoolVar(&debug, "debug", false, "trace each pipeline stage to stderr")
	root.Flags().BoolVar(&watch, "watch", false, "re-run the script whenever it changes on disk")
	root.Flags().BoolVar(&printAST, "print-ast", false, "print the parsed syntax tree after running the script")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRepl() error {
	return repl.New().Start(os.Stdout)
}

func runFile(path string, debug, watch, printAST bool) error {
	runner := lox.NewRunner()
	runner.SetDebug(debug)

	run := func() int {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		stmts, runErr := runner.Run(string(source))
		if printAST {
			runner.PrintAST(os.Stdout, stmts)
		}
		return exitCode(runErr)
	}

	if !watch {
		code := run()
		if code != 0 {
			os.Exit(code)
		}
		return nil
	}
	return watchAndRun(path, run)
}

// exitCode follows the conventional split between a static failure (lex,
// parse or resolve never produced a runnable program: exit 65) and a
// runtime failure (the program ran but one of its statements errored:
// exit 70). A *eval.RuntimeError is always the latter; any other non-nil
// error came from an earlier stage.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case isRuntimeError(err):
		return 70
	default:
		return 65
	}
}

func isRuntimeError(err error) bool {
	_, ok := err.(*eval.RuntimeError)
	return ok
}

func watchAndRun(path string, run func() int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	run()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				run()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
