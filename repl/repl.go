/*
File    : lox/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop: one line of
Lox at a time (a pasted multi-line block is run line by line), evaluated
against a Runner whose global environment persists across inputs so
earlier `var`/`fun`/`class` declarations stay visible. Uses readline for
history/line-editing and fatih/color for the banner; results and errors
are written uncolored.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cxljs/lox/lox"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  _
 | | _____  __
 | |/ _ \ \/ /
 | | (_) >  <
 |_|\___/_/\_\
`

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Version string
	Prompt  string
}

// New builds a Repl with sensible defaults.
func New() *Repl {
	return &Repl{Version: "0.1.0", Prompt: "lox> "}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 40)
	blueColor.Fprintln(w, line)
	greenColor.Fprintln(w, banner)
	blueColor.Fprintln(w, line)
	yellowColor.Fprintln(w, "lox "+r.Version)
	cyanColor.Fprintln(w, "Type Lox statements and press enter. Ctrl+D to quit.")
	blueColor.Fprintln(w, line)
}

// Start runs the loop against w until readline hits EOF (Ctrl+D) or an
// unrecoverable input error.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: w})
	if err != nil {
		return err
	}
	defer rl.Close()

	runner := lox.NewRunner()
	runner.SetOutput(w, w)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			fmt.Fprintln(w, "")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		// Run already reports lex/parse/resolve/runtime errors to Stderr;
		// the REPL just needs to keep looping afterward.
		runner.Run(line)
	}
}
