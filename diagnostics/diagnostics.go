/*
File    : lox/diagnostics/diagnostics.go

Package diagnostics renders the batched errors produced by the lex/parse/
resolve stages and provides the debug-trace logger cmd/lox wires up with
--debug. Every stage (lexer, parser, resolver) collects its failures into a
single *multierror.Error rather than stopping at the first one; Report
unwraps that into one line per failure, already formatted by the stage
itself, and writes each to w.
*/
package diagnostics

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// Report writes one line per underlying error to w. A *multierror.Error is
// unwrapped into its constituent errors; any other error is written as-is.
// Reporting a nil error is a no-op.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var merr *multierror.Error
	if me, ok := err.(*multierror.Error); ok {
		merr = me
	}
	if merr == nil {
		fmt.Fprintln(w, err.Error())
		return
	}
	for _, e := range merr.Errors {
		fmt.Fprintln(w, e.Error())
	}
}

// Stage names one phase of the pipeline, used to tag trace output.
type Stage string

const (
	StageLex      Stage = "lex"
	StageParse    Stage = "parse"
	StageResolve  Stage = "resolve"
	StageEvaluate Stage = "eval"
)

// NewTracer builds a logrus.Logger writing to w at level, for structured
// stage-transition tracing instead of ad-hoc fmt.Printf debug lines.
func NewTracer(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

// Trace logs that a stage completed, at Debug level, with the error (if
// any) attached as a field rather than interpolated into the message.
func Trace(log *logrus.Logger, stage Stage, err error) {
	entry := log.WithField("stage", string(stage))
	if err != nil {
		entry.WithError(err).Debug("stage failed")
		return
	}
	entry.Debug("stage ok")
}
