/*
File    : lox/eval/native.go

Native functions are Go closures exposed as ordinary Callables so user code
calls them exactly like a Lox function. Kept to a single binding, clock,
which is what a minimal Lox runtime needs for timing loops and benchmarks.
*/
package eval

import (
	"time"

	"github.com/cxljs/lox/environment"
	"github.com/cxljs/lox/value"
)

type NativeFunction struct {
	Name string
	arity int
	fn    func(args []value.Value) (value.Value, error)
}

func (*NativeFunction) valueNode() {}

func (n *NativeFunction) String() string { return "<native fn>" }

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(args []value.Value) (value.Value, error) { return n.fn(args) }

// registerNatives populates globals with every native binding a fresh
// Interpreter starts with.
func registerNatives(globals *environment.Environment) {
	globals.Define("clock", &NativeFunction{
		Name:  "clock",
		arity: 0,
		fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
