/*
File    : lox/environment/environment.go

Package environment implements the binding-frame chain the evaluator walks.
An Environment is always shared by reference: a
closure holds a pointer to the frame that was live at the point of
definition, and later mutations to that frame (e.g. a subsequent `var`
shadowing it one block up) are visible exactly where the resolver's depth
table says they should be. This is the reason the resolver pass exists at
all: a copy-on-capture strategy would silently freeze stale bindings.
*/
package environment

import (
	"fmt"

	"github.com/josharian/intern"

	"github.com/cxljs/lox/value"
)

// Environment is one lexical scope frame: a binding map plus a pointer to
// its enclosing frame (nil at the global frame).
type Environment struct {
	enclosing *Environment
	values    map[string]value.Value
}

// New creates a frame with no enclosing scope (the global frame).
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewChild creates a frame nested inside enclosing, e.g. a block, a
// function call, or a loop body.
func NewChild(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]value.Value)}
}

// Define binds name in this frame, overwriting any existing binding of the
// same name in this same frame (re-`var`-ing a name at the same scope is
// allowed, unlike Assign).
func (e *Environment) Define(name string, v value.Value) {
	e.values[intern.String(name)] = v
}

// Get looks up name starting at this frame and walking outward. Used only
// for the (rare) case where the resolver left no depth recorded, i.e. a
// genuinely global reference.
func (e *Environment) Get(name string) (value.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

// Assign rebinds an existing name, searching outward from this frame. It is
// an error to assign to a name that was never declared.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return fmt.Errorf("undefined variable '%s'", name)
}

// GetAt reads name from the frame exactly distance hops up the chain, as
// determined by the resolver's depth table. Panics (evaluator bug, not a
// user error) if the chain is shorter than distance or the frame lacks the
// binding — the resolver guarantees both hold for every depth it records.
func (e *Environment) GetAt(distance int, name string) value.Value {
	env := e.ancestor(distance)
	v, ok := env.values[name]
	if !ok {
		panic(fmt.Sprintf("environment: resolver recorded depth %d for %q but frame has no binding", distance, name))
	}
	return v
}

// AssignAt rebinds name in the frame exactly distance hops up the chain.
func (e *Environment) AssignAt(distance int, name string, v value.Value) {
	env := e.ancestor(distance)
	env.values[name] = v
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// Names returns the names bound directly in this frame, for "did you mean"
// suggestions on an undefined-variable error. Only this frame's own
// bindings are returned; callers walk Enclosing themselves to widen the
// search.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for n := range e.values {
		names = append(names, n)
	}
	return names
}

// Enclosing exposes the parent frame, nil at the global frame.
func (e *Environment) Enclosing() *Environment { return e.enclosing }
