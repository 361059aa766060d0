/*
File    : lox/eval/class.go

Class and Instance implement full object semantics: single inheritance,
a per-class method table, and
instances that store their own fields separately from methods looked up
through the class (and, failing that, its superclass chain).
*/
package eval

import (
	"fmt"

	"github.com/cxljs/lox/value"
)

// Class is a constructor and method table. Calling a Class allocates an
// Instance and, if an `init` method is defined, runs it on the new
// instance before returning it.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) valueNode() {}

func (c *Class) String() string { return c.Name }

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(args []value.Value) (value.Value, error) {
	instance := &Instance{class: c, fields: make(map[string]value.Value)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// FindMethod searches this class's own table, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is one object: a class pointer plus its own field map. Fields
// shadow methods of the same name: fields and methods share one namespace.
type Instance struct {
	class  *Class
	fields map[string]value.Value
}

func (*Instance) valueNode() {}

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.class.Name) }

func (i *Instance) Get(name string, line int) (value.Value, error) {
	if v, ok := i.fields[name]; ok {
		return v, nil
	}
	if m, ok := i.class.FindMethod(name); ok {
		return m.Bind(i), nil
	}
	return nil, newRuntimeError(line, "Undefined property '%s'.", name)
}

func (i *Instance) Set(name string, v value.Value) {
	i.fields[name] = v
}
