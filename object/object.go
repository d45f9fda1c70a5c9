package object

import (
	"fmt"
	"math"
	"strconv"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/token"
)

// Callable is the capability every invocable runtime value shares.
// Dispatch on what to actually do for a call is a type switch over the
// three concrete variants (NativeFn, UserFn, Class) in the interp
// package, not an open set of implementations - see the design notes
// on tagged variants over callables.
type Callable interface {
	Arity() int
}

// NativeFn wraps a host-provided function, such as clock().
type NativeFn struct {
	Name string
	Fn   func(args []interface{}) interface{}
	Arty int
}

func (n *NativeFn) Arity() int { return n.Arty }

// UserFn is a function value created from a FunctionStmt: its
// declaration, the environment captured at the point of declaration
// (its closure), and whether it is a class's init method.
type UserFn struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (f *UserFn) Arity() int { return len(f.Declaration.Params) }

// Bind produces a method value closed over a specific instance: a
// fresh child of the original closure defining "this", leaving the
// original UserFn untouched so the same declaration can be bound to
// many instances.
func (f *UserFn) Bind(instance *Instance) *UserFn {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &UserFn{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Class is a runtime class: its name, optional superclass, and its own
// method table. Method lookup walks the superclass chain; the first
// hit wins.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*UserFn
}

// Arity is the arity of "init" if the class (or an ancestor) defines
// one, else 0 - construction never requires arguments by default.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name on this class, then its ancestors.
func (c *Class) FindMethod(name string) (*UserFn, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is a runtime object: a back-reference to its class plus its
// own field table. Fields shadow methods: Get checks fields first.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get resolves a property: a field first, then a method bound to this
// instance, else a RuntimeError.
func (i *Instance) Get(name token.Token) (interface{}, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."}
}

// Set creates or overwrites a field; fields do not need to be declared
// ahead of time.
func (i *Instance) Set(name token.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}

// Stringify renders a runtime value the way `print` and string
// concatenation do. Integer-valued numbers print without a trailing
// ".0"; everything else uses its natural textual form.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if !math.IsInf(v, 0) && v == math.Trunc(v) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case *Class:
		return v.Name
	case *Instance:
		return v.Class.Name + "instance"
	case *UserFn:
		return "<function " + v.Declaration.Name.Lexeme + ">"
	case *NativeFn:
		return "<native function>"
	default:
		return fmt.Sprintf("%v", v)
	}
}
