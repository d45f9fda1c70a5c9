package interp

import "github.com/glint-lang/glint/object"

// registerBuiltins binds every native function into globals. clock()
// is the only one the core language ships with; it stringifies as
// "<native function>" via object.Stringify's default NativeFn case.
func registerBuiltins(globals *object.Environment, clock ClockFn) {
	globals.Define("clock", &object.NativeFn{
		Name: "clock",
		Arty: 0,
		Fn:   func(args []interface{}) interface{} { return clock() },
	})
}
