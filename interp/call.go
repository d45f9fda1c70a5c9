package interp

import (
	"strconv"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/object"
)

func (in *Interpreter) evalCall(e *ast.Call) interface{} {
	callee := in.evaluate(e.Callee)

	arguments := make([]interface{}, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		arguments = append(arguments, in.evaluate(arg))
	}

	switch fn := callee.(type) {
	case *object.NativeFn:
		checkArity(e, fn.Arity(), len(arguments))
		return fn.Fn(arguments)

	case *object.UserFn:
		checkArity(e, fn.Arity(), len(arguments))
		return in.callUserFn(fn, arguments)

	case *object.Class:
		checkArity(e, fn.Arity(), len(arguments))
		return in.instantiate(fn, arguments)

	default:
		panic(&object.RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."})
	}
}

func checkArity(e *ast.Call, arity, got int) {
	if arity != got {
		panic(&object.RuntimeError{
			Token:   e.Paren,
			Message: fmtArityError(arity, got),
		})
	}
}

func fmtArityError(arity, got int) string {
	return "Expected " + strconv.Itoa(arity) + " arguments but got " + strconv.Itoa(got) + "."
}

// callUserFn runs fn's body in a fresh environment enclosing its
// closure, with each parameter bound to the matching argument. A
// `return` inside the body panics with *returnSignal, caught here and
// nowhere else - it is a programming error for one to reach any other
// recover point.
func (in *Interpreter) callUserFn(fn *object.UserFn, arguments []interface{}) (result interface{}) {
	env := object.NewEnclosedEnvironment(fn.Closure)
	for i, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	defer func() {
		r := recover()
		if r == nil {
			if fn.IsInitializer {
				result = fn.Closure.GetAt(0, "this")
			}
			return
		}
		signal, ok := r.(*returnSignal)
		if !ok {
			panic(r)
		}
		if fn.IsInitializer {
			result = fn.Closure.GetAt(0, "this")
		} else {
			result = signal.value
		}
	}()

	in.executeBlock(fn.Declaration.Body, env)
	return nil
}

// instantiate constructs a new Instance, running init (if the class or
// an ancestor defines one) with the call's arguments. The return value
// of a constructor call is always the new instance - init's own return
// value, if any, is discarded by callUserFn's IsInitializer handling.
func (in *Interpreter) instantiate(class *object.Class, arguments []interface{}) interface{} {
	instance := object.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		in.callUserFn(init.Bind(instance), arguments)
	}
	return instance
}
