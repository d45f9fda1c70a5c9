// Package interp implements the tree-walking evaluator: it executes
// the AST produced by parser against a chain of object.Environment
// values, honoring the distances recorded by the resolver for every
// local variable reference.
//
// Two control-flow carriers never escape where they are supposed to:
// a *returnSignal unwinds exactly to the UserFn call that is running,
// and a *object.RuntimeError unwinds to Interpret's top-level recover.
// Both ride Go's panic/recover mechanism, reserved exclusively for
// these two cases - ordinary evaluation never panics.
package interp

import (
	"fmt"
	"io"

	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/object"
	"github.com/glint-lang/glint/resolver"
)

// returnSignal carries a `return` statement's value out of the block
// it appears in, all the way to the enclosing UserFn call.
type returnSignal struct {
	value interface{}
}

// Interpreter runs a resolved program. One Interpreter holds the
// process-wide globals environment and survives across multiple calls
// to Interpret, which is what lets a REPL keep bindings alive between
// lines even after one of them raises a runtime error.
type Interpreter struct {
	Globals     *object.Environment
	environment *object.Environment
	locals      resolver.Locals
	stdout      io.Writer
}

// ClockFn supplies the value clock() returns - seconds since some
// fixed epoch, as a float64. The driver wires in a real or fake clock;
// the interpreter itself has no notion of wall time.
type ClockFn func() float64

// New creates an Interpreter with clock pre-bound in globals and print
// output directed at stdout.
func New(stdout io.Writer, clock ClockFn) *Interpreter {
	globals := object.NewEnvironment()

	in := &Interpreter{
		Globals:     globals,
		environment: globals,
		stdout:      stdout,
		locals:      make(resolver.Locals),
	}
	registerBuiltins(globals, clock)
	return in
}

// SetLocals installs the resolver's distance table. It is read-only
// from this point on; the resolver never mutates it once Resolve
// returns, and the interpreter never writes to it.
func (in *Interpreter) SetLocals(locals resolver.Locals) {
	in.locals = locals
}

// Interpret executes a statement list in the globals/current
// environment. A RuntimeError aborts this batch and is returned to the
// caller; the Interpreter itself remains usable for the next call,
// which is what the REPL relies on.
func (in *Interpreter) Interpret(statements []ast.Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rtErr, ok := r.(*object.RuntimeError); ok {
				err = rtErr
				return
			}
			panic(r)
		}
	}()

	for _, stmt := range statements {
		in.execute(stmt)
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		in.evaluate(s.Expression)

	case *ast.PrintStmt:
		value := in.evaluate(s.Expression)
		fmt.Fprintln(in.stdout, object.Stringify(value))

	case *ast.VarStmt:
		var value interface{}
		if s.Initializer != nil {
			value = in.evaluate(s.Initializer)
		}
		in.environment.Define(s.Name.Lexeme, value)

	case *ast.BlockStmt:
		in.executeBlock(s.Statements, object.NewEnclosedEnvironment(in.environment))

	case *ast.IfStmt:
		if isTruthy(in.evaluate(s.Condition)) {
			in.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			in.execute(s.ElseBranch)
		}

	case *ast.WhileStmt:
		for isTruthy(in.evaluate(s.Condition)) {
			in.execute(s.Body)
		}

	case *ast.FunctionStmt:
		fn := &object.UserFn{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)

	case *ast.ReturnStmt:
		var value interface{}
		if s.Value != nil {
			value = in.evaluate(s.Value)
		}
		panic(&returnSignal{value: value})

	case *ast.ClassStmt:
		in.executeClass(s)
	}
}

// executeBlock runs statements in env, restoring the interpreter's
// previous environment on every exit path - normal return, a runtime
// error, or a non-local `return`.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *object.Environment) {
	previous := in.environment
	defer func() { in.environment = previous }()

	in.environment = env
	for _, stmt := range statements {
		in.execute(stmt)
	}
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) {
	var superclass *object.Class
	if s.Superclass != nil {
		sc := in.evaluate(s.Superclass)
		var ok bool
		superclass, ok = sc.(*object.Class)
		if !ok {
			panic(&object.RuntimeError{Token: s.Superclass.Name, Message: "Superclass must be a class"})
		}
	}

	// Defined as nil first so methods that reference the class name
	// recursively (e.g. a factory method) see a binding, even though
	// its value is not ready until the Assign below.
	in.environment.Define(s.Name.Lexeme, nil)

	methodEnv := in.environment
	if s.Superclass != nil {
		methodEnv = object.NewEnclosedEnvironment(in.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.UserFn)
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &object.UserFn{
			Declaration:   method,
			Closure:       methodEnv,
			IsInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &object.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}

	if err := in.environment.Assign(s.Name, class); err != nil {
		panic(err)
	}
}

func (in *Interpreter) evaluate(expr ast.Expr) interface{} {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookupVariable(e.Name, e)

	case *ast.Assign:
		value := in.evaluate(e.Value)
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else {
			if err := in.Globals.Assign(e.Name, value); err != nil {
				panic(err)
			}
		}
		return value

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)
	}

	return nil
}
