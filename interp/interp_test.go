package interp

import (
	"strings"
	"testing"

	"github.com/glint-lang/glint/lexer"
	"github.com/glint-lang/glint/parser"
	"github.com/glint-lang/glint/resolver"
)

// run lexes, parses, resolves, and interprets source against a fresh
// Interpreter, returning everything `print` wrote and any error from
// Interpret. It mirrors what package repl does, without a Reporter,
// since these tests assert on program behavior, not diagnostics.
func run(t *testing.T, source string) (string, error) {
	t.Helper()
	tokens := lexer.New(source, nil).ScanTokens()
	statements := parser.New(tokens, nil).Parse()

	res := resolver.New(nil)
	locals := res.Resolve(statements)

	var out strings.Builder
	in := New(&out, func() float64 { return 0 })
	in.SetLocals(locals)

	err := in.Interpret(statements)
	return out.String(), err
}

func TestArithmeticAndPrint(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("output = %q, want %q", out, "7\n")
	}
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Fatalf("output = %q, want %q", out, "foobar\n")
	}
}

func TestVariablesAndReassignment(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		a = a + 1;
		print a;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "2\n" {
		t.Fatalf("output = %q, want %q", out, "2\n")
	}
}

func TestClosureCountersAreIndependent(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun counter() {
				i = i + 1;
				return i;
			}
			return counter;
		}
		var a = makeCounter();
		var b = makeCounter();
		print a();
		print a();
		print b();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n1\n" {
		t.Fatalf("output = %q, want %q", out, "1\n2\n1\n")
	}
}

func TestWhileAndForLoops(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
		for (var j = 0; j < 2; j = j + 1) print j;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n0\n1\n" {
		t.Fatalf("output = %q, want %q", out, "0\n1\n2\n0\n1\n")
	}
}

func TestClassesInheritanceAndSuper(t *testing.T) {
	out, err := run(t, `
		class Pastry {
			cook() {
				print "cooking " + this.kind;
			}
		}
		class Cake < Pastry {
			init(kind) {
				this.kind = kind;
			}
			cook() {
				super.cook();
				print "frosting the cake";
			}
		}
		var c = Cake("chocolate");
		c.cook();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "cooking chocolate\nfrosting the cake\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestInitializerAlwaysReturnsInstance(t *testing.T) {
	out, err := run(t, `
		class Thing {
			init() {
				return;
			}
		}
		var t = Thing();
		print t;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Thinginstance\n" {
		t.Fatalf("output = %q, want %q", out, "Thinginstance\n")
	}
}

func TestFieldsShadowMethods(t *testing.T) {
	out, err := run(t, `
		class Box {
			value() { return "method"; }
		}
		var b = Box();
		b.value = "field";
		print b.value;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "field\n" {
		t.Fatalf("output = %q, want %q", out, "field\n")
	}
}

func TestRuntimeErrorOnNonNumberOperand(t *testing.T) {
	_, err := run(t, `print "a" - 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Error() != "Operands must be numbers" {
		t.Fatalf("error message = %q, want %q", err.Error(), "Operands must be numbers")
	}
}

func TestRuntimeErrorOnNonNumberUnaryOperand(t *testing.T) {
	_, err := run(t, `print -"a";`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Error() != "Operand must be a number" {
		t.Fatalf("error message = %q, want %q", err.Error(), "Operand must be a number")
	}
}

func TestRuntimeErrorOnNonClassSuperclass(t *testing.T) {
	_, err := run(t, `
		var NotAClass = 1;
		class A < NotAClass {}
	`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if err.Error() != "Superclass must be a class" {
		t.Fatalf("error message = %q, want %q", err.Error(), "Superclass must be a class")
	}
}

func TestRuntimeErrorCallingNonCallable(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	if err == nil {
		t.Fatal("expected a runtime error calling a non-callable value")
	}
}

func TestRuntimeErrorWrongArity(t *testing.T) {
	_, err := run(t, `
		fun f(a, b) { return a + b; }
		f(1);
	`)
	if err == nil {
		t.Fatal("expected a runtime error for an arity mismatch")
	}
}

func TestLogicalOperatorsReturnOperandNotBoolean(t *testing.T) {
	out, err := run(t, `
		print nil or "default";
		print "first" and "second";
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "default\nsecond\n" {
		t.Fatalf("output = %q, want %q", out, "default\nsecond\n")
	}
}

func TestClockIsWiredToTheSuppliedClockFn(t *testing.T) {
	tokens := lexer.New(`print clock();`, nil).ScanTokens()
	statements := parser.New(tokens, nil).Parse()
	locals := resolver.New(nil).Resolve(statements)

	var out strings.Builder
	in := New(&out, func() float64 { return 42 })
	in.SetLocals(locals)
	if err := in.Interpret(statements); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "42\n" {
		t.Fatalf("output = %q, want %q", out.String(), "42\n")
	}
}

func TestInterpreterSurvivesRuntimeErrorAcrossCalls(t *testing.T) {
	tokens := lexer.New(`var a = 1;`, nil).ScanTokens()
	statements := parser.New(tokens, nil).Parse()
	locals := resolver.New(nil).Resolve(statements)

	var out strings.Builder
	in := New(&out, func() float64 { return 0 })
	in.SetLocals(locals)
	if err := in.Interpret(statements); err != nil {
		t.Fatalf("unexpected error on first batch: %v", err)
	}

	badTokens := lexer.New(`a + "x";`, nil).ScanTokens()
	badStatements := parser.New(badTokens, nil).Parse()
	badLocals := resolver.New(nil).Resolve(badStatements)
	in.SetLocals(badLocals)
	if err := in.Interpret(badStatements); err == nil {
		t.Fatal("expected a runtime error adding a number to a string")
	}

	okTokens := lexer.New(`print a;`, nil).ScanTokens()
	okStatements := parser.New(okTokens, nil).Parse()
	okLocals := resolver.New(nil).Resolve(okStatements)
	in.SetLocals(okLocals)
	if err := in.Interpret(okStatements); err != nil {
		t.Fatalf("interpreter should still work after a runtime error: %v", err)
	}
	if out.String() != "1\n" {
		t.Fatalf("output = %q, want %q (global 'a' should have survived)", out.String(), "1\n")
	}
}
