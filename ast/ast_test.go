package ast

import (
	"testing"

	"github.com/glint-lang/glint/token"
)

// TestNodeIdentityDistinguishesStructurallyEqualReferences exercises the
// property the package doc comment relies on: two Variable nodes with
// the exact same name are still distinct map keys, because the map key
// is the pointer, not the struct's field values.
func TestNodeIdentityDistinguishesStructurallyEqualReferences(t *testing.T) {
	name := token.Token{Type: token.IDENTIFIER, Lexeme: "a", Line: 1}
	first := &Variable{Name: name}
	second := &Variable{Name: name}

	locals := map[Expr]int{}
	locals[first] = 0
	locals[second] = 1

	if len(locals) != 2 {
		t.Fatalf("got %d entries, want 2 (distinct node identities)", len(locals))
	}
	if locals[first] != 0 || locals[second] != 1 {
		t.Fatalf("locals = %v, want first=0 second=1", locals)
	}
}

func TestExpressionNodesImplementExpr(t *testing.T) {
	var exprs = []Expr{
		&Literal{Value: 1.0},
		&Variable{Name: token.Token{Lexeme: "a"}},
		&Assign{Name: token.Token{Lexeme: "a"}, Value: &Literal{Value: 1.0}},
		&Unary{Operator: token.Token{Type: token.MINUS}, Right: &Literal{Value: 1.0}},
		&Binary{Left: &Literal{Value: 1.0}, Operator: token.Token{Type: token.PLUS}, Right: &Literal{Value: 2.0}},
		&Logical{Left: &Literal{Value: true}, Operator: token.Token{Type: token.AND}, Right: &Literal{Value: false}},
		&Grouping{Expression: &Literal{Value: 1.0}},
		&Call{Callee: &Variable{Name: token.Token{Lexeme: "f"}}, Paren: token.Token{Type: token.RIGHT_PAREN}},
		&Get{Object: &Variable{Name: token.Token{Lexeme: "o"}}, Name: token.Token{Lexeme: "field"}},
		&Set{Object: &Variable{Name: token.Token{Lexeme: "o"}}, Name: token.Token{Lexeme: "field"}, Value: &Literal{Value: 1.0}},
		&This{Keyword: token.Token{Type: token.THIS}},
		&Super{Keyword: token.Token{Type: token.SUPER}, Method: token.Token{Lexeme: "m"}},
	}
	if len(exprs) != 12 {
		t.Fatalf("got %d expression variants, want 12 (one per grammar production)", len(exprs))
	}
}

func TestStatementNodesImplementStmt(t *testing.T) {
	name := token.Token{Lexeme: "a"}
	var stmts = []Stmt{
		&ExpressionStmt{Expression: &Literal{Value: 1.0}},
		&PrintStmt{Expression: &Literal{Value: 1.0}},
		&VarStmt{Name: name},
		&BlockStmt{Statements: nil},
		&IfStmt{Condition: &Literal{Value: true}, ThenBranch: &PrintStmt{Expression: &Literal{Value: 1.0}}},
		&WhileStmt{Condition: &Literal{Value: true}, Body: &PrintStmt{Expression: &Literal{Value: 1.0}}},
		&FunctionStmt{Name: name, Params: nil, Body: nil},
		&ReturnStmt{Keyword: token.Token{Type: token.RETURN}},
		&ClassStmt{Name: name, Methods: nil},
	}
	if len(stmts) != 9 {
		t.Fatalf("got %d statement variants, want 9 (one per grammar production)", len(stmts))
	}
}

func TestVarStmtInitializerIsOptional(t *testing.T) {
	withInit := &VarStmt{Name: token.Token{Lexeme: "a"}, Initializer: &Literal{Value: 1.0}}
	withoutInit := &VarStmt{Name: token.Token{Lexeme: "b"}}

	if withInit.Initializer == nil {
		t.Fatal("expected a non-nil initializer")
	}
	if withoutInit.Initializer != nil {
		t.Fatal("expected a nil initializer when none was given")
	}
}

func TestClassStmtSuperclassIsOptional(t *testing.T) {
	withSuper := &ClassStmt{
		Name:       token.Token{Lexeme: "Cake"},
		Superclass: &Variable{Name: token.Token{Lexeme: "Pastry"}},
	}
	withoutSuper := &ClassStmt{Name: token.Token{Lexeme: "Pastry"}}

	if withSuper.Superclass == nil || withSuper.Superclass.Name.Lexeme != "Pastry" {
		t.Fatalf("superclass = %+v, want Pastry", withSuper.Superclass)
	}
	if withoutSuper.Superclass != nil {
		t.Fatal("expected a nil superclass when none was given")
	}
}
