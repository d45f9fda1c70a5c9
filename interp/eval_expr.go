package interp

import (
	"github.com/glint-lang/glint/ast"
	"github.com/glint-lang/glint/object"
	"github.com/glint-lang/glint/token"
)

func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) interface{} {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme)
	}
	value, err := in.Globals.Get(name)
	if err != nil {
		panic(err)
	}
	return value
}

func (in *Interpreter) evalUnary(e *ast.Unary) interface{} {
	right := in.evaluate(e.Right)

	switch e.Operator.Type {
	case token.BANG:
		return !isTruthy(right)
	case token.MINUS:
		checkNumberOperand(e.Operator, right)
		return -right.(float64)
	}
	return nil
}

func (in *Interpreter) evalBinary(e *ast.Binary) interface{} {
	left := in.evaluate(e.Left)
	right := in.evaluate(e.Right)

	switch e.Operator.Type {
	case token.GREATER:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) > right.(float64)
	case token.GREATER_EQUAL:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) >= right.(float64)
	case token.LESS:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) < right.(float64)
	case token.LESS_EQUAL:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) <= right.(float64)
	case token.MINUS:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) - right.(float64)
	case token.SLASH:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) / right.(float64)
	case token.STAR:
		checkNumberOperands(e.Operator, left, right)
		return left.(float64) * right.(float64)
	case token.PLUS:
		return evalAdd(e.Operator, left, right)
	case token.BANG_EQUAL:
		return !isEqual(left, right)
	case token.EQUAL_EQUAL:
		return isEqual(left, right)
	}
	return nil
}

func evalAdd(operator token.Token, left, right interface{}) interface{} {
	if lf, ok := left.(float64); ok {
		if rf, ok := right.(float64); ok {
			return lf + rf
		}
	}
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs
		}
	}
	panic(&object.RuntimeError{Token: operator, Message: "Operands must be two numbers or two strings."})
}

func (in *Interpreter) evalLogical(e *ast.Logical) interface{} {
	left := in.evaluate(e.Left)

	if e.Operator.Type == token.OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalGet(e *ast.Get) interface{} {
	obj := in.evaluate(e.Object)
	instance, ok := obj.(*object.Instance)
	if !ok {
		panic(&object.RuntimeError{Token: e.Name, Message: "Only instances have properties."})
	}
	value, err := instance.Get(e.Name)
	if err != nil {
		panic(err)
	}
	return value
}

func (in *Interpreter) evalSet(e *ast.Set) interface{} {
	obj := in.evaluate(e.Object)
	instance, ok := obj.(*object.Instance)
	if !ok {
		panic(&object.RuntimeError{Token: e.Name, Message: "Only instance have fields"})
	}
	value := in.evaluate(e.Value)
	instance.Set(e.Name, value)
	return value
}

func (in *Interpreter) evalSuper(e *ast.Super) interface{} {
	distance := in.locals[e]
	superclass := in.environment.GetAt(distance, "super").(*object.Class)
	instance := in.environment.GetAt(distance-1, "this").(*object.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		panic(&object.RuntimeError{Token: e.Method, Message: "Undefined property '" + e.Method.Lexeme + "'."})
	}
	return method.Bind(instance)
}

// Truthiness and equality.

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func checkNumberOperand(operator token.Token, operand interface{}) {
	if _, ok := operand.(float64); !ok {
		panic(&object.RuntimeError{Token: operator, Message: "Operand must be a number"})
	}
}

func checkNumberOperands(operator token.Token, left, right interface{}) {
	_, lok := left.(float64)
	_, rok := right.(float64)
	if !lok || !rok {
		panic(&object.RuntimeError{Token: operator, Message: "Operands must be numbers"})
	}
}
