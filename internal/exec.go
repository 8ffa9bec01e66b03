package internal

import (
	"fmt"
	"math"
)

// exec walks the AST and evaluates it against a persistent symbol table.
// The current-result slot is reset at the start of every statement; the
// error list only ever grows for the lifetime of the session. An error ends
// the statement being evaluated but never aborts the session.
type exec struct {
	symbols   *symbolTable
	errors    []string
	lastValue Value
	printer   IPrinter
}

func newExec(printer IPrinter) *exec {
	return &exec{
		symbols: newSymbolTable(),
		errors:  make([]string, 0),
		printer: printer,
	}
}

func (e *exec) addError(msg string) {
	e.errors = append(e.errors, msg)
}

// execute runs one statement and returns the produced value, if any.
func (e *exec) execute(s stmt) Value {
	e.lastValue = nil
	s.accept(e)
	return e.lastValue
}

// evaluate visits one expression subtree and returns its value, nil when
// the subtree failed.
func (e *exec) evaluate(ex expr) Value {
	ex.accept(e)
	return e.lastValue
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	return e.evaluate(stmt.expression)
}

func (e *exec) visitLetStmt(stmt *letStmt) R {
	value := e.evaluate(stmt.initializer)
	if value == nil {
		e.addError(fmt.Sprintf("Failed to evaluate initializer for variable '%s'", stmt.name.lexeme()))
		return nil
	}
	if err := e.symbols.define(stmt.name.lexeme(), value, stmt.mutable); err != nil {
		e.addError(err.Error())
	}
	e.lastValue = nil
	return nil
}

func (e *exec) visitAssignStmt(stmt *assignStmt) R {
	value := e.evaluate(stmt.value)
	if value == nil {
		e.addError(fmt.Sprintf("Failed to evaluate value for assignment to '%s'", stmt.name.lexeme()))
		return nil
	}
	if err := e.symbols.assign(stmt.name.lexeme(), value); err != nil {
		e.addError(err.Error())
	}
	e.lastValue = nil
	return nil
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	e.lastValue = expr.value
	return e.lastValue
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return e.evaluate(expr.expression)
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	value, err := e.symbols.getValue(expr.name.lexeme())
	if err != nil {
		e.addError(err.Error())
		e.lastValue = nil
		return nil
	}
	e.lastValue = value
	return e.lastValue
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	operand := e.evaluate(expr.right)
	if operand == nil {
		e.addError("Operand evaluation failed")
		return nil
	}
	switch expr.operator.kind {
	case opIdentity:
		e.lastValue = operand
	case opNegate:
		switch v := operand.(type) {
		case arcInt:
			e.lastValue = -v
		case arcFloat:
			e.lastValue = -v
		default:
			e.addError(fmt.Sprintf("Cannot negate %s", operand.Type()))
			e.lastValue = nil
		}
	case opNot:
		e.lastValue = arcBool(!truthy(operand))
	}
	return e.lastValue
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	switch expr.operator.kind {
	case opAnd, opOr:
		return e.logical(expr)
	}
	left := e.evaluate(expr.left)
	if left == nil {
		e.addError("Left operand evaluation failed")
		return nil
	}
	right := e.evaluate(expr.right)
	if right == nil {
		e.addError("Right operand evaluation failed")
		e.lastValue = nil
		return nil
	}
	e.lastValue = e.binary(expr.operator, left, right)
	return e.lastValue
}

// logical implements && and || with short-circuit control flow: the right
// subtree is never visited when the left operand alone decides the result.
func (e *exec) logical(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	if left == nil {
		return nil
	}
	if expr.operator.kind == opAnd && !truthy(left) {
		e.lastValue = arcBool(false)
		return e.lastValue
	}
	if expr.operator.kind == opOr && truthy(left) {
		e.lastValue = arcBool(true)
		return e.lastValue
	}
	right := e.evaluate(expr.right)
	if right == nil {
		return nil
	}
	e.lastValue = arcBool(truthy(right))
	return e.lastValue
}

func (e *exec) binary(operator binaryOperator, left, right Value) Value {
	switch operator.kind {
	case opAdd, opSubtract, opMultiply, opDivide, opModulo, opPower:
		return e.arithmetic(operator.kind, left, right)
	case opBitAnd, opBitOr, opBitXor, opShiftLeft, opShiftRight:
		return e.bitwise(operator.kind, left, right)
	case opEqual, opNotEqual:
		eq, err := valuesEqual(left, right)
		if err != nil {
			e.addError(err.Error())
			return nil
		}
		if operator.kind == opNotEqual {
			eq = !eq
		}
		return arcBool(eq)
	case opLess, opGreater, opLessEqual, opGreaterEqual:
		ord, err := valuesCompare(left, right)
		if err != nil {
			e.addError(err.Error())
			return nil
		}
		switch operator.kind {
		case opLess:
			return arcBool(ord < 0)
		case opGreater:
			return arcBool(ord > 0)
		case opLessEqual:
			return arcBool(ord <= 0)
		default:
			return arcBool(ord >= 0)
		}
	}
	e.addError(fmt.Sprintf("Undefined operator '%s'", operator.token.lexeme()))
	return nil
}

func (e *exec) arithmetic(op binaryOp, left, right Value) Value {
	l, r, err := commonType(left, right)
	if err != nil {
		e.addError(err.Error())
		return nil
	}
	switch op {
	case opAdd:
		switch lv := l.(type) {
		case arcInt:
			return lv + r.(arcInt)
		case arcFloat:
			return lv + r.(arcFloat)
		case arcString:
			return lv + r.(arcString)
		}
		e.addError(fmt.Sprintf("Cannot add %s and %s", left.Type(), right.Type()))
	case opSubtract:
		switch lv := l.(type) {
		case arcInt:
			return lv - r.(arcInt)
		case arcFloat:
			return lv - r.(arcFloat)
		}
		e.addError(fmt.Sprintf("Cannot subtract %s from %s", right.Type(), left.Type()))
	case opMultiply:
		switch lv := l.(type) {
		case arcInt:
			return lv * r.(arcInt)
		case arcFloat:
			return lv * r.(arcFloat)
		}
		e.addError(fmt.Sprintf("Cannot multiply %s and %s", left.Type(), right.Type()))
	case opDivide:
		switch lv := l.(type) {
		case arcInt:
			rv := r.(arcInt)
			if rv == 0 {
				e.addError("Division by zero")
				return nil
			}
			return lv / rv
		case arcFloat:
			rv := r.(arcFloat)
			if rv == 0 {
				e.addError("Division by zero")
				return nil
			}
			return lv / rv
		}
		e.addError(fmt.Sprintf("Cannot divide %s by %s", left.Type(), right.Type()))
	case opModulo:
		switch lv := l.(type) {
		case arcInt:
			rv := r.(arcInt)
			if rv == 0 {
				e.addError("Modulo by zero")
				return nil
			}
			return lv % rv
		case arcFloat:
			rv := r.(arcFloat)
			if rv == 0 {
				e.addError("Modulo by zero")
				return nil
			}
			return arcFloat(math.Mod(float64(lv), float64(rv)))
		}
		e.addError(fmt.Sprintf("Cannot compute modulo of %s and %s", left.Type(), right.Type()))
	case opPower:
		switch lv := l.(type) {
		case arcInt:
			rv := r.(arcInt)
			// A negative integer exponent promotes the whole
			// operation to floating point: 2 ** -1 is 0.5.
			if rv < 0 {
				return arcFloat(math.Pow(float64(lv), float64(rv)))
			}
			return ipow(lv, rv)
		case arcFloat:
			return arcFloat(math.Pow(float64(lv), float64(r.(arcFloat))))
		}
		e.addError(fmt.Sprintf("Cannot exponentiate %s and %s", left.Type(), right.Type()))
	}
	return nil
}

// ipow is integer exponentiation by squaring for non-negative exponents.
func ipow(base, exp arcInt) arcInt {
	result := arcInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (e *exec) bitwise(op binaryOp, left, right Value) Value {
	l, lerr := toInteger(left)
	r, rerr := toInteger(right)
	if lerr != nil || rerr != nil {
		e.addError(fmt.Sprintf("%s requires integer operands", bitwiseName(op)))
		return nil
	}
	switch op {
	case opBitAnd:
		return arcInt(l & r)
	case opBitOr:
		return arcInt(l | r)
	case opBitXor:
		return arcInt(l ^ r)
	case opShiftLeft:
		// Shift counts wrap into 0..63 so pathological operands
		// cannot take the session down.
		return arcInt(l << uint64(r&63))
	default:
		return arcInt(l >> uint64(r&63))
	}
}

func bitwiseName(op binaryOp) string {
	switch op {
	case opBitAnd:
		return "Bitwise AND"
	case opBitOr:
		return "Bitwise OR"
	case opBitXor:
		return "Bitwise XOR"
	case opShiftLeft:
		return "Left shift"
	default:
		return "Right shift"
	}
}

// visitCallExpr dispatches the single print builtin: every argument is
// evaluated left to right, rendered space-separated with a trailing newline,
// and no result value is produced.
func (e *exec) visitCallExpr(expr *callExpr) R {
	name := expr.name.lexeme()
	if name != "print" {
		e.addError(fmt.Sprintf("Unknown function: '%s'", name))
		e.lastValue = nil
		return nil
	}
	parts := make([]interface{}, 0, len(expr.arguments))
	for _, arg := range expr.arguments {
		if value := e.evaluate(arg); value != nil {
			parts = append(parts, value.String())
		}
	}
	e.printer.Println(parts...)
	e.lastValue = nil
	return nil
}
