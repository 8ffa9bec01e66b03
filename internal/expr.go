package internal

// R is the generic visitor return type.
type R interface{}

type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitLiteralExpr(expr *literalExpr) R
	visitBinaryExpr(expr *binaryExpr) R
	visitUnaryExpr(expr *unaryExpr) R
	visitGroupingExpr(expr *groupingExpr) R
	visitVariableExpr(expr *variableExpr) R
	visitCallExpr(expr *callExpr) R
}

type binaryOp int

const (
	opAdd binaryOp = iota
	opSubtract
	opMultiply
	opDivide
	opModulo
	opPower
	opBitAnd
	opBitOr
	opBitXor
	opShiftLeft
	opShiftRight
	opEqual
	opNotEqual
	opLess
	opGreater
	opLessEqual
	opGreaterEqual
	opAnd
	opOr
)

// precedence is the binding power used by the parser; higher binds tighter.
func (op binaryOp) precedence() int {
	switch op {
	case opOr:
		return 1
	case opAnd:
		return 2
	case opEqual, opNotEqual:
		return 3
	case opLess, opGreater, opLessEqual, opGreaterEqual:
		return 4
	case opBitOr:
		return 5
	case opBitXor:
		return 6
	case opBitAnd:
		return 7
	case opShiftLeft, opShiftRight:
		return 8
	case opAdd, opSubtract:
		return 9
	case opMultiply, opDivide, opModulo:
		return 10
	case opPower:
		return 11
	}
	return 0
}

// rightAssociative reports whether the operator groups to the right.
// Exponentiation is the one exception to left associativity:
// 2 ** 3 ** 2 parses as 2 ** (3 ** 2).
func (op binaryOp) rightAssociative() bool {
	return op == opPower
}

type unaryOp int

const (
	opIdentity unaryOp = iota
	opNegate
	opNot
)

// binaryOperator carries the semantic kind plus the originating token for
// diagnostics.
type binaryOperator struct {
	kind  binaryOp
	token *token
}

type unaryOperator struct {
	kind  unaryOp
	token *token
}

type literalExpr struct {
	value Value
}

func (s *literalExpr) accept(visitor exprVisitor) R {
	return visitor.visitLiteralExpr(s)
}

type binaryExpr struct {
	left     expr
	operator binaryOperator
	right    expr
}

func (s *binaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitBinaryExpr(s)
}

type unaryExpr struct {
	operator unaryOperator
	right    expr
}

func (s *unaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitUnaryExpr(s)
}

type groupingExpr struct {
	expression expr
}

func (s *groupingExpr) accept(visitor exprVisitor) R {
	return visitor.visitGroupingExpr(s)
}

type variableExpr struct {
	name *token
}

func (s *variableExpr) accept(visitor exprVisitor) R {
	return visitor.visitVariableExpr(s)
}

type callExpr struct {
	name      *token
	paren     *token
	arguments []expr
}

func (s *callExpr) accept(visitor exprVisitor) R {
	return visitor.visitCallExpr(s)
}
