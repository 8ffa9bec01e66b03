package internal

import (
	"fmt"
	"strings"
)

// stringVisitor renders statements as s-expressions for debugging.
type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitLetStmt(stmt *letStmt) R {
	keyword := "const"
	if stmt.mutable {
		keyword = "let"
	}
	return fmt.Sprintf("(%s %s %v)", keyword, stmt.name.lexeme(), stmt.initializer.accept(v))
}

func (v stringVisitor) visitAssignStmt(stmt *assignStmt) R {
	return fmt.Sprintf("(set %s %v)", stmt.name.lexeme(), stmt.value.accept(v))
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if str, ok := expr.value.(arcString); ok {
		return "\"" + string(str) + "\""
	}
	return expr.value.String()
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.token.lexeme(), expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.token.lexeme(), expr.right.accept(v))
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(v)
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme()
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	if len(expr.arguments) == 0 {
		return fmt.Sprintf("(call %s)", expr.name.lexeme())
	}
	args := make([]string, len(expr.arguments))
	for i, arg := range expr.arguments {
		args[i] = fmt.Sprintf("%v", arg.accept(v))
	}
	return fmt.Sprintf("(call %s %s)", expr.name.lexeme(), strings.Join(args, " "))
}
