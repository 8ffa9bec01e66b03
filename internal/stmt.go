package internal

type stmt interface {
	accept(stmtVisitor) R
}

type stmtVisitor interface {
	visitExprStmt(stmt *exprStmt) R
	visitLetStmt(stmt *letStmt) R
	visitAssignStmt(stmt *assignStmt) R
}

type exprStmt struct {
	expression expr
}

func (s *exprStmt) accept(visitor stmtVisitor) R {
	return visitor.visitExprStmt(s)
}

// letStmt covers both declaration forms: let is mutable, const is not.
type letStmt struct {
	name        *token
	initializer expr
	mutable     bool
}

func (s *letStmt) accept(visitor stmtVisitor) R {
	return visitor.visitLetStmt(s)
}

type assignStmt struct {
	name  *token
	value expr
}

func (s *assignStmt) accept(visitor stmtVisitor) R {
	return visitor.visitAssignStmt(s)
}
