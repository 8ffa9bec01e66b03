package internal

import (
	"errors"
)

// Parser errors. These only drive the bail-out; a malformed statement is
// reported to callers as absence, never as a partial tree.
var (
	errExpectedIdentifier = errors.New("Expected variable name")
	errExpectedEqual      = errors.New("Expected '=' after variable name")
	errUnclosedParen      = errors.New("Expect ')' after expression")
	errUndefinedExpr      = errors.New("Undefined expression")
)

type parseBail struct {
	err error
}

// parser consumes a token stream one statement at a time. Whitespace tokens
// are skipped wherever the grammar looks at the stream; bad tokens are not,
// so they surface as undefined expressions.
type parser struct {
	tokens  []token
	current int
}

func newParser(tokens []token) *parser {
	return &parser{tokens: tokens}
}

// nextStatement parses and returns one full statement. It returns nil when
// the input is exhausted or the next statement is malformed.
func (p *parser) nextStatement() (st stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseBail); !ok {
				panic(r)
			}
			p.synchronize()
			st = nil
		}
	}()
	if p.isAtEnd() {
		return nil
	}
	return p.declaration()
}

// parse drains the stream into a statement list, dropping malformed ones.
func (p *parser) parse() []stmt {
	var stmts []stmt
	for !p.isAtEnd() {
		if st := p.nextStatement(); st != nil {
			stmts = append(stmts, st)
		}
	}
	return stmts
}

func (p *parser) declaration() stmt {
	if p.match(tkLet) {
		return p.varDeclaration(true)
	}
	if p.match(tkConst) {
		return p.varDeclaration(false)
	}
	if p.check(tkIdentifier) && p.checkNext(tkEqual) {
		return p.assignment()
	}
	return p.expressionStmt()
}

func (p *parser) varDeclaration(mutable bool) stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)
	p.consume(tkEqual, errExpectedEqual)
	init := p.expression()
	p.terminator()
	return &letStmt{name: name, initializer: init, mutable: mutable}
}

func (p *parser) assignment() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)
	p.consume(tkEqual, errExpectedEqual)
	value := p.expression()
	p.terminator()
	return &assignStmt{name: name, value: value}
}

func (p *parser) expressionStmt() stmt {
	expression := p.expression()
	p.terminator()
	return &exprStmt{expression: expression}
}

// terminator consumes an optional trailing semicolon.
func (p *parser) terminator() {
	p.match(tkSemicolon)
}

func (p *parser) expression() expr {
	return p.binaryExpression(1)
}

// binaryExpression climbs the operator precedence table: it keeps extending
// the left operand while the next operator binds at least as tightly as
// minPrecedence. Right-associative operators (only **) recurse at their own
// level instead of one above it.
func (p *parser) binaryExpression(minPrecedence int) expr {
	left := p.unary()
	for {
		op, ok := p.peekBinaryOperator()
		if !ok || op.precedence() < minPrecedence {
			return left
		}
		operator := binaryOperator{kind: op, token: p.advance()}
		next := op.precedence() + 1
		if op.rightAssociative() {
			next = op.precedence()
		}
		right := p.binaryExpression(next)
		left = &binaryExpr{left: left, operator: operator, right: right}
	}
}

func (p *parser) peekBinaryOperator() (binaryOp, bool) {
	switch p.peek().token {
	case tkOr:
		return opOr, true
	case tkAnd:
		return opAnd, true
	case tkEqualEqual:
		return opEqual, true
	case tkBangEqual:
		return opNotEqual, true
	case tkLess:
		return opLess, true
	case tkGreater:
		return opGreater, true
	case tkLessEqual:
		return opLessEqual, true
	case tkGreaterEqual:
		return opGreaterEqual, true
	case tkPipe:
		return opBitOr, true
	case tkCaret:
		return opBitXor, true
	case tkAmpersand:
		return opBitAnd, true
	case tkLeftShift:
		return opShiftLeft, true
	case tkRightShift:
		return opShiftRight, true
	case tkPlus:
		return opAdd, true
	case tkMinus:
		return opSubtract, true
	case tkStar:
		return opMultiply, true
	case tkSlash:
		return opDivide, true
	case tkPercent:
		return opModulo, true
	case tkPower:
		return opPower, true
	}
	return 0, false
}

func (p *parser) unary() expr {
	if p.match(tkPlus) {
		return &unaryExpr{
			operator: unaryOperator{kind: opIdentity, token: p.previous()},
			right:    p.unary(),
		}
	}
	if p.match(tkMinus) {
		return &unaryExpr{
			operator: unaryOperator{kind: opNegate, token: p.previous()},
			right:    p.unary(),
		}
	}
	if p.match(tkBang) {
		return &unaryExpr{
			operator: unaryOperator{kind: opNot, token: p.previous()},
			right:    p.unary(),
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkFloat, tkString, tkBoolean) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkLeftParen) {
		expression := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expression}
	}
	if p.match(tkIdentifier) {
		name := p.previous()
		if p.match(tkLeftParen) {
			return p.finishCall(name)
		}
		return &variableExpr{name: name}
	}
	p.bail(errUndefinedExpr)
	return nil
}

func (p *parser) finishCall(name *token) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			arguments = append(arguments, p.expression())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedParen)
	return &callExpr{name: name, paren: paren, arguments: arguments}
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.bail(err)
	return nil
}

func (p *parser) bail(err error) {
	panic(parseBail{err: err})
}

func (p *parser) match(kinds ...tokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(kind tokenType) bool {
	return p.peek().token == kind
}

// checkNext looks one meaningful token past the current one.
func (p *parser) checkNext(kind tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	i := p.current + 1
	for i < len(p.tokens) && p.tokens[i].token == tkWhitespace {
		i++
	}
	return i < len(p.tokens) && p.tokens[i].token == kind
}

func (p *parser) advance() *token {
	p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

var eofToken = token{token: tkEOF}

func (p *parser) peek() *token {
	for p.current < len(p.tokens) && p.tokens[p.current].token == tkWhitespace {
		p.current++
	}
	if p.current >= len(p.tokens) {
		return &eofToken
	}
	return &p.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize skips to the next statement boundary after a parse failure.
func (p *parser) synchronize() {
	for !p.isAtEnd() {
		if p.advance().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkLet, tkConst:
			return
		}
	}
}
