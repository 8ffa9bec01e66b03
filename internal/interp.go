package internal

import (
	"io"
)

// IPrinter abstracts console output so tests can capture it.
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Session drives the lex, parse, evaluate pipeline, keeping one evaluator
// and its symbol table alive across lines.
type Session struct {
	exec *exec
}

func NewSession(printer IPrinter) *Session {
	return &Session{exec: newExec(printer)}
}

// Eval runs a single line. ok reports whether the line held a statement or
// nothing at all; it is false only when the line was malformed. The returned
// Value is nil when the statement produced none. Callers detect evaluation
// errors by comparing Errors length before and after.
func (s *Session) Eval(line string) (Value, bool) {
	tokens := newLexer(line).scan()
	st := newParser(tokens).nextStatement()
	if st == nil {
		return nil, onlyTrivia(tokens)
	}
	return s.exec.execute(st), true
}

// Errors returns the evaluation error messages accumulated so far. The list
// only grows; it is never reset mid-session.
func (s *Session) Errors() []string {
	return s.exec.errors
}

// Tree parses one line without evaluating it and renders the statement as
// an s-expression, for debugging.
func (s *Session) Tree(line string) (string, bool) {
	tokens := newLexer(line).scan()
	st := newParser(tokens).nextStatement()
	if st == nil {
		return "", onlyTrivia(tokens)
	}
	return st.accept(stringVisitor{}).(string), true
}

func onlyTrivia(tokens []token) bool {
	for _, t := range tokens {
		if t.token != tkWhitespace && t.token != tkEOF {
			return false
		}
	}
	return true
}
