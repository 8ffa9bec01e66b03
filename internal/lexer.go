package internal

import (
	"strconv"
)

// lexer walks the source one byte at a time producing tokens.
type lexer struct {
	source  string
	start   int
	current int
	done    bool
}

func newLexer(source string) *lexer {
	return &lexer{source: source}
}

// nextToken returns the next token in the source. The end-of-input token is
// returned exactly once; every call after that reports ok == false.
func (l *lexer) nextToken() (token, bool) {
	if l.done {
		return token{}, false
	}
	if l.isAtEnd() {
		l.done = true
		return token{
			token: tkEOF,
			span:  textSpan{start: len(l.source), end: len(l.source)},
		}, true
	}
	l.start = l.current
	kind, literal := l.scanToken()
	return token{
		token:   kind,
		literal: literal,
		span: textSpan{
			start:   l.start,
			end:     l.current,
			literal: l.source[l.start:l.current],
		},
	}, true
}

// scan drains the token stream, end-of-input token included.
func (l *lexer) scan() []token {
	var tokens []token
	for {
		tok, ok := l.nextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) scanToken() (tokenType, Value) {
	c := l.peek()
	switch {
	case isDigit(c):
		return l.number()
	case isWhitespace(c):
		l.advance()
		return tkWhitespace, nil
	case c == '"':
		return l.str()
	case isIdentifierStart(c):
		return l.identifier()
	default:
		return l.punctuation(), nil
	}
}

func (l *lexer) punctuation() tokenType {
	c := l.advance()
	switch c {
	case '+':
		return tkPlus
	case '-':
		return tkMinus
	case '*':
		if l.match('*') {
			return tkPower
		}
		return tkStar
	case '/':
		if l.match('/') {
			l.lineComment()
			return tkWhitespace
		}
		if l.match('*') {
			l.blockComment()
			return tkWhitespace
		}
		return tkSlash
	case '%':
		return tkPercent
	case '&':
		if l.match('&') {
			return tkAnd
		}
		return tkAmpersand
	case '|':
		if l.match('|') {
			return tkOr
		}
		return tkPipe
	case '^':
		return tkCaret
	case '<':
		if l.match('<') {
			return tkLeftShift
		}
		if l.match('=') {
			return tkLessEqual
		}
		return tkLess
	case '>':
		if l.match('>') {
			return tkRightShift
		}
		if l.match('=') {
			return tkGreaterEqual
		}
		return tkGreater
	case '!':
		if l.match('=') {
			return tkBangEqual
		}
		return tkBang
	case '=':
		if l.match('=') {
			return tkEqualEqual
		}
		return tkEqual
	case '(':
		return tkLeftParen
	case ')':
		return tkRightParen
	case '{':
		return tkLeftCurlyBrace
	case '}':
		return tkRightCurlyBrace
	case ',':
		return tkComma
	case ';':
		return tkSemicolon
	}
	return tkBad
}

// number consumes a maximal digit run, taking a '.' only when a digit
// follows it. Text that strconv rejects silently falls back to zero.
func (l *lexer) number() (tokenType, Value) {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
		f, err := strconv.ParseFloat(l.source[l.start:l.current], 64)
		if err != nil {
			f = 0.0
		}
		return tkFloat, arcFloat(f)
	}
	n, err := strconv.ParseInt(l.source[l.start:l.current], 10, 64)
	if err != nil {
		n = 0
	}
	return tkNumber, arcInt(n)
}

// str consumes a double-quoted string. Recognized escapes are \n \t \r \\
// and \"; any other escape keeps the backslash and the following character
// verbatim. An unterminated string consumes to end of input.
func (l *lexer) str() (tokenType, Value) {
	l.advance()
	var text []byte
	for !l.isAtEnd() {
		c := l.advance()
		if c == '"' {
			break
		}
		if c == '\\' && !l.isAtEnd() {
			escaped := l.advance()
			switch escaped {
			case 'n':
				text = append(text, '\n')
			case 't':
				text = append(text, '\t')
			case 'r':
				text = append(text, '\r')
			case '\\':
				text = append(text, '\\')
			case '"':
				text = append(text, '"')
			default:
				text = append(text, '\\', escaped)
			}
			continue
		}
		text = append(text, c)
	}
	return tkString, arcString(text)
}

var keywords = map[string]tokenType{
	"let":   tkLet,
	"const": tkConst,
}

// identifier scans a full identifier run before deciding whether it is a
// keyword, so identifiers are never partially reinterpreted.
func (l *lexer) identifier() (tokenType, Value) {
	for isIdentifierPart(l.peek()) {
		l.advance()
	}
	name := l.source[l.start:l.current]
	switch name {
	case "true":
		return tkBoolean, arcBool(true)
	case "false":
		return tkBoolean, arcBool(false)
	}
	if kind, ok := keywords[name]; ok {
		return kind, nil
	}
	return tkIdentifier, nil
}

func (l *lexer) lineComment() {
	for !l.isAtEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// blockComment consumes to the terminating */ or to end of input.
func (l *lexer) blockComment() {
	for !l.isAtEnd() {
		if l.advance() == '*' && l.match('/') {
			return
		}
	}
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierPart(c byte) bool {
	return isIdentifierStart(c) || isDigit(c)
}
