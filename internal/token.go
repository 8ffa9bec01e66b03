package internal

// tokenType identifies the kind of a scanned token.
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Literals.
	tkNumber
	tkFloat
	tkString
	tkBoolean
	tkIdentifier

	// Keywords.
	tkLet
	tkConst

	// One or two character operators.
	// +, -, *, /, %, **, &, |, ^, <<, >>, &&, ||, !, =, ==, !=, <, <=, >, >=
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkPercent
	tkPower
	tkAmpersand
	tkPipe
	tkCaret
	tkLeftShift
	tkRightShift
	tkAnd
	tkOr
	tkBang
	tkEqual
	tkEqualEqual
	tkBangEqual
	tkLess
	tkLessEqual
	tkGreater
	tkGreaterEqual

	// Punctuation.
	// (, ), {, }, ',', ;
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkComma
	tkSemicolon

	tkWhitespace
	tkBad
)

// textSpan locates a token in the original source by byte offsets and keeps
// the exact substring for error reporting and literal reconstruction.
type textSpan struct {
	start   int
	end     int
	literal string
}

func (s textSpan) length() int {
	return s.end - s.start
}

type token struct {
	token   tokenType
	literal Value // decoded literal value, nil for non-literal tokens
	span    textSpan
}

func (t *token) lexeme() string {
	return t.span.literal
}
