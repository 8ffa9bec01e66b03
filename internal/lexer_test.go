package internal

import (
	"testing"
)

// kinds strips whitespace tokens and returns the remaining token types,
// end-of-input included.
func kinds(source string) []tokenType {
	var out []tokenType
	for _, tok := range newLexer(source).scan() {
		if tok.token == tkWhitespace {
			continue
		}
		out = append(out, tok.token)
	}
	return out
}

func checkKinds(t *testing.T, source string, want []tokenType) {
	t.Helper()
	got := kinds(source)
	if len(got) != len(want) {
		t.Fatalf("%q scanned to %v, want %v", source, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q token %d = %v, want %v", source, i, got[i], want[i])
		}
	}
}

func TestScanOperators(t *testing.T) {
	checkKinds(t, "+ - * / % **", []tokenType{
		tkPlus, tkMinus, tkStar, tkSlash, tkPercent, tkPower, tkEOF,
	})
	checkKinds(t, "& | ^ << >> && ||", []tokenType{
		tkAmpersand, tkPipe, tkCaret, tkLeftShift, tkRightShift, tkAnd, tkOr, tkEOF,
	})
	checkKinds(t, "! = == != < <= > >=", []tokenType{
		tkBang, tkEqual, tkEqualEqual, tkBangEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual, tkEOF,
	})
	checkKinds(t, "( ) { } , ;", []tokenType{
		tkLeftParen, tkRightParen, tkLeftCurlyBrace, tkRightCurlyBrace,
		tkComma, tkSemicolon, tkEOF,
	})
}

func TestScanMaximalMunch(t *testing.T) {
	// Adjacent operator characters pair greedily.
	checkKinds(t, "**", []tokenType{tkPower, tkEOF})
	checkKinds(t, "***", []tokenType{tkPower, tkStar, tkEOF})
	checkKinds(t, "<<=", []tokenType{tkLeftShift, tkEqual, tkEOF})
	checkKinds(t, "===", []tokenType{tkEqualEqual, tkEqual, tkEOF})
	checkKinds(t, "!==", []tokenType{tkBangEqual, tkEqual, tkEOF})
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	checkKinds(t, "let const x _y ab1", []tokenType{
		tkLet, tkConst, tkIdentifier, tkIdentifier, tkIdentifier, tkEOF,
	})
	// Keyword prefixes stay identifiers.
	checkKinds(t, "letter constant truely", []tokenType{
		tkIdentifier, tkIdentifier, tkIdentifier, tkEOF,
	})
}

func TestScanNumbers(t *testing.T) {
	tokens := newLexer("42 3.14 0 007").scan()
	var literals []Value
	for _, tok := range tokens {
		if tok.token == tkNumber || tok.token == tkFloat {
			literals = append(literals, tok.literal)
		}
	}
	want := []Value{arcInt(42), arcFloat(3.14), arcInt(0), arcInt(7)}
	for i, w := range want {
		if literals[i] != w {
			t.Fatalf("literal %d = %v, want %v", i, literals[i], w)
		}
	}
}

func TestScanNumberDotBoundary(t *testing.T) {
	// A '.' not followed by a digit does not join the number.
	checkKinds(t, "1.foo", []tokenType{tkNumber, tkBad, tkIdentifier, tkEOF})
	checkKinds(t, "1.", []tokenType{tkNumber, tkBad, tkEOF})
	checkKinds(t, "1.5.2", []tokenType{tkFloat, tkBad, tkNumber, tkEOF})
}

func TestScanNumberOverflowFallsBackToZero(t *testing.T) {
	tokens := newLexer("99999999999999999999999999").scan()
	if tokens[0].token != tkNumber {
		t.Fatalf("kind = %v", tokens[0].token)
	}
	if tokens[0].literal != arcInt(0) {
		t.Fatalf("literal = %v, want 0", tokens[0].literal)
	}
	if tokens[0].lexeme() != "99999999999999999999999999" {
		t.Fatalf("lexeme = %q", tokens[0].lexeme())
	}
}

func TestScanBooleans(t *testing.T) {
	tokens := newLexer("true false").scan()
	if tokens[0].token != tkBoolean || tokens[0].literal != arcBool(true) {
		t.Fatalf("true scanned to %v %v", tokens[0].token, tokens[0].literal)
	}
	if tokens[2].token != tkBoolean || tokens[2].literal != arcBool(false) {
		t.Fatalf("false scanned to %v %v", tokens[2].token, tokens[2].literal)
	}
}

func TestScanStrings(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"cr\rhere"`, "cr\rhere"},
		{`"back\\slash"`, `back\slash`},
		{`"quo\"te"`, `quo"te`},
		// Unknown escapes keep the backslash verbatim.
		{`"a\nb\q"`, "a\nb\\q"},
		// Unterminated strings consume to end of input.
		{`"open`, "open"},
	} {
		tokens := newLexer(tc.source).scan()
		if tokens[0].token != tkString {
			t.Fatalf("%q kind = %v", tc.source, tokens[0].token)
		}
		if tokens[0].literal != arcString(tc.want) {
			t.Fatalf("%q literal = %q, want %q", tc.source, tokens[0].literal, tc.want)
		}
	}
}

func TestScanComments(t *testing.T) {
	checkKinds(t, "1 // rest is ignored + 2", []tokenType{tkNumber, tkEOF})
	checkKinds(t, "1 /* skip */ 2", []tokenType{tkNumber, tkNumber, tkEOF})
	checkKinds(t, "1 /* never closed", []tokenType{tkNumber, tkEOF})
	checkKinds(t, "/**/1", []tokenType{tkNumber, tkEOF})
}

func TestScanBadCharacter(t *testing.T) {
	checkKinds(t, "1 @ 2", []tokenType{tkNumber, tkBad, tkNumber, tkEOF})
	checkKinds(t, "#", []tokenType{tkBad, tkEOF})
}

func TestScanSpans(t *testing.T) {
	tokens := newLexer("let x = 10").scan()
	want := []struct {
		start, end int
		literal    string
	}{
		{0, 3, "let"},
		{3, 4, " "},
		{4, 5, "x"},
		{5, 6, " "},
		{6, 7, "="},
		{7, 8, " "},
		{8, 10, "10"},
		{10, 10, ""},
	}
	if len(tokens) != len(want) {
		t.Fatalf("scanned %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		sp := tokens[i].span
		if sp.start != w.start || sp.end != w.end || sp.literal != w.literal {
			t.Fatalf("token %d span = %+v, want %+v", i, sp, w)
		}
		if sp.length() != w.end-w.start {
			t.Fatalf("token %d length = %d", i, sp.length())
		}
	}
}

// Re-lexing a token's own source text yields a token of the same kind.
func TestScanRoundTrip(t *testing.T) {
	source := `let x = (10 + 2.5) * 3 ** 2 && "str" || !done >= y << 1`
	for _, tok := range newLexer(source).scan() {
		if tok.token == tkEOF || tok.token == tkWhitespace {
			continue
		}
		again := newLexer(tok.lexeme()).scan()
		if again[0].token != tok.token {
			t.Fatalf("re-lexing %q gave %v, want %v", tok.lexeme(), again[0].token, tok.token)
		}
	}
}

func TestNextTokenExhaustion(t *testing.T) {
	l := newLexer("1")
	if tok, ok := l.nextToken(); !ok || tok.token != tkNumber {
		t.Fatalf("first = %v %v", tok, ok)
	}
	tok, ok := l.nextToken()
	if !ok || tok.token != tkEOF {
		t.Fatalf("second = %v %v", tok, ok)
	}
	if tok.span.start != 1 || tok.span.end != 1 {
		t.Fatalf("end span = %+v", tok.span)
	}
	if _, ok := l.nextToken(); ok {
		t.Fatal("lexer produced a token after end of input")
	}
	if _, ok := l.nextToken(); ok {
		t.Fatal("lexer produced a token after end of input")
	}
}

func TestScanEmptySource(t *testing.T) {
	tokens := newLexer("").scan()
	if len(tokens) != 1 || tokens[0].token != tkEOF {
		t.Fatalf("tokens = %v", tokens)
	}
}

func TestScanWhitespaceTokens(t *testing.T) {
	// Each whitespace byte becomes its own token.
	tokens := newLexer("1 \t2").scan()
	want := []tokenType{tkNumber, tkWhitespace, tkWhitespace, tkNumber, tkEOF}
	for i, w := range want {
		if tokens[i].token != w {
			t.Fatalf("token %d = %v, want %v", i, tokens[i].token, w)
		}
	}
}
