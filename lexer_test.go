package seed

import "testing"

func scanTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	toks, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var tt []TokenType
	for _, tok := range toks {
		tt = append(tt, tok.Type)
	}
	return tt
}

func TestLexPunctuationAndOperators(t *testing.T) {
	got := scanTypes(t, `:= = += -> .. . : ; , ( ) [ ] { } == === != <= >= && ||`)
	want := []TokenType{
		DECLARE, ASSIGN, PLUS_EQ, ARROW, DOTDOT, PERIOD, COLON, SEMI, COMMA,
		LPAREN, RPAREN, LSQUARE, RSQUARE, LCURLY, RCURLY,
		EQ, REFEQ, NEQ, LESS_EQ, GREATER_EQ, AND_AND, OR_OR, EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexIntegerWithUnderscoreSeparators(t *testing.T) {
	toks, err := NewLexer("1_000_000").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != INT || toks[0].Lit.(int64) != 1000000 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := NewLexer(`"a\nb\tc\"d\\e\x41"`).Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := toks[0].Lit.(string)
	want := "a\nb\tc\"d\\eA"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLexCommentToEndOfLine(t *testing.T) {
	toks, err := NewLexer("x := 1; # trailing comment\ny := 2;").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The comment must not produce any tokens at all: only the tokens of
	// the two declarations and EOF remain.
	if len(toks) != 9 {
		t.Fatalf("got %d tokens, want 9: %+v", len(toks), toks)
	}
	for _, tok := range toks {
		if tok.Type == ILLEGAL {
			t.Fatalf("comment leaked a token: %+v", tok)
		}
	}
}

func TestLexKeywordsVsIdentifiers(t *testing.T) {
	toks, err := NewLexer("if this func true").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TokenType{IF, IDENT, FUNC, TRUE, EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Fatalf("token %d: got %v, want %v", i, toks[i].Type, w)
		}
	}
}

func TestLexUnterminatedStringFails(t *testing.T) {
	_, err := NewLexer(`"abc`).Scan()
	if err == nil {
		t.Fatalf("expected a lex error for an unterminated string")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
}

func TestLexTracksLineAndColumn(t *testing.T) {
	toks, err := NewLexer("x\ny").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Line != 1 {
		t.Fatalf("expected x on line 1, got %d", toks[0].Line)
	}
	if toks[1].Line != 2 {
		t.Fatalf("expected y on line 2, got %d", toks[1].Line)
	}
}
