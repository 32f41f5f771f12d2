package lexer

import (
	"testing"

	"github.com/basiclang/gobasic/internal/token"
)

func TestNextTokenBasics(t *testing.T) {
	input := `10 LET A% = 1 + 2.5 * (3 - "hi")`

	tests := []struct {
		wantType    token.Type
		wantLiteral string
	}{
		{token.INT, "10"},
		{token.LET, "LET"},
		{token.IDENT, "A%"},
		{token.ASSIGN, "="},
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.FLOAT, "2.5"},
		{token.ASTERISK, "*"},
		{token.LPAREN, "("},
		{token.INT, "3"},
		{token.MINUS, "-"},
		{token.STRING, "hi"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %s, want %s (literal %q)", i, tok.Type, tt.wantType, tok.Literal)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLiteral)
		}
	}
}

func TestSigilsFixIdentifierSpelling(t *testing.T) {
	l := New("NAME$ COUNT% X")
	want := []string{"NAME$", "COUNT%", "X"}
	for _, w := range want {
		tok := l.NextToken()
		if tok.Type != token.IDENT {
			t.Fatalf("%q: type = %s, want IDENT", w, tok.Type)
		}
		if tok.Literal != w {
			t.Fatalf("literal = %q, want %q", tok.Literal, w)
		}
	}
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	l := New("print PRINT Print")
	for i := 0; i < 3; i++ {
		tok := l.NextToken()
		if tok.Type != token.PRINT {
			t.Fatalf("token %d: type = %s, want PRINT", i, tok.Type)
		}
		if tok.Literal != "PRINT" {
			t.Fatalf("token %d: literal = %q, want canonical PRINT", i, tok.Literal)
		}
	}
}

func TestQuestionMarkIsPrint(t *testing.T) {
	l := New(`? "hi"`)
	tok := l.NextToken()
	if tok.Type != token.PRINT || tok.Literal != "?" {
		t.Fatalf("got %s %q, want PRINT \"?\"", tok.Type, tok.Literal)
	}
}

func TestRemConsumesRestOfLine(t *testing.T) {
	l := New("REM this is a comment\nPRINT 1")
	tok := l.NextToken()
	if tok.Type != token.REM {
		t.Fatalf("type = %s, want REM", tok.Type)
	}
	if tok.Literal != "REM this is a comment" {
		t.Fatalf("literal = %q", tok.Literal)
	}
	if tok.Category != token.CategoryComment {
		t.Fatalf("category = %s, want comment", tok.Category)
	}

	next := l.NextToken()
	if next.Type != token.PRINT {
		t.Fatalf("expected PRINT after REM line, got %s", next.Type)
	}
}

func TestUnterminatedStringReadsToEOF(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("type = %s, want STRING", tok.Type)
	}
	if tok.Literal != "unterminated" {
		t.Fatalf("literal = %q", tok.Literal)
	}
	if l.NextToken().Type != token.EOF {
		t.Fatalf("expected EOF after unterminated string")
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", tok.Type)
	}
	if tok.Literal != "@" {
		t.Fatalf("literal = %q", tok.Literal)
	}
}

func TestTwoCharOperators(t *testing.T) {
	tests := map[string]token.Type{
		"<=": token.LT_EQ,
		">=": token.GT_EQ,
		"<>": token.NOT_EQ,
		"<":  token.LT,
		">":  token.GT,
	}
	for src, want := range tests {
		l := New(src)
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("%q: type = %s, want %s", src, tok.Type, want)
		}
	}
}

func TestPositionTracking(t *testing.T) {
	l := New("10 A\n20 B")
	tokA := l.NextToken() // 10
	if tokA.Pos.Line != 1 {
		t.Fatalf("line = %d, want 1", tokA.Pos.Line)
	}
	l.NextToken() // A
	tokB := l.NextToken() // 20
	if tokB.Pos.Line != 2 {
		t.Fatalf("line = %d, want 2", tokB.Pos.Line)
	}
}

func TestTokenizeTerminatesWithEOF(t *testing.T) {
	toks := New("PRINT 1 : PRINT 2").Tokenize()
	if len(toks) == 0 {
		t.Fatal("expected at least one token")
	}
	if last := toks[len(toks)-1]; last.Type != token.EOF {
		t.Fatalf("last token = %s, want EOF", last.Type)
	}
	for _, tok := range toks[:len(toks)-1] {
		if tok.Type == token.EOF {
			t.Fatal("EOF token appeared before the end of the sequence")
		}
	}
}
