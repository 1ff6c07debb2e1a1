package lexer

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/token"
)

func collectTypes(src string) []token.TokenType {
	l := New(src, "test.sn")
	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	return types
}

func TestNextTokenBasics(t *testing.T) {
	src := "var x = 1 + 2"
	want := []token.TokenType{token.VAR, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT, token.EOF}
	got := collectTypes(src)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestKeywordsAndTypeKeywords(t *testing.T) {
	src := "fn native private shared as val ref int long double float"
	want := []token.TokenType{
		token.FN, token.NATIVE, token.PRIVATE, token.SHARED, token.AS, token.VAL, token.REF,
		token.INT_T, token.LONG_T, token.DOUBLE_T, token.FLOAT_T, token.EOF,
	}
	got := collectTypes(src)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestPlainStringLiteral(t *testing.T) {
	l := New(`"hello world"`, "test.sn")
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %v", tok.Type)
	}
	if tok.Literal != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", tok.Literal)
	}
}

func TestInterpolatedStringTokenSequence(t *testing.T) {
	// "x = ${x}!" should yield START("x = "), IDENT(x), END("!")
	l := New(`"x = ${x}!"`, "test.sn")
	tokens := []token.Token{l.NextToken(), l.NextToken(), l.NextToken(), l.NextToken()}

	if tokens[0].Type != token.INTERP_STRING_START || tokens[0].Literal != "x = " {
		t.Errorf("segment 1: got %+v", tokens[0])
	}
	if tokens[1].Type != token.IDENT || tokens[1].Lexeme != "x" {
		t.Errorf("segment 2: got %+v", tokens[1])
	}
	if tokens[2].Type != token.INTERP_STRING_END || tokens[2].Literal != "!" {
		t.Errorf("segment 3: got %+v", tokens[2])
	}
	if tokens[3].Type != token.EOF {
		t.Errorf("expected EOF after string, got %+v", tokens[3])
	}
}

func TestInterpolatedStringWithMultipleInterpolations(t *testing.T) {
	// "${a}-${b}" -> START(""), a, MID("-"), b, END("")
	got := collectTypes(`"${a}-${b}"`)
	want := []token.TokenType{
		token.INTERP_STRING_START, token.IDENT, token.INTERP_STRING_MID,
		token.IDENT, token.INTERP_STRING_END, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestInterpolationWithNestedBraces(t *testing.T) {
	// The embedded expression itself uses {} (an array literal), which
	// must not be mistaken for the interpolation's closing brace.
	got := collectTypes(`"${ {1, 2}.length() }"`)
	want := []token.TokenType{
		token.INTERP_STRING_START,
		token.LBRACE, token.INT, token.COMMA, token.INT, token.RBRACE,
		token.DOT, token.IDENT, token.LPAREN, token.RPAREN,
		token.INTERP_STRING_END, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	l := New(`"abc`, "test.sn")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %v", tok.Type)
	}
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want token.TokenType
	}{
		{"42", token.INT},
		{"42L", token.LONG},
		{"3.14", token.FLOAT},
		{"3.14f", token.FLOAT},
		{"0xFF", token.INT},
		{"0b101", token.INT},
	}
	for _, c := range cases {
		l := New(c.src, "test.sn")
		tok := l.NextToken()
		if tok.Type != c.want {
			t.Errorf("%q: got %v want %v", c.src, tok.Type, c.want)
		}
	}
}

func TestInvalidNumberLiteral(t *testing.T) {
	l := New("0xZZ", "test.sn")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %v (%q)", tok.Type, tok.Lexeme)
	}
}

func TestCharLiteral(t *testing.T) {
	l := New(`'a'`, "test.sn")
	tok := l.NextToken()
	if tok.Type != token.CHAR || tok.Literal != "a" {
		t.Fatalf("got %+v", tok)
	}
}

func TestSkipsLineAndBlockComments(t *testing.T) {
	src := "// comment\nvar /* inline */ x = 1"
	got := collectTypes(src)
	want := []token.TokenType{token.NEWLINE, token.VAR, token.IDENT, token.ASSIGN, token.INT, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestUnknownCharacterIsIllegal(t *testing.T) {
	l := New("#", "test.sn")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for '#', got %v", tok.Type)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("var\nx", "test.sn")
	first := l.NextToken() // var
	if first.Line != 1 {
		t.Errorf("expected line 1, got %d", first.Line)
	}
	l.NextToken() // newline
	third := l.NextToken() // x
	if third.Line != 2 {
		t.Errorf("expected line 2, got %d", third.Line)
	}
}
