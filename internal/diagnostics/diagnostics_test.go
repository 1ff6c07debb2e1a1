package diagnostics

import (
	"strings"
	"testing"

	"github.com/sindarin-lang/sindarin/internal/token"
)

func tok(file string, line int) token.Token {
	return token.Token{File: file, Line: line, Lexeme: "x"}
}

func TestErrorAtFormat(t *testing.T) {
	s := NewSink()
	s.ErrorAt(CodeUndefinedSymbol, tok("main.sn", 3), "undefined symbol '%s'", "lenght")
	got := s.Diagnostics()[0].String()
	want := "main.sn:3: error: undefined symbol 'lenght'"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !s.HadError() {
		t.Fatal("expected HadError true")
	}
}

func TestErrorWithSuggestionFormat(t *testing.T) {
	s := NewSink()
	s.ErrorWithSuggestion(CodeUndefinedSymbol, tok("main.sn", 5), "length", "undefined symbol '%s'", "lenght")
	got := s.Diagnostics()[0].String()
	if !strings.Contains(got, "did you mean 'length'?") {
		t.Fatalf("missing suggestion in %q", got)
	}
}

func TestWarnDoesNotSetHadError(t *testing.T) {
	s := NewSink()
	s.WarnAt(CodeInvalidOperand, tok("main.sn", 1), "as val on primitive has no effect")
	if s.HadError() {
		t.Fatal("warning must not set HadError")
	}
}

func TestSuggestionFor(t *testing.T) {
	// "length" and "height" are both at distance 2 from "lenght"; the tie
	// goes to the lexically smaller name.
	got := SuggestionFor("lenght", []string{"length", "width", "height"})
	if got != "height" {
		t.Fatalf("got %q", got)
	}
}

func TestSuggestionForNoMatch(t *testing.T) {
	got := SuggestionFor("zzzzzzzzzz", []string{"length"})
	if got != "" {
		t.Fatalf("expected no suggestion, got %q", got)
	}
}
