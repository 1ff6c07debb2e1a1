package analyzer

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/diagnostics"
)

// TestUndefinedSymbolSuggestsNearMiss is spec.md §8 scenario 8: a misspelled
// reference to a symbol that is in scope reports CodeUndefinedSymbol with a
// spelling suggestion for the name actually declared.
func TestUndefinedSymbolSuggestsNearMiss(t *testing.T) {
	src := `
fn f(): int => {
    var length: int = 0
    return lenght
}
`
	_, sink, _ := checkSource(t, src)
	requireCode(t, sink, diagnostics.CodeUndefinedSymbol)

	for _, d := range sink.Diagnostics() {
		if d.Code == diagnostics.CodeUndefinedSymbol {
			if d.Suggestion != "length" {
				t.Fatalf("expected suggestion 'length', got %q", d.Suggestion)
			}
			return
		}
	}
}

// TestUndefinedSymbolNoSuggestion confirms no suggestion is attached when
// nothing in scope is a close spelling match.
func TestUndefinedSymbolNoSuggestion(t *testing.T) {
	src := `
fn f(): int => {
    var length: int = 0
    return zzzzzzzzzz
}
`
	_, sink, _ := checkSource(t, src)
	for _, d := range sink.Diagnostics() {
		if d.Code == diagnostics.CodeUndefinedSymbol {
			if d.Suggestion != "" {
				t.Fatalf("expected no suggestion, got %q", d.Suggestion)
			}
			return
		}
	}
	t.Fatalf("expected a CodeUndefinedSymbol diagnostic")
}
