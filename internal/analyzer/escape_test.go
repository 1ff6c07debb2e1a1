package analyzer

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
)

// TestPrivateEscapeRejected is spec.md §8 scenario 2: a private function
// returning a reference-kind value is rejected.
func TestPrivateEscapeRejected(t *testing.T) {
	src := `private fn f(): int[] => return {1, 2, 3}`
	_, sink, _ := checkSource(t, src)
	requireCode(t, sink, diagnostics.CodePrivateEscape)
}

// TestSharedPromotionAccepted is spec.md §8 scenario 3: a default-modifier
// function returning a reference-kind value is accepted, and its symbol's
// effective modifier is recorded as shared.
func TestSharedPromotionAccepted(t *testing.T) {
	src := `fn mk(): int[] => return {1, 2, 3}`
	_, sink, w := checkSource(t, src)
	requireNoCheckErrors(t, sink)
	sym, ok := w.Globals().Lookup("mk")
	if !ok {
		t.Fatalf("expected 'mk' to be defined")
	}
	if sym.Modifier != ast.ModShared {
		t.Fatalf("expected effective modifier shared, got %v", sym.Modifier)
	}
}

// TestPrivateEscapeAllowsPrimitive confirms the private-escape rule only
// rejects reference-kind values; a primitive return from a private function
// is fine.
func TestPrivateEscapeAllowsPrimitive(t *testing.T) {
	src := `private fn f(): int => return 1`
	_, sink, w := checkSource(t, src)
	requireNoCheckErrors(t, sink)
	sym, ok := w.Globals().Lookup("f")
	if !ok {
		t.Fatalf("expected 'f' to be defined")
	}
	if sym.Modifier != ast.ModPrivate {
		t.Fatalf("expected effective modifier private (no promotion for a primitive return), got %v", sym.Modifier)
	}
}

// TestPrivateBlockEscapeRejected checks the same rule for a `private { }`
// block, not just a private function.
func TestPrivateBlockEscapeRejected(t *testing.T) {
	src := `fn f(): int[] => { private => return {1, 2, 3} }`
	_, sink, _ := checkSource(t, src)
	requireCode(t, sink, diagnostics.CodePrivateEscape)
}
