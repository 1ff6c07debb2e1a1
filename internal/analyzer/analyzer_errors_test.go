package analyzer

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/lexer"
	"github.com/sindarin-lang/sindarin/internal/parser"
)

// checkSource parses and checks src, returning the resulting module and the
// sink of diagnostics the checker (and parser) reported.
func checkSource(t *testing.T, src string) (*ast.Module, *diagnostics.Sink, *Walker) {
	t.Helper()
	sink := diagnostics.NewSink()
	l := lexer.New(src, "test.sn")
	p := parser.New(l, sink, "test.sn")
	mod := p.ParseProgram()
	if sink.HadError() {
		for _, d := range sink.Diagnostics() {
			t.Logf("parse diagnostic: %s", d.String())
		}
		t.Fatalf("expected no parse errors")
	}
	w := NewWalker(sink, nil)
	w.Check(mod)
	return mod, sink, w
}

func requireCode(t *testing.T, sink *diagnostics.Sink, code diagnostics.Code) {
	t.Helper()
	for _, d := range sink.Diagnostics() {
		if d.Code == code {
			return
		}
	}
	for _, d := range sink.Diagnostics() {
		t.Logf("diagnostic: %s", d.String())
	}
	t.Fatalf("expected a diagnostic with code %s, got none", code)
}

func requireNoCheckErrors(t *testing.T, sink *diagnostics.Sink) {
	t.Helper()
	if sink.HadError() {
		for _, d := range sink.Diagnostics() {
			t.Logf("diagnostic: %s", d.String())
		}
		t.Fatalf("expected no check errors")
	}
}

// TestResolvedTypeNilIffError checks §8's invariant: type(e) != nil iff no
// error was reported at e, on a well-typed and an ill-typed expression.
func TestResolvedTypeNilIffError(t *testing.T) {
	mod, sink, _ := checkSource(t, "var x: int = 1 + 2")
	requireNoCheckErrors(t, sink)
	decl := mod.Statements[0].(*ast.VarDeclStatement)
	if decl.Value.ResolvedType() == nil {
		t.Fatalf("expected a resolved type on a well-typed expression")
	}

	mod2, sink2, _ := checkSource(t, "var y: int = true + 1")
	if !sink2.HadError() {
		t.Fatalf("expected an error on 'true + 1'")
	}
	decl2 := mod2.Statements[0].(*ast.VarDeclStatement)
	if decl2.Value.ResolvedType() != nil {
		t.Fatalf("expected no resolved type on an ill-typed expression")
	}
}

// TestArenaCountersBalancedAcrossModule checks §8's invariant: arena
// context counters are zero at the start and end of checking each
// top-level statement (here: the whole module, since the top level
// statements are the outermost frame).
func TestArenaCountersBalancedAcrossModule(t *testing.T) {
	src := `
private fn f(): int => return 1
fn g(): int[] => return {1, 2, 3}
`
	_, sink, w := checkSource(t, src)
	requireNoCheckErrors(t, sink)
	if w.scope.InPrivate() {
		t.Fatalf("expected InPrivate to be false after checking the module")
	}
	if w.scope.InNative() {
		t.Fatalf("expected InNative to be false after checking the module")
	}
	if w.scope.InAsVal() {
		t.Fatalf("expected InAsVal to be false after checking the module")
	}
}
