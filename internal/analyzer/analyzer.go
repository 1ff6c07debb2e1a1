// Package analyzer implements Sindarin's type checker and region/escape
// analyzer (spec.md §4.7, C7) — the core of the core. Unlike the teacher's
// Hindley-Milner checker (type variables, unification, trait resolution —
// all in service of a generic type system Sindarin explicitly has none of,
// spec.md §1's Non-goals), this is a single walker over a closed,
// monomorphic type set: one Visit method per AST node kind, matching the
// teacher's `analyzer.walker`/`Visit*` dispatch shape
// (funxy/internal/analyzer/statements.go, declarations.go) without its
// generics machinery.
package analyzer

import (
	"github.com/sindarin-lang/sindarin/internal/arena"
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/symbols"
	"github.com/sindarin-lang/sindarin/internal/token"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// Walker is the sole implementation of ast.Visitor in this package. It
// carries no return values on its Visit methods (the interface is void,
// matching funxy's own walker shape); expression results are instead
// memoized directly onto the node via Expression.SetResolvedType and read
// back through typeOf, the same memoize-on-the-node invariant spec.md §3.3
// documents.
type Walker struct {
	// BaseVisitor supplies no-op implementations of the few ast.Visitor
	// methods this checker never needs to dispatch through directly:
	// VisitModule (Check walks mod.Statements itself) and the TypeExpr
	// visit methods (type expressions are resolved via resolveTypeExpr,
	// never through Accept).
	ast.BaseVisitor

	sink  *diagnostics.Sink
	scope *symbols.Table

	// currentReturn is the declared return type of the function body
	// currently being checked, nil at module scope (no bare return/value
	// checking applies there).
	currentReturn types.Type

	// currentModifier is the declared modifier of the function currently
	// being checked, saved and restored around nested function and lambda
	// bodies. The private-escape rule (§4.7.4) does not read it; it uses
	// the arena context (w.scope.InPrivate()).
	currentModifier ast.FunctionModifier

	// capturedScope is the real lexical scope a native lambda's body was
	// cut from. A native lambda body checks against a disconnected scope
	// (only its own params defined) so that any name resolving in
	// capturedScope but not in scope is known to be a capture rather than
	// genuinely undefined (§4.7.8). Nil outside a native lambda body.
	capturedScope *symbols.Table

	// loopDepth counts enclosing while/for/for-each loops, so break/continue
	// outside any loop can be rejected (§9's resolution of the break/continue
	// open question: CodeBreakOutsideLoop/CodeContinueOutsideLoop).
	loopDepth int

	// arena accounts every scope this Walker pushes against the
	// compilation's byte ceiling (spec.md §3.8, C1). Defaults to an
	// unlimited Arena; SetArena swaps in a caller-owned one.
	arena *arena.Arena
}

// NewWalker creates a Walker reporting to sink, with a fresh global scope
// nested inside outer. Pass nil for a module with no imports and no
// prelude; the import resolver (C8, spec.md §4.7.10) runs before this
// checker and passes the table of resolved import/prelude symbols here, so
// a reference to an imported name resolves through the normal outer-scope
// chain rather than needing any special-casing in VisitImportStatement.
func NewWalker(sink *diagnostics.Sink, outer *symbols.Table) *Walker {
	w := &Walker{sink: sink, arena: arena.New()}
	w.scope = w.newTable(outer)
	return w
}

// SetArena swaps in a caller-owned Arena (spec.md §3.8, C1), so this
// Walker's scope accounting shares the caller's allocation ceiling instead
// of the unlimited one NewWalker sets up by default.
func (w *Walker) SetArena(a *arena.Arena) { w.arena = a }

// newTable creates a scope nested inside outer, charging its construction
// against w.arena (arena.Track — see internal/parser.trackAlloc's doc
// comment for why the *symbols.Table itself still lives on the Go heap
// rather than inside the arena's byte slab).
func (w *Walker) newTable(outer *symbols.Table) *symbols.Table {
	if err := arena.Track[symbols.Table](w.arena); err != nil {
		w.sink.ErrorAt(diagnostics.CodeAllocationExhausted, token.Token{},
			"compilation exceeded its configured arena allocation ceiling")
	}
	return symbols.NewTable(outer)
}

// Globals returns the walker's top-level scope (which includes whatever
// outer table NewWalker was seeded with), consulted by the import resolver
// (C8, spec.md §4.7.10) when a module that imports this one is checked.
func (w *Walker) Globals() *symbols.Table { return w.scope }

// Check type-checks and region-analyzes an entire module (spec.md §4.7,
// the public entry point C7 exposes to the pipeline).
func (w *Walker) Check(mod *ast.Module) {
	for _, stmt := range mod.Statements {
		stmt.Accept(w)
	}
}

// typeOf computes (memoizing) the type of e, or returns nil if e could not
// be typed — callers should treat a nil result as "an error was already
// reported, don't cascade another one" (spec.md §8 invariant: type(e) !=
// nil iff no error was reported at e).
func (w *Walker) typeOf(e ast.Expression) types.Type {
	if e == nil {
		return nil
	}
	if t := e.ResolvedType(); t != nil {
		return t
	}
	e.Accept(w)
	return e.ResolvedType()
}

// set memoizes t onto e and returns t, so Visit methods can end with
// `return w.set(e, result)`-style one-liners.
func (w *Walker) set(e ast.Expression, t types.Type) types.Type {
	if t != nil {
		e.SetResolvedType(t)
	}
	return t
}

func (w *Walker) pushScope() { w.scope = w.newTable(w.scope) }
func (w *Walker) popScope()  { w.scope = w.scope.Outer() }

// lookup resolves name in the current scope chain, reporting
// CodeUndefinedSymbol with a spelling suggestion on failure (§4.7.1,
// §8 property 8).
func (w *Walker) lookup(n ast.Node, name string) (symbols.Symbol, bool) {
	sym, ok := w.scope.Lookup(name)
	if ok {
		return sym, true
	}
	suggestion := diagnostics.SuggestionFor(name, w.scope.AllVisibleNames())
	if suggestion != "" {
		w.sink.ErrorWithSuggestion(diagnostics.CodeUndefinedSymbol, n.GetToken(), suggestion,
			"undefined symbol '%s'", name)
	} else {
		w.sink.ErrorAt(diagnostics.CodeUndefinedSymbol, n.GetToken(), "undefined symbol '%s'", name)
	}
	return symbols.Symbol{}, false
}
