package symbols

// Table is a single lexical scope. The scope chain is the `outer` pointer,
// not a separate type: the global scope is a Table with outer == nil, a
// function body is a Table whose outer is the enclosing scope, and so on
// (the teacher's symbol-table package uses this same self-referential
// chain instead of a dedicated Scope/Environment type).
type Table struct {
	store map[string]Symbol
	outer *Table

	// Arena context counters (§3.7), meaningful only on the root table —
	// see region.go.
	arenaDepth int
	inNative   int
	inAsVal    int
}

// NewTable creates a scope nested inside outer. Pass nil for the global
// scope.
func NewTable(outer *Table) *Table {
	return &Table{store: make(map[string]Symbol), outer: outer}
}

// Outer returns the enclosing scope, or nil at the global scope.
func (t *Table) Outer() *Table { return t.outer }

// Define adds sym to this scope. It returns the symbol already bound to
// the same name in THIS scope (not an outer one) and true if one existed;
// callers use this to raise CodeRedeclaredSymbol (spec.md §4.7.2: shadowing
// an outer binding is fine, redeclaring within the same scope is not).
func (t *Table) Define(sym Symbol) (Symbol, bool) {
	if existing, ok := t.store[sym.Name]; ok {
		return existing, true
	}
	t.store[sym.Name] = sym
	return Symbol{}, false
}

// Lookup searches this scope and then each enclosing scope in turn.
func (t *Table) Lookup(name string) (Symbol, bool) {
	if sym, ok := t.store[name]; ok {
		return sym, true
	}
	if t.outer != nil {
		return t.outer.Lookup(name)
	}
	return Symbol{}, false
}

// LookupLocal searches only this scope, ignoring outer scopes.
func (t *Table) LookupLocal(name string) (Symbol, bool) {
	sym, ok := t.store[name]
	return sym, ok
}

// AllVisibleNames returns every name visible from this scope (this scope
// plus all enclosing scopes), deduplicated, innermost binding winning. Used
// to build the candidate list for diagnostics.SuggestionFor on an
// undefined-symbol error (spec.md §4.7.2, §8 property 8).
func (t *Table) AllVisibleNames() []string {
	seen := make(map[string]bool)
	var names []string
	for s := t; s != nil; s = s.outer {
		for name := range s.store {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
