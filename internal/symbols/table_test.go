package symbols

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/types"
)

func TestDefineAndLookup(t *testing.T) {
	global := NewTable(nil)
	global.Define(Symbol{Name: "x", Type: types.Int, Kind: VarSymbol})

	if sym, ok := global.Lookup("x"); !ok || !types.Equals(sym.Type, types.Int) {
		t.Fatalf("expected to find x:int, got %+v, %v", sym, ok)
	}
	if _, ok := global.Lookup("y"); ok {
		t.Fatal("y should not be defined")
	}
}

func TestRedeclaredSameScope(t *testing.T) {
	global := NewTable(nil)
	global.Define(Symbol{Name: "x", Type: types.Int, Kind: VarSymbol})
	_, redeclared := global.Define(Symbol{Name: "x", Type: types.String, Kind: VarSymbol})
	if !redeclared {
		t.Fatal("expected redeclaration in same scope to be reported")
	}
}

func TestShadowingAcrossScopesIsNotRedeclaration(t *testing.T) {
	global := NewTable(nil)
	global.Define(Symbol{Name: "x", Type: types.Int, Kind: VarSymbol})

	inner := NewTable(global)
	_, redeclared := inner.Define(Symbol{Name: "x", Type: types.String, Kind: VarSymbol})
	if redeclared {
		t.Fatal("shadowing an outer binding in a nested scope should not be a redeclaration")
	}
	sym, ok := inner.Lookup("x")
	if !ok || !types.Equals(sym.Type, types.String) {
		t.Fatal("inner scope lookup should find the shadowing binding")
	}
}

func TestLookupLocalDoesNotSeeOuterScope(t *testing.T) {
	global := NewTable(nil)
	global.Define(Symbol{Name: "x", Type: types.Int, Kind: VarSymbol})
	inner := NewTable(global)

	if _, ok := inner.LookupLocal("x"); ok {
		t.Fatal("LookupLocal should not see outer scope bindings")
	}
}

func TestAllVisibleNames(t *testing.T) {
	global := NewTable(nil)
	global.Define(Symbol{Name: "a", Kind: VarSymbol})
	inner := NewTable(global)
	inner.Define(Symbol{Name: "b", Kind: VarSymbol})

	names := inner.AllVisibleNames()
	set := make(map[string]bool)
	for _, n := range names {
		set[n] = true
	}
	if !set["a"] || !set["b"] {
		t.Fatalf("expected both a and b visible, got %v", names)
	}
}

func TestArenaContextNestingFromAnyScope(t *testing.T) {
	global := NewTable(nil)
	inner := NewTable(global)

	inner.EnterPrivate()
	if !global.InPrivate() {
		t.Fatal("entering private from a nested scope should be visible at the root")
	}
	inner.ExitPrivate()
	if global.InPrivate() {
		t.Fatal("exiting private should clear the root-visible flag")
	}
}

func TestArenaContextExitIsSaturatingAtZero(t *testing.T) {
	global := NewTable(nil)
	global.ExitNative()
	if global.InNative() {
		t.Fatal("exiting native context with no matching enter must not go negative")
	}
}

func TestArenaContextCounters(t *testing.T) {
	global := NewTable(nil)
	global.EnterNative()
	global.EnterNative()
	if !global.InNative() {
		t.Fatal("expected InNative true after two EnterNative calls")
	}
	global.ExitNative()
	if !global.InNative() {
		t.Fatal("expected InNative still true after one ExitNative of two")
	}
	global.ExitNative()
	if global.InNative() {
		t.Fatal("expected InNative false after matching exits")
	}
}
