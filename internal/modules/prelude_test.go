package modules

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/symbols"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// TestWeightedChoiceScenario is spec.md §8 scenario 7: with weights
// [0.7, 0.25, 0.05], cumulative is [0.7, 0.95, 1.0]; for r=0.8, the
// selected index is 1.
func TestWeightedChoiceScenario(t *testing.T) {
	weights := []float64{0.7, 0.25, 0.05}
	cum := CumulativeWeights(weights)
	want := []float64{0.7, 0.95, 1.0}
	for i := range want {
		if diff := cum[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("cumulative[%d] = %v, want %v", i, cum[i], want[i])
		}
	}
	if got := WeightedChoice(weights, 0.8); got != 1 {
		t.Fatalf("WeightedChoice(weights, 0.8) = %d, want 1", got)
	}
}

// TestWeightedChoiceBoundaries checks the edges: r below every weight
// selects index 0, r at or above the total selects the last index.
func TestWeightedChoiceBoundaries(t *testing.T) {
	weights := []float64{0.5, 0.5}
	if got := WeightedChoice(weights, 0.0); got != 0 {
		t.Fatalf("WeightedChoice(weights, 0.0) = %d, want 0", got)
	}
	if got := WeightedChoice(weights, 1.0); got != 1 {
		t.Fatalf("WeightedChoice(weights, 1.0) = %d, want 1", got)
	}
}

// TestPreludeRegistersRuntimeABI confirms every runtime-ABI concern named
// in §6.2 has at least one pre-registered native fn symbol.
func TestPreludeRegistersRuntimeABI(t *testing.T) {
	p := Prelude()
	for _, name := range []string{
		"array_alloc", "random_new", "random_weighted",
		"uuid_v4", "uuid_v5", "uuid_v7", "sha1",
		"file_open", "tcp_listen", "udp_bind", "process_spawn",
	} {
		if _, ok := p.LookupLocal(name); !ok {
			t.Errorf("expected prelude to register %q", name)
		}
	}
}

// TestPreludeEntriesAreNative confirms every prelude entry is a native
// function symbol (§6.2: these seed the symbol table the way a
// standard-library header seeds a C compiler's scope).
func TestPreludeEntriesAreNative(t *testing.T) {
	p := Prelude()
	for _, name := range p.AllVisibleNames() {
		sym, _ := p.LookupLocal(name)
		if sym.Kind != symbols.FuncSymbol {
			t.Fatalf("prelude entry %q is not a function symbol", name)
		}
		if fn, ok := sym.Type.(types.Function); !ok || !fn.IsNative {
			t.Fatalf("prelude entry %q is not a native function", name)
		}
	}
}
