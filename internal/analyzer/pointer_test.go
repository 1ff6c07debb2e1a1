package analyzer

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// TestPointerWithoutAsValRejected is spec.md §8 scenario 4 (first half): a
// native function's returned pointer used directly outside native code is
// rejected.
func TestPointerWithoutAsValRejected(t *testing.T) {
	src := `
native fn get_ptr(): *int
fn f(): void => { var x: int = get_ptr() }
`
	_, sink, _ := checkSource(t, src)
	requireCode(t, sink, diagnostics.CodePointerOutsideNative)
}

// TestPointerWithAsValAccepted is spec.md §8 scenario 4 (second half): the
// same pointer, unwrapped with `as val`, is accepted and resolves to int.
func TestPointerWithAsValAccepted(t *testing.T) {
	src := `
native fn get_ptr(): *int
fn f(): void => { var x: int = get_ptr() as val }
`
	mod, sink, _ := checkSource(t, src)
	requireNoCheckErrors(t, sink)

	fn := mod.Statements[1].(*ast.FunctionStatement)
	decl := fn.Body[0].(*ast.VarDeclStatement)
	asVal := decl.Value.(*ast.AsValExpr)
	if asVal.ResolvedType().Kind() != types.KInt {
		t.Fatalf("expected resolved type int, got %s", asVal.ResolvedType().String())
	}
}

// TestPointerSliceBridge is spec.md §8 scenario 5: a pointer-returning
// native function sliced and unwrapped with `as val` flags IsFromPointer on
// the slice and IsFromNoop on the as-val, resolving to array(byte).
func TestPointerSliceBridge(t *testing.T) {
	src := `
native fn get_buffer(): *byte
fn f(): void => {
    var len: int = 10
    var data: byte[] = get_buffer()[0..len] as val
}
`
	mod, sink, _ := checkSource(t, src)
	requireNoCheckErrors(t, sink)

	fn := mod.Statements[1].(*ast.FunctionStatement)
	decl := fn.Body[1].(*ast.VarDeclStatement)
	asVal := decl.Value.(*ast.AsValExpr)
	if !asVal.IsFromNoop {
		t.Fatalf("expected the 'as val' to be flagged IsFromNoop")
	}
	slice := asVal.Operand.(*ast.SliceExpr)
	if !slice.IsFromPointer {
		t.Fatalf("expected the slice to be flagged IsFromPointer")
	}
	arr, ok := asVal.ResolvedType().(types.Array)
	if !ok || arr.Elem.Kind() != types.KByte {
		t.Fatalf("expected resolved type array(byte), got %s", asVal.ResolvedType().String())
	}
}

// TestPointerArithmeticForbidden confirms §4.7.7: pointer arithmetic is
// rejected even on a pointer parameter legally in scope inside native code
// (a native lambda's body, the one place a pointer param's body is checked).
func TestPointerArithmeticForbidden(t *testing.T) {
	src := `
type Adder = native fn(p: *int): *int
fn f(): void => { var h: Adder = fn(p: *int): *int => return p + 1 }
`
	_, sink, _ := checkSource(t, src)
	requireCode(t, sink, diagnostics.CodePointerArithForbidden)
}

// TestPointerEqualityAllowed confirms §4.7.7: pointer-to-pointer and
// pointer-to-nil equality comparisons are legal.
func TestPointerEqualityAllowed(t *testing.T) {
	src := `
type Checker = native fn(p: *int): bool
fn f(): void => { var h: Checker = fn(p: *int): bool => return p == nil }
`
	_, sink, _ := checkSource(t, src)
	requireNoCheckErrors(t, sink)
}
