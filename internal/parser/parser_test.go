package parser

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/lexer"
)

func parseModule(t *testing.T, src string) (*ast.Module, *diagnostics.Sink) {
	t.Helper()
	sink := diagnostics.NewSink()
	l := lexer.New(src, "test.sn")
	p := New(l, sink, "test.sn")
	mod := p.ParseProgram()
	return mod, sink
}

func requireNoErrors(t *testing.T, sink *diagnostics.Sink) {
	t.Helper()
	if sink.HadError() {
		for _, d := range sink.Diagnostics() {
			t.Logf("diagnostic: %s", d.String())
		}
		t.Fatalf("expected no parse errors")
	}
}

func TestParseVarDeclWithTypeAndValue(t *testing.T) {
	mod, sink := parseModule(t, "var x: int = 1 + 2")
	requireNoErrors(t, sink)
	if len(mod.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(mod.Statements))
	}
	decl, ok := mod.Statements[0].(*ast.VarDeclStatement)
	if !ok {
		t.Fatalf("expected *ast.VarDeclStatement, got %T", mod.Statements[0])
	}
	if decl.Name != "x" {
		t.Errorf("expected name x, got %s", decl.Name)
	}
	if _, ok := decl.TypeExpr.(*ast.PrimitiveTypeExpr); !ok {
		t.Errorf("expected PrimitiveTypeExpr, got %T", decl.TypeExpr)
	}
	if _, ok := decl.Value.(*ast.BinaryExpr); !ok {
		t.Errorf("expected BinaryExpr initializer, got %T", decl.Value)
	}
}

// TestSingleLineLambdaParse mirrors spec.md §8 boundary scenario 1.
func TestSingleLineLambdaParse(t *testing.T) {
	mod, sink := parseModule(t, "var f: fn(int): int = fn(x: int): int => x * 2")
	requireNoErrors(t, sink)
	decl := mod.Statements[0].(*ast.VarDeclStatement)
	lam, ok := decl.Value.(*ast.LambdaExpr)
	if !ok {
		t.Fatalf("expected *ast.LambdaExpr, got %T", decl.Value)
	}
	if len(lam.Params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(lam.Params))
	}
	if lam.ExprBody == nil {
		t.Fatal("expected an expression body")
	}
	if _, ok := lam.ExprBody.(*ast.BinaryExpr); !ok {
		t.Errorf("expected binary expression body, got %T", lam.ExprBody)
	}
}

func TestFunctionDeclWithExpressionBody(t *testing.T) {
	mod, sink := parseModule(t, "private fn pure_add(a: int, b: int): int => a + b")
	requireNoErrors(t, sink)
	fn, ok := mod.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("expected *ast.FunctionStatement, got %T", mod.Statements[0])
	}
	if fn.Modifier != ast.ModPrivate {
		t.Errorf("expected ModPrivate, got %v", fn.Modifier)
	}
	if fn.ExprBody == nil {
		t.Fatal("expected an expression body")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
}

func TestFunctionDeclWithStatementBody(t *testing.T) {
	mod, sink := parseModule(t, "fn abs(x: int): int =>\n    if x < 0 => return 0 - x\n    return x")
	requireNoErrors(t, sink)
	fn, ok := mod.Statements[0].(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("expected *ast.FunctionStatement, got %T", mod.Statements[0])
	}
	if len(fn.Body) != 2 {
		t.Fatalf("expected 2 statements in body, got %d", len(fn.Body))
	}
	ifStmt, ok := fn.Body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", fn.Body[0])
	}
	if len(ifStmt.Then) != 1 {
		t.Fatalf("expected 1 then-statement, got %d", len(ifStmt.Then))
	}
	if _, ok := fn.Body[1].(*ast.ReturnStatement); !ok {
		t.Fatalf("expected trailing return, got %T", fn.Body[1])
	}
}

func TestNativeFunctionDeclHasNoBody(t *testing.T) {
	mod, sink := parseModule(t, `native fn fopen(path: string, mode: string): *int`)
	requireNoErrors(t, sink)
	fn := mod.Statements[0].(*ast.FunctionStatement)
	if !fn.IsNative {
		t.Error("expected IsNative true")
	}
	if fn.Body != nil || fn.ExprBody != nil {
		t.Error("expected native fn to have no body")
	}
	if _, ok := fn.ReturnType.(*ast.PointerTypeExpr); !ok {
		t.Errorf("expected PointerTypeExpr return type, got %T", fn.ReturnType)
	}
}

func TestOpaqueTypeDecl(t *testing.T) {
	mod, sink := parseModule(t, "type FILE = opaque")
	requireNoErrors(t, sink)
	td := mod.Statements[0].(*ast.TypeDeclStatement)
	if td.Name != "FILE" || !td.IsOpaque {
		t.Errorf("got %+v", td)
	}
}

func TestNativeFunctionTypeAlias(t *testing.T) {
	mod, sink := parseModule(t, "type Comparator = native fn(a: *int, b: *int): int")
	requireNoErrors(t, sink)
	td := mod.Statements[0].(*ast.TypeDeclStatement)
	ft, ok := td.Underlying.(*ast.FunctionTypeExpr)
	if !ok {
		t.Fatalf("expected FunctionTypeExpr, got %T", td.Underlying)
	}
	if len(ft.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(ft.Params))
	}
}

func TestArrayLiteralAndIndex(t *testing.T) {
	mod, sink := parseModule(t, "var y: int[] = {1, 2, 3}")
	requireNoErrors(t, sink)
	decl := mod.Statements[0].(*ast.VarDeclStatement)
	if _, ok := decl.TypeExpr.(*ast.ArrayTypeExpr); !ok {
		t.Errorf("expected ArrayTypeExpr, got %T", decl.TypeExpr)
	}
	arr, ok := decl.Value.(*ast.ArrayLiteralExpr)
	if !ok {
		t.Fatalf("expected ArrayLiteralExpr, got %T", decl.Value)
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
}

func TestSliceWithPointerAsVal(t *testing.T) {
	mod, sink := parseModule(t, "var data: byte[] = get_buffer()[0..len] as val")
	requireNoErrors(t, sink)
	decl := mod.Statements[0].(*ast.VarDeclStatement)
	if decl.MemQual != ast.MemAsVal {
		t.Fatalf("expected MemAsVal, got %v", decl.MemQual)
	}
	sl, ok := decl.Value.(*ast.SliceExpr)
	if !ok {
		t.Fatalf("expected SliceExpr operand, got %T", decl.Value)
	}
	if sl.Start == nil || sl.End == nil {
		t.Errorf("expected both slice bounds set, got %+v", sl)
	}
}

func TestForLoopCStyle(t *testing.T) {
	mod, sink := parseModule(t, "for var i: int = 0; i < 10; i++ => result.push(i)")
	requireNoErrors(t, sink)
	forStmt, ok := mod.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", mod.Statements[0])
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Post == nil {
		t.Fatalf("expected all three for-clauses set, got %+v", forStmt)
	}
	if len(forStmt.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(forStmt.Body))
	}
}

func TestForEachLoop(t *testing.T) {
	mod, sink := parseModule(t, "for var item in items => print(item)")
	requireNoErrors(t, sink)
	fe, ok := mod.Statements[0].(*ast.ForEachStatement)
	if !ok {
		t.Fatalf("expected *ast.ForEachStatement, got %T", mod.Statements[0])
	}
	if fe.VarName != "item" {
		t.Errorf("expected VarName item, got %s", fe.VarName)
	}
}

func TestIfElseIfChain(t *testing.T) {
	mod, sink := parseModule(t, "if a => x = 1\nelse if b => x = 2\nelse => x = 3")
	requireNoErrors(t, sink)
	ifStmt := mod.Statements[0].(*ast.IfStatement)
	if len(ifStmt.Else) != 1 {
		t.Fatalf("expected 1 statement in else (an else-if), got %d", len(ifStmt.Else))
	}
	nested, ok := ifStmt.Else[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected nested *ast.IfStatement, got %T", ifStmt.Else[0])
	}
	if len(nested.Else) != 1 {
		t.Fatalf("expected final else branch, got %d statements", len(nested.Else))
	}
}

func TestRegionBlock(t *testing.T) {
	mod, sink := parseModule(t, "private => {\n    var x: int = 1\n}")
	requireNoErrors(t, sink)
	blk, ok := mod.Statements[0].(*ast.BlockStatement)
	if !ok {
		t.Fatalf("expected *ast.BlockStatement, got %T", mod.Statements[0])
	}
	if blk.Modifier != ast.ModPrivate {
		t.Errorf("expected ModPrivate, got %v", blk.Modifier)
	}
	if len(blk.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(blk.Statements))
	}
}

func TestImportWithAlias(t *testing.T) {
	mod, sink := parseModule(t, `import "math/rand" as rnd`)
	requireNoErrors(t, sink)
	imp := mod.Statements[0].(*ast.ImportStatement)
	if imp.Path != "math/rand" || imp.Alias != "rnd" {
		t.Errorf("got %+v", imp)
	}
}

func TestInterpolatedStringExpression(t *testing.T) {
	mod, sink := parseModule(t, `var s: string = "x = ${x}!"`)
	requireNoErrors(t, sink)
	decl := mod.Statements[0].(*ast.VarDeclStatement)
	interp, ok := decl.Value.(*ast.InterpStringExpr)
	if !ok {
		t.Fatalf("expected InterpStringExpr, got %T", decl.Value)
	}
	if len(interp.Parts) != 3 {
		t.Fatalf("expected 3 parts (prefix, ident, suffix), got %d", len(interp.Parts))
	}
	if _, ok := interp.Parts[1].(*ast.Identifier); !ok {
		t.Errorf("expected middle part to be an Identifier, got %T", interp.Parts[1])
	}
}

func TestNativeLambdaCaptureExampleParses(t *testing.T) {
	// spec.md §8 boundary scenario 6: parses fine; capture detection is a
	// checker concern, not a parser one.
	src := "native fn setup(): void =>\n" +
		"    var n: int = 0\n" +
		"    var h: Callback = fn(d: *void): void => n = n + 1\n"
	mod, sink := parseModule(t, src)
	requireNoErrors(t, sink)
	fn := mod.Statements[0].(*ast.FunctionStatement)
	if fn.Body != nil {
		t.Fatalf("native fn should have no body even with indentation, got %+v", fn.Body)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	mod, sink := parseModule(t, "a = b = c")
	requireNoErrors(t, sink)
	top := mod.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.AssignExpr)
	if _, ok := top.Value.(*ast.AssignExpr); !ok {
		t.Fatalf("expected nested AssignExpr on the right, got %T", top.Value)
	}
}

func TestParseErrorRecoversToNextStatement(t *testing.T) {
	mod, sink := parseModule(t, "var x: int = )\nvar y: int = 2")
	if !sink.HadError() {
		t.Fatal("expected a parse error")
	}
	var y *ast.VarDeclStatement
	for _, s := range mod.Statements {
		if d, ok := s.(*ast.VarDeclStatement); ok && d.Name == "y" {
			y = d
		}
	}
	if y == nil {
		t.Fatal("expected recovery to still parse the second declaration")
	}
}

func TestRecursionDepthGuard(t *testing.T) {
	src := "var x: int = "
	for i := 0; i < MaxRecursionDepth+10; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < MaxRecursionDepth+10; i++ {
		src += ")"
	}
	sink := diagnostics.NewSink()
	l := lexer.New(src, "test.sn")
	p := New(l, sink, "test.sn")
	_ = p.ParseProgram()
	if !sink.HadError() {
		t.Fatal("expected a recursion-depth diagnostic")
	}
}
