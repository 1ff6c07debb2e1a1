package analyzer

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/symbols"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// define registers sym in the current scope, reporting CodeRedeclaredSymbol
// if the name is already bound in that exact scope (shadowing an outer
// binding is fine, §4.7.2).
func (w *Walker) define(sym symbols.Symbol) {
	if _, redeclared := w.scope.Define(sym); redeclared {
		w.sink.ErrorAt(diagnostics.CodeRedeclaredSymbol, sym.Token, "'%s' is already declared in this scope", sym.Name)
	}
}

func (w *Walker) VisitExpressionStatement(e *ast.ExpressionStatement) {
	t := w.typeOf(e.Expr)
	w.checkNoStrayPointer(t, e.Expr)
}

// VisitVarDeclStatement implements §4.7.2's variable-declaration rule:
// when a declared type is present, a lambda assigned to a native-callback
// type is marked native before it is visited, and an
// empty-array-literal or byte-valued int-literal array narrows to the
// declared element type; with no declared type an empty array literal has
// nothing to narrow to (CodeEmptyInitializerNoType).
func (w *Walker) VisitVarDeclStatement(d *ast.VarDeclStatement) {
	var declaredType types.Type
	if d.TypeExpr != nil {
		declaredType = w.resolveTypeExpr(d.TypeExpr)
	}

	if declaredType != nil {
		if fn, ok := declaredType.(types.Function); ok && fn.IsNative {
			if lam, ok := d.Value.(*ast.LambdaExpr); ok {
				lam.IsNative = true
			}
		}
	}

	// A trailing `as val` whose operand is a pointer or a pointer slice is
	// the §4.7.5 pointer-unwrap bridge rather than a declaration qualifier:
	// the parser unwrapped it into MemQual, so the AsValExpr node is put
	// back here and checked by VisitAsValExpr.
	if d.MemQual == types.MemAsVal && d.Value != nil {
		w.scope.EnterAsVal()
		opType := w.typeOf(d.Value)
		w.scope.ExitAsVal()
		sl, isSlice := d.Value.(*ast.SliceExpr)
		if opType != nil && (opType.Kind() == types.KPointer || (isSlice && sl.IsFromPointer)) {
			d.Value = &ast.AsValExpr{ExprBase: ast.ExprBase{Token: d.GetToken()}, Operand: d.Value}
			d.MemQual = types.MemNone
		}
	}

	valueType := w.typeOf(d.Value)
	if valueType == nil {
		return
	}
	if !w.checkNoStrayPointer(valueType, d.Value) {
		return
	}

	finalType := valueType
	if declaredType != nil {
		if arr, ok := declaredType.(types.Array); ok {
			if varr, ok2 := valueType.(types.Array); ok2 {
				narrowByteArrayLiteral(d.Value, arr, varr)
				valueType = d.Value.ResolvedType()
			}
		}
		if !types.Equals(declaredType, valueType) {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, d.GetToken(),
				"cannot initialize '%s' of type '%s' with value of type '%s'", d.Name, declaredType.String(), valueType.String())
			return
		}
		finalType = declaredType
	} else if arr, ok := valueType.(types.Array); ok && arr.IsEmptyLiteralType() {
		w.sink.ErrorAt(diagnostics.CodeEmptyInitializerNoType, d.GetToken(),
			"cannot infer the element type of an empty array literal without a declared type")
		return
	}

	w.checkNoStrayPointer(finalType, d.Value)
	if d.MemQual == types.MemAsVal && finalType != nil && !types.IsReference(finalType) {
		w.sink.WarnAt(diagnostics.CodeAsValOnNonPointer, d.GetToken(),
			"'as val' on '%s' has no effect; '%s' is already a primitive", d.Name, finalType.String())
	}
	w.define(symbols.Symbol{Name: d.Name, Type: finalType, Kind: symbols.VarSymbol, Token: d.GetToken()})
}

// narrowByteArrayLiteral rewrites an int-literal array literal's element
// types to byte when the declared array type calls for byte(T) elements
// (§4.7.2's byte-array narrowing).
func narrowByteArrayLiteral(value ast.Expression, declared, actual types.Array) {
	if declared.Elem == nil || declared.Elem.Kind() != types.KByte {
		return
	}
	if actual.Elem == nil || actual.Elem.Kind() != types.KInt {
		return
	}
	lit, ok := value.(*ast.ArrayLiteralExpr)
	if !ok {
		return
	}
	for _, el := range lit.Elements {
		if _, ok := el.(*ast.IntLiteral); !ok {
			return
		}
	}
	for _, el := range lit.Elements {
		el.SetResolvedType(types.Byte)
	}
	lit.SetResolvedType(types.Array{Elem: types.Byte})
}

// VisitFunctionStatement implements §4.7.2's function-declaration rule,
// including shared promotion (§4.7.2/§4.7.4): a function whose return type
// is reference-kind and whose declared modifier isn't private becomes
// effectively shared, recorded on the symbol rather than the AST node.
func (w *Walker) VisitFunctionStatement(f *ast.FunctionStatement) {
	if f.IsNative {
		w.scope.EnterNative()
	}
	paramTypes := make([]types.Type, len(f.Params))
	memQuals := make([]types.MemQual, len(f.Params))
	ok := true
	for i, p := range f.Params {
		pt := w.resolveTypeExpr(p.TypeExpr)
		if pt == nil {
			ok = false
			continue
		}
		paramTypes[i] = pt
		memQuals[i] = p.MemQual
		if p.MemQual == types.MemAsRef && !f.IsNative {
			w.sink.ErrorAt(diagnostics.CodeAsRefOnParam, p.Token,
				"'as ref' is only valid on a native function's parameter")
		}
	}
	var retType types.Type = types.Void
	if f.ReturnType != nil {
		retType = w.resolveTypeExpr(f.ReturnType)
		if retType == nil {
			ok = false
		}
	}
	if f.IsNative {
		w.scope.ExitNative()
	}
	if !ok {
		return
	}

	fn := types.Function{Return: retType, Params: paramTypes, ParamMemQuals: memQuals, IsNative: f.IsNative, IsVariadic: f.IsVariadic}

	effModifier := f.Modifier
	if effModifier != ast.ModPrivate && types.IsReference(retType) {
		effModifier = ast.ModShared
	}
	w.define(symbols.Symbol{Name: f.Name, Type: fn, Kind: symbols.FuncSymbol, Modifier: effModifier, Token: f.GetToken()})

	if f.IsNative {
		return // no body to check (§4.4: native declarations carry no body).
	}

	savedScope := w.scope
	savedReturn, savedMod := w.currentReturn, w.currentModifier
	w.scope = w.newTable(savedScope)
	for i, p := range f.Params {
		w.scope.Define(symbols.Symbol{Name: p.Name, Type: paramTypes[i], Kind: symbols.ParamSymbol, MemQual: p.MemQual, Token: p.Token})
	}
	w.currentReturn = retType
	w.currentModifier = f.Modifier

	if f.Modifier == ast.ModPrivate {
		w.scope.EnterPrivate()
	}
	if f.ExprBody != nil {
		bodyType := w.typeOf(f.ExprBody)
		if bodyType != nil && !types.Equals(bodyType, retType) {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, f.ExprBody.GetToken(),
				"function '%s' body type '%s' does not match declared return type '%s'", f.Name, bodyType.String(), retType.String())
		}
		if f.Modifier == ast.ModPrivate && bodyType != nil && !types.CanEscapePrivate(bodyType) {
			w.sink.ErrorAt(diagnostics.CodePrivateEscape, f.ExprBody.GetToken(),
				"value of type '%s' cannot escape a private function's region", bodyType.String())
		}
	} else {
		for _, stmt := range f.Body {
			stmt.Accept(w)
		}
	}
	if f.Modifier == ast.ModPrivate {
		w.scope.ExitPrivate()
	}

	w.scope = savedScope
	w.currentReturn, w.currentModifier = savedReturn, savedMod
}

// VisitReturnStatement implements §4.7.2's return rule and §4.7.4's
// private-escape rule for returned values.
func (w *Walker) VisitReturnStatement(r *ast.ReturnStatement) {
	var valueType types.Type = types.Void
	if r.Value != nil {
		valueType = w.typeOf(r.Value)
		if valueType == nil {
			return
		}
	}
	if w.currentReturn != nil && !types.Equals(valueType, w.currentReturn) {
		w.sink.ErrorAt(diagnostics.CodeTypeMismatch, r.GetToken(),
			"returned type '%s' does not match declared return type '%s'", valueType.String(), w.currentReturn.String())
	}
	if w.scope.InPrivate() && !types.CanEscapePrivate(valueType) {
		w.sink.ErrorAt(diagnostics.CodePrivateEscape, r.GetToken(),
			"value of type '%s' cannot escape a private region", valueType.String())
	}
}

// VisitBlockStatement implements §3.4/§3.7's region-qualified block: a
// `private` block pushes one level of private-region context for its
// duration (§4.7.4); `shared`/default blocks only introduce a lexical
// scope.
func (w *Walker) VisitBlockStatement(b *ast.BlockStatement) {
	if b.Modifier == ast.ModPrivate {
		w.scope.EnterPrivate()
		defer w.scope.ExitPrivate()
	}
	w.pushScope()
	defer w.popScope()
	for _, stmt := range b.Statements {
		stmt.Accept(w)
	}
}

func (w *Walker) checkBoolCond(cond ast.Expression) {
	t := w.typeOf(cond)
	if t != nil && t.Kind() != types.KBool {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, cond.GetToken(), "condition must be bool, got '%s'", t.String())
	}
}

func (w *Walker) VisitIfStatement(i *ast.IfStatement) {
	w.checkBoolCond(i.Cond)
	w.pushScope()
	for _, stmt := range i.Then {
		stmt.Accept(w)
	}
	w.popScope()
	if i.Else != nil {
		w.pushScope()
		for _, stmt := range i.Else {
			stmt.Accept(w)
		}
		w.popScope()
	}
}

// VisitWhileStatement implements §4.7.4's non-shared loop region: unless
// marked `shared`, each pass through Body opens its own private arena
// context, so a reference produced in one iteration can't escape into the
// next.
func (w *Walker) VisitWhileStatement(ws *ast.WhileStatement) {
	w.checkBoolCond(ws.Cond)
	w.loopDepth++
	w.pushScope()
	if !ws.IsShared {
		w.scope.EnterPrivate()
	}
	for _, stmt := range ws.Body {
		stmt.Accept(w)
	}
	if !ws.IsShared {
		w.scope.ExitPrivate()
	}
	w.popScope()
	w.loopDepth--
}

// VisitForStatement implements §4.7.4's non-shared loop region for the
// C-style for loop: Init/Cond/Post live in the loop's own scope, but only
// Body is re-entered every iteration, so only Body is wrapped in the
// per-iteration private region.
func (w *Walker) VisitForStatement(f *ast.ForStatement) {
	w.pushScope()
	if f.Init != nil {
		f.Init.Accept(w)
	}
	if f.Cond != nil {
		w.checkBoolCond(f.Cond)
	}
	w.loopDepth++
	w.pushScope()
	if !f.IsShared {
		w.scope.EnterPrivate()
	}
	for _, stmt := range f.Body {
		stmt.Accept(w)
	}
	if !f.IsShared {
		w.scope.ExitPrivate()
	}
	w.popScope()
	if f.Post != nil {
		f.Post.Accept(w)
	}
	w.loopDepth--
	w.popScope()
}

// VisitForEachStatement implements §4.7.4's "loop region": unless marked
// `shared`, each iteration's bound variable lives in a fresh private
// region, so a captured reference to it must not escape past one
// iteration.
func (w *Walker) VisitForEachStatement(f *ast.ForEachStatement) {
	iterableType := w.typeOf(f.Iterable)
	if iterableType == nil {
		return
	}
	arr, ok := iterableType.(types.Array)
	if !ok {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, f.Iterable.GetToken(),
			"for-each requires an array, got '%s'", iterableType.String())
		return
	}

	w.loopDepth++
	w.pushScope()
	w.scope.Define(symbols.Symbol{Name: f.VarName, Type: arr.Elem, Kind: symbols.VarSymbol, Token: f.GetToken()})
	if !f.IsShared {
		w.scope.EnterPrivate()
	}
	for _, stmt := range f.Body {
		stmt.Accept(w)
	}
	if !f.IsShared {
		w.scope.ExitPrivate()
	}
	w.popScope()
	w.loopDepth--
}

func (w *Walker) VisitBreakStatement(b *ast.BreakStatement) {
	if w.loopDepth == 0 {
		w.sink.ErrorAt(diagnostics.CodeBreakOutsideLoop, b.GetToken(), "'break' outside a loop")
	}
}

func (w *Walker) VisitContinueStatement(c *ast.ContinueStatement) {
	if w.loopDepth == 0 {
		w.sink.ErrorAt(diagnostics.CodeContinueOutsideLoop, c.GetToken(), "'continue' outside a loop")
	}
}

// VisitImportStatement is a no-op here: resolving an imported module's
// exported signatures is C8's job (internal/modules, §4.7.10), which runs
// as the pipeline stage immediately before this checker and seeds them
// into the outer scope NewWalker was constructed with — by the time this
// checker sees the import statement, the names it introduces are already
// visible through the ordinary scope chain.
func (w *Walker) VisitImportStatement(i *ast.ImportStatement) {}

// VisitTypeDeclStatement implements §4.4's type-declaration rule: an
// opaque type introduces a new nominal handle type with no visible
// structure; a transparent alias resolves its underlying type expression.
func (w *Walker) VisitTypeDeclStatement(t *ast.TypeDeclStatement) {
	var typ types.Type
	if t.IsOpaque {
		typ = types.Opaque{Name: t.Name}
	} else {
		typ = w.resolveTypeExpr(t.Underlying)
		if typ == nil {
			return
		}
	}
	w.define(symbols.Symbol{Name: t.Name, Type: typ, Kind: symbols.TypeSymbol, Token: t.GetToken()})
}
