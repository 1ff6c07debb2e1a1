package analyzer

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/symbols"
	"github.com/sindarin-lang/sindarin/internal/token"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// --- Literals: each carries its own type (§4.7.1). ---

func (w *Walker) VisitIntLiteral(l *ast.IntLiteral)       { w.set(l, types.Int) }
func (w *Walker) VisitLongLiteral(l *ast.LongLiteral)     { w.set(l, types.Long) }
func (w *Walker) VisitDoubleLiteral(l *ast.DoubleLiteral) { w.set(l, types.Double) }
func (w *Walker) VisitFloatLiteral(l *ast.FloatLiteral)   { w.set(l, types.Float) }
func (w *Walker) VisitCharLiteral(l *ast.CharLiteral)     { w.set(l, types.Char) }
func (w *Walker) VisitBoolLiteral(l *ast.BoolLiteral)     { w.set(l, types.Bool) }
func (w *Walker) VisitByteLiteral(l *ast.ByteLiteral)     { w.set(l, types.Byte) }
func (w *Walker) VisitStringLiteral(l *ast.StringLiteral) { w.set(l, types.String) }
func (w *Walker) VisitNilLiteral(l *ast.NilLiteral)       { w.set(l, types.Nil) }

// VisitIdentifier resolves a variable/parameter/function reference
// (§4.7.1 "variable"). Inside a native lambda body, a name that fails to
// resolve in the lambda's own (deliberately disconnected) scope but would
// have resolved in the enclosing scope it was cut from is a capture
// (§4.7.8), reported as CodeNativeLambdaCapture rather than
// CodeUndefinedSymbol.
func (w *Walker) VisitIdentifier(id *ast.Identifier) {
	sym, ok := w.scope.Lookup(id.Name)
	if !ok {
		if w.capturedScope != nil {
			if _, wouldCapture := w.capturedScope.Lookup(id.Name); wouldCapture {
				w.sink.ErrorAt(diagnostics.CodeNativeLambdaCapture, id.GetToken(),
					"native lambda body may not reference '%s' from an enclosing scope", id.Name)
				return
			}
		}
		suggestion := diagnostics.SuggestionFor(id.Name, w.scope.AllVisibleNames())
		if suggestion != "" {
			w.sink.ErrorWithSuggestion(diagnostics.CodeUndefinedSymbol, id.GetToken(), suggestion,
				"undefined symbol '%s'", id.Name)
		} else {
			w.sink.ErrorAt(diagnostics.CodeUndefinedSymbol, id.GetToken(), "undefined symbol '%s'", id.Name)
		}
		return
	}
	if sym.Kind == symbols.TypeSymbol {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, id.GetToken(), "'%s' names a type, not a value", id.Name)
		return
	}
	w.set(id, sym.Type)
}

// VisitBinaryExpr implements §4.7.1's binary typing rules.
func (w *Walker) VisitBinaryExpr(b *ast.BinaryExpr) {
	lt := w.typeOf(b.Left)
	rt := w.typeOf(b.Right)
	if lt == nil || rt == nil {
		return
	}
	switch b.Op {
	case token.PLUS:
		if lt.Kind() == types.KPointer || rt.Kind() == types.KPointer {
			w.sink.ErrorAt(diagnostics.CodePointerArithForbidden, b.GetToken(), "pointer arithmetic is forbidden")
			return
		}
		if types.IsNumeric(lt) && types.IsNumeric(rt) && types.Equals(lt, rt) {
			w.set(b, lt)
			return
		}
		if lt.Kind() == types.KString && types.IsPrintable(rt) {
			w.set(b, types.String)
			return
		}
		if types.IsPrintable(lt) && rt.Kind() == types.KString {
			w.set(b, types.String)
			return
		}
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, b.GetToken(),
			"'+' requires numeric-equal operands or a string/printable combination, got '%s' and '%s'",
			lt.String(), rt.String())

	case token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT:
		if lt.Kind() == types.KPointer || rt.Kind() == types.KPointer {
			w.sink.ErrorAt(diagnostics.CodePointerArithForbidden, b.GetToken(), "pointer arithmetic is forbidden")
			return
		}
		if !types.IsNumeric(lt) || !types.IsNumeric(rt) || !types.Equals(lt, rt) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, b.GetToken(),
				"binary operator requires numeric-equal operands, got '%s' and '%s'", lt.String(), rt.String())
			return
		}
		w.set(b, lt)

	case token.EQ, token.NOT_EQ:
		if lt.Kind() == types.KPointer && rt.Kind() == types.KPointer {
			w.set(b, types.Bool)
			return
		}
		if (lt.Kind() == types.KPointer && rt.Kind() == types.KNil) ||
			(lt.Kind() == types.KNil && rt.Kind() == types.KPointer) {
			w.set(b, types.Bool)
			return
		}
		if !types.Equals(lt, rt) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, b.GetToken(),
				"comparison requires equal operand types, got '%s' and '%s'", lt.String(), rt.String())
			return
		}
		w.set(b, types.Bool)

	case token.LT, token.GT, token.LTE, token.GTE:
		if lt.Kind() == types.KPointer || rt.Kind() == types.KPointer {
			w.sink.ErrorAt(diagnostics.CodePointerArithForbidden, b.GetToken(), "pointer ordering comparisons are forbidden")
			return
		}
		if !types.Equals(lt, rt) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, b.GetToken(),
				"comparison requires equal operand types, got '%s' and '%s'", lt.String(), rt.String())
			return
		}
		w.set(b, types.Bool)

	case token.AND, token.OR:
		if lt.Kind() != types.KBool || rt.Kind() != types.KBool {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, b.GetToken(), "logical operator requires bool operands")
			return
		}
		w.set(b, types.Bool)

	default:
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, b.GetToken(), "unsupported binary operator")
	}
}

// VisitUnaryExpr implements §4.7.1's unary typing rules.
func (w *Walker) VisitUnaryExpr(u *ast.UnaryExpr) {
	t := w.typeOf(u.Operand)
	if t == nil {
		return
	}
	switch u.Op {
	case token.MINUS:
		if !types.IsNumeric(t) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, u.GetToken(), "unary '-' requires a numeric operand, got '%s'", t.String())
			return
		}
		w.set(u, t)
	case token.BANG:
		if t.Kind() != types.KBool {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, u.GetToken(), "unary '!' requires a bool operand, got '%s'", t.String())
			return
		}
		w.set(u, types.Bool)
	default:
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, u.GetToken(), "unsupported unary operator")
	}
}

// VisitIncDecExpr implements §4.7.1's increment/decrement rule.
func (w *Walker) VisitIncDecExpr(i *ast.IncDecExpr) {
	t := w.typeOf(i.Operand)
	if t == nil {
		return
	}
	if !types.IsNumeric(t) {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, i.GetToken(), "increment/decrement requires a numeric operand, got '%s'", t.String())
		return
	}
	w.set(i, t)
}

// VisitAssignExpr implements §4.7.1's assign rule: value type must equal
// the target's type (numeric-equal for compound forms).
func (w *Walker) VisitAssignExpr(a *ast.AssignExpr) {
	targetType := w.typeOf(a.Target)
	valueType := w.typeOf(a.Value)
	if targetType == nil || valueType == nil {
		return
	}
	w.checkNoStrayPointer(valueType, a.Value)

	if a.Op != token.ASSIGN {
		if !types.IsNumeric(targetType) || !types.Equals(targetType, valueType) {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, a.GetToken(),
				"compound assignment requires numeric-equal operands, got '%s' and '%s'", targetType.String(), valueType.String())
			return
		}
		w.set(a, targetType)
		return
	}

	if !types.Equals(targetType, valueType) {
		w.sink.ErrorAt(diagnostics.CodeTypeMismatch, a.GetToken(),
			"cannot assign '%s' to '%s'", valueType.String(), targetType.String())
		return
	}
	w.set(a, targetType)
}

// VisitCallExpr implements §4.7.1's call rule, routing built-in callee
// names to builtinCallType before falling back to ordinary callee typing.
// A user declaration named the same as a builtin shadows it.
func (w *Walker) VisitCallExpr(c *ast.CallExpr) {
	if id, ok := c.Callee.(*ast.Identifier); ok && isBuiltinCallName(id.Name) {
		if _, shadowed := w.scope.Lookup(id.Name); !shadowed {
			w.visitBuiltinCall(c, id.Name)
			return
		}
	}

	calleeType := w.typeOf(c.Callee)
	if calleeType == nil {
		for _, a := range c.Args {
			w.typeOf(a)
		}
		return
	}
	fn, ok := calleeType.(types.Function)
	if !ok {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, c.GetToken(), "cannot call a value of type '%s'", calleeType.String())
		for _, a := range c.Args {
			w.typeOf(a)
		}
		return
	}
	w.checkCallArgs(fn, c.Args, c.GetToken())
	w.set(c, fn.Return)
}

func (w *Walker) visitBuiltinCall(c *ast.CallExpr, name string) {
	if len(c.Args) == 0 {
		w.sink.ErrorAt(diagnostics.CodeArityMismatch, c.GetToken(), "builtin '%s' expects an array argument", name)
		return
	}
	firstType := w.typeOf(c.Args[0])
	for _, a := range c.Args[1:] {
		w.typeOf(a)
	}
	if firstType == nil {
		return
	}
	arr, ok := firstType.(types.Array)
	if !ok {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, c.Args[0].GetToken(),
			"builtin '%s' expects an array, got '%s'", name, firstType.String())
		return
	}
	fn, _ := builtinCallType(arr.Elem, name)
	w.checkCallArgs(fn, c.Args, c.GetToken())
	w.set(c, fn.Return)
}

// checkCallArgs validates args against fn's declared parameters (§4.7.1's
// call rule): arity, memory qualifiers (`as ref` arguments), and
// per-parameter type compatibility, with the `any`-parameter printable
// relaxation and variadic-tail allowance.
func (w *Walker) checkCallArgs(fn types.Function, args []ast.Expression, tok token.Token) {
	min := len(fn.Params)
	if len(args) < min || (!fn.IsVariadic && len(args) > min) {
		w.sink.ErrorAt(diagnostics.CodeArityMismatch, tok, "expected %d argument(s), got %d", min, len(args))
	}

	for i, a := range args {
		if i >= len(fn.Params) {
			w.typeOf(a) // variadic extra: type unconstrained (§4.7.1).
			continue
		}
		want := fn.Params[i]

		if fn.MemQualAt(i) == types.MemAsRef {
			aref, ok := a.(*ast.AsRefExpr)
			if !ok {
				w.sink.ErrorAt(diagnostics.CodeTypeMismatch, a.GetToken(),
					"argument %d requires an 'as ref' expression", i+1)
				continue
			}
			operandType := w.typeOf(aref.Operand)
			if operandType != nil && !types.IsPrimitive(operandType) {
				w.sink.ErrorAt(diagnostics.CodeAsRefNonPrimitive, aref.GetToken(),
					"'as ref' requires a primitive operand, got '%s'", operandType.String())
			} else if operandType != nil && !types.Equals(operandType, want) {
				w.sink.ErrorAt(diagnostics.CodeTypeMismatch, a.GetToken(),
					"'as ref' argument %d: expected '%s', got '%s'", i+1, want.String(), operandType.String())
			}
			w.set(aref, operandType)
			continue
		}

		got := w.typeOf(a)
		if got == nil {
			continue
		}
		if want.Kind() != types.KPointer {
			w.checkNoStrayPointer(got, a)
		}
		if want.Kind() == types.KAny {
			if !types.IsPrintable(got) {
				w.sink.ErrorAt(diagnostics.CodeTypeMismatch, a.GetToken(),
					"argument %d: expected a printable value, got '%s'", i+1, got.String())
			}
			continue
		}
		if !types.Equals(got, want) {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, a.GetToken(),
				"argument %d: expected '%s', got '%s'", i+1, want.String(), got.String())
		}
	}
}

// VisitStaticCallExpr handles `Type.method(args...)`; the parser never
// constructs this node (Type.method and value.method parse identically as
// MemberExpr+CallExpr, see DESIGN.md), and no type declares a static
// method, so reaching here would mean a grammar change started emitting
// it without a matching semantic rule.
func (w *Walker) VisitStaticCallExpr(s *ast.StaticCallExpr) {
	w.sink.ErrorAt(diagnostics.CodeNoSuchMember, s.GetToken(), "type '%s' has no static member '%s'", s.TypeName, s.Method)
}

// VisitMemberExpr implements §4.7.1's member-access rule: on arrays, the
// fixed method set maps to a built-in function type; otherwise
// CodeNoSuchMember with a spelling suggestion.
func (w *Walker) VisitMemberExpr(m *ast.MemberExpr) {
	objType := w.typeOf(m.Object)
	if objType == nil {
		return
	}
	arr, ok := objType.(types.Array)
	if !ok {
		w.sink.ErrorAt(diagnostics.CodeNoSuchMember, m.GetToken(), "type '%s' has no member '%s'", objType.String(), m.Property)
		return
	}
	fn, ok := arrayMethodType(arr.Elem, m.Property)
	if !ok {
		suggestion := diagnostics.SuggestionFor(m.Property, arrayMethodNames)
		if suggestion != "" {
			w.sink.ErrorWithSuggestion(diagnostics.CodeNoSuchMember, m.GetToken(), suggestion,
				"array has no method '%s'", m.Property)
		} else {
			w.sink.ErrorAt(diagnostics.CodeNoSuchMember, m.GetToken(), "array has no method '%s'", m.Property)
		}
		return
	}
	w.set(m, fn)
}

// VisitArrayLiteralExpr implements §4.7.1's array-literal rule.
func (w *Walker) VisitArrayLiteralExpr(a *ast.ArrayLiteralExpr) {
	if len(a.Elements) == 0 {
		w.set(a, types.Array{})
		return
	}
	first := w.typeOf(a.Elements[0])
	for _, e := range a.Elements[1:] {
		et := w.typeOf(e)
		if first != nil && et != nil && !types.Equals(first, et) {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, e.GetToken(),
				"array literal elements must share a type: '%s' vs '%s'", first.String(), et.String())
		}
	}
	if first == nil {
		return
	}
	w.set(a, types.Array{Elem: first})
}

// VisitIndexExpr implements §4.7.1's array-index rule.
func (w *Walker) VisitIndexExpr(i *ast.IndexExpr) {
	objType := w.typeOf(i.Object)
	idxType := w.typeOf(i.Index)
	if objType == nil || idxType == nil {
		return
	}
	arr, ok := objType.(types.Array)
	if !ok {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, i.GetToken(), "cannot index a value of type '%s'", objType.String())
		return
	}
	if !types.IsNumeric(idxType) {
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, i.Index.GetToken(), "array index must be numeric, got '%s'", idxType.String())
		return
	}
	w.set(i, arr.Elem)
}

// VisitSliceExpr implements §4.7.1's array-slice rule, including the
// native/as-val-gated pointer-slice bridge (§4.7.5).
func (w *Walker) VisitSliceExpr(s *ast.SliceExpr) {
	objType := w.typeOf(s.Object)
	if objType == nil {
		return
	}

	var elem types.Type
	switch ot := objType.(type) {
	case types.Array:
		elem = ot.Elem
	case types.Pointer:
		if !w.scope.InNative() && !w.scope.InAsVal() {
			w.sink.ErrorAt(diagnostics.CodePointerOutsideNative, s.GetToken(),
				"slicing a pointer is only legal inside a native function or an 'as val' operand")
			return
		}
		elem = ot.Base
		s.IsFromPointer = true
		if s.Step != nil {
			w.sink.ErrorAt(diagnostics.CodePointerSliceStep, s.Step.GetToken(), "a pointer slice may not have a step")
		}
	default:
		w.sink.ErrorAt(diagnostics.CodeInvalidOperand, s.GetToken(), "cannot slice a value of type '%s'", objType.String())
		return
	}

	checkNumericBound := func(e ast.Expression) {
		if e == nil {
			return
		}
		if t := w.typeOf(e); t != nil && !types.IsNumeric(t) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, e.GetToken(), "slice bound must be numeric, got '%s'", t.String())
		}
	}
	checkNumericBound(s.Start)
	checkNumericBound(s.End)
	if s.Step != nil && !s.IsFromPointer {
		if t := w.typeOf(s.Step); t != nil && !types.IsNumeric(t) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, s.Step.GetToken(), "slice step must be numeric, got '%s'", t.String())
		}
	}

	w.set(s, types.Array{Elem: elem})
}

// VisitInterpStringExpr implements §4.7.1's interpolated-string rule.
func (w *Walker) VisitInterpStringExpr(i *ast.InterpStringExpr) {
	for _, part := range i.Parts {
		if t := w.typeOf(part); t != nil && !types.IsPrintable(t) {
			w.sink.ErrorAt(diagnostics.CodeInvalidOperand, part.GetToken(),
				"interpolated expression must be printable, got '%s'", t.String())
		}
	}
	w.set(i, types.String)
}

// VisitAsValExpr implements §4.7.5, the pointer-unwrap bridge. While
// descending into the operand, InAsVal context is pushed so pointer-slices
// and pointer locals are legal inside it.
func (w *Walker) VisitAsValExpr(a *ast.AsValExpr) {
	w.scope.EnterAsVal()
	operandType := w.typeOf(a.Operand)
	w.scope.ExitAsVal()
	if operandType == nil {
		return
	}

	switch ot := operandType.(type) {
	case types.Pointer:
		base := ot.Base
		if base.Kind() == types.KChar {
			a.IsCStrToStr = true
			w.set(a, types.String)
			return
		}
		if !isAsValScalarBase(base) {
			w.sink.ErrorAt(diagnostics.CodeAsValOnNonPointer, a.GetToken(),
				"'as val' on pointer(%s) is not one of the supported scalar bases", base.String())
			return
		}
		w.set(a, base)
	case types.Array:
		a.IsFromNoop = true
		w.set(a, ot)
	default:
		w.sink.ErrorAt(diagnostics.CodeAsValOnNonPointer, a.GetToken(),
			"'as val' requires a pointer or array operand, got '%s'", operandType.String())
	}
}

func isAsValScalarBase(t types.Type) bool {
	switch t.Kind() {
	case types.KInt, types.KLong, types.KDouble, types.KFloat, types.KChar, types.KByte, types.KBool:
		return true
	default:
		return false
	}
}

// VisitAsRefExpr handles a bare `as ref` reached outside the single
// call-argument position that accepts it (checkCallArgs unwraps
// *ast.AsRefExpr itself and never calls Accept on it there) — any other
// arrival here is an illegal use (§4.7.6).
func (w *Walker) VisitAsRefExpr(a *ast.AsRefExpr) {
	w.sink.ErrorAt(diagnostics.CodeAsRefOnParam, a.GetToken(),
		"'as ref' is only valid as an argument to a native function's as-ref parameter")
	w.typeOf(a.Operand)
}

// VisitLambdaExpr implements §4.7.3's lambda typing and §4.7.8's
// native-lambda restrictions. Parameter and return types come only from
// the lambda's own annotations: an omitted parameter type is reported as
// an error and an omitted return type is void; nothing is taken from the
// declared variable's function type. When lam.IsNative is set (by
// VisitVarDeclStatement before recursing here), the body is
// checked in a scope disconnected from the enclosing one so any name
// resolution outside the lambda's own parameters is detectable as a
// capture.
func (w *Walker) VisitLambdaExpr(lam *ast.LambdaExpr) {
	if lam.IsNative {
		// A native lambda's own signature is native context (mirrors
		// resolveTypeExpr's handling of a *ast.FunctionTypeExpr with
		// IsNative): `*int` is legal in its param/return positions even
		// though the lambda is resolved from non-native enclosing code.
		w.scope.EnterNative()
	}
	paramTypes := make([]types.Type, len(lam.Params))
	for i, p := range lam.Params {
		if p.TypeExpr == nil {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, p.Token, "cannot infer type of parameter '%s'", p.Name)
			if lam.IsNative {
				w.scope.ExitNative()
			}
			return
		}
		pt := w.resolveTypeExpr(p.TypeExpr)
		if pt == nil {
			if lam.IsNative {
				w.scope.ExitNative()
			}
			return
		}
		paramTypes[i] = pt
	}
	retType := types.Type(types.Void)
	if lam.ReturnType != nil {
		retType = w.resolveTypeExpr(lam.ReturnType)
		if retType == nil {
			if lam.IsNative {
				w.scope.ExitNative()
			}
			return
		}
	}
	if lam.IsNative {
		w.scope.ExitNative()
	}
	fn := types.Function{Return: retType, Params: paramTypes, IsNative: lam.IsNative}

	savedScope, savedCaptured := w.scope, w.capturedScope
	savedReturn, savedMod := w.currentReturn, w.currentModifier
	if lam.IsNative {
		w.capturedScope = w.scope
		w.scope = w.newTable(nil)
		w.scope.EnterNative()
	} else {
		w.scope = w.newTable(w.scope)
	}
	for i, p := range lam.Params {
		w.scope.Define(symbols.Symbol{Name: p.Name, Type: paramTypes[i], Kind: symbols.ParamSymbol, MemQual: p.MemQual, Token: p.Token})
	}
	w.currentReturn = retType
	w.currentModifier = ast.ModDefault

	if lam.ExprBody != nil {
		bodyType := w.typeOf(lam.ExprBody)
		if bodyType != nil && !types.Equals(bodyType, retType) {
			w.sink.ErrorAt(diagnostics.CodeTypeMismatch, lam.ExprBody.GetToken(),
				"lambda body type '%s' does not match declared return type '%s'", bodyType.String(), retType.String())
		}
	} else {
		for _, stmt := range lam.BlockBody {
			stmt.Accept(w)
		}
	}

	if lam.IsNative {
		w.scope.ExitNative()
	}
	w.scope, w.capturedScope = savedScope, savedCaptured
	w.currentReturn, w.currentModifier = savedReturn, savedMod

	w.set(lam, fn)
}
