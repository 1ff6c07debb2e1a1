package analyzer

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/symbols"
	"github.com/sindarin-lang/sindarin/internal/types"
)

var primitiveByName = map[string]types.Type{
	"int": types.Int, "long": types.Long, "double": types.Double,
	"float": types.Float, "char": types.Char, "bool": types.Bool,
	"byte": types.Byte, "string": types.String, "void": types.Void,
	"any": types.Any, "int32": types.Int32, "uint": types.Uint,
	"uint32": types.Uint32, "nil": types.Nil,
}

// resolveTypeExpr converts a parsed ast.TypeExpr into a types.Type. A
// *ast.PointerTypeExpr is only legal when the walker is currently inside a
// native function body or an `as val` operand (§4.7.7); elsewhere it is
// rejected with CodePointerOutsideNative rather than silently resolved,
// since the arena-affinity rules downstream assume that invariant already
// holds by the time a Pointer type reaches them.
func (w *Walker) resolveTypeExpr(te ast.TypeExpr) types.Type {
	if te == nil {
		return nil
	}
	switch t := te.(type) {
	case *ast.PrimitiveTypeExpr:
		if pt, ok := primitiveByName[t.Name]; ok {
			return pt
		}
		w.sink.ErrorAt(diagnostics.CodeTypeMismatch, t.GetToken(), "unknown primitive type '%s'", t.Name)
		return nil
	case *ast.ArrayTypeExpr:
		elem := w.resolveTypeExpr(t.Elem)
		if elem == nil {
			return nil
		}
		return types.Array{Elem: elem}
	case *ast.FunctionTypeExpr:
		if t.IsNative {
			// A native callback type's own parameter/return positions are
			// themselves native context, even resolved at module scope
			// (spec.md §4.7.7): `*int` is legal inside `native fn(a: *int)`.
			w.scope.EnterNative()
			defer w.scope.ExitNative()
		}
		params := make([]types.Type, 0, len(t.Params))
		for _, p := range t.Params {
			pt := w.resolveTypeExpr(p)
			if pt == nil {
				return nil
			}
			params = append(params, pt)
		}
		ret := w.resolveTypeExpr(t.Return)
		fn := types.Function{Return: ret, Params: params, IsVariadic: t.IsVariadic, IsNative: t.IsNative}
		if t.IsNative {
			if ret != nil && !types.IsCCompatible(ret) {
				w.sink.ErrorAt(diagnostics.CodeNativeCallbackNonCompat, t.GetToken(),
					"native callback return type '%s' is not C-compatible", ret.String())
				return nil
			}
			for i, pt := range params {
				if !types.IsCCompatible(pt) {
					w.sink.ErrorAt(diagnostics.CodeNativeCallbackNonCompat, t.Params[i].GetToken(),
						"native callback parameter %d type '%s' is not C-compatible", i+1, pt.String())
					return nil
				}
			}
		}
		return fn
	case *ast.PointerTypeExpr:
		base := w.resolveTypeExpr(t.Base)
		if base == nil {
			return nil
		}
		if !w.scope.InNative() && !w.scope.InAsVal() {
			w.sink.ErrorAt(diagnostics.CodePointerOutsideNative, t.GetToken(),
				"pointer type '*%s' is only legal inside a native function or an 'as val' operand", base.String())
			return nil
		}
		return types.Pointer{Base: base}
	case *ast.NamedTypeExpr:
		if sym, ok := w.scope.Lookup(t.Name); ok && sym.Kind == symbols.TypeSymbol {
			return sym.Type
		}
		suggestion := diagnostics.SuggestionFor(t.Name, w.scope.AllVisibleNames())
		if suggestion != "" {
			w.sink.ErrorWithSuggestion(diagnostics.CodeUndefinedSymbol, t.GetToken(), suggestion,
				"undefined type '%s'", t.Name)
		} else {
			w.sink.ErrorAt(diagnostics.CodeUndefinedSymbol, t.GetToken(), "undefined type '%s'", t.Name)
		}
		return nil
	default:
		return nil
	}
}

// checkNoStrayPointer reports CodePointerOutsideNative when t is a pointer
// type reaching an expression position that is not a native function body,
// an `as val` operand, or (per §4.7.7's "inline argument positions"
// allowance) a direct argument to a native function call — the narrower
// positions that consume or carry a pointer legally.
func (w *Walker) checkNoStrayPointer(t types.Type, n ast.Node) bool {
	if t == nil || t.Kind() != types.KPointer {
		return true
	}
	if w.scope.InNative() || w.scope.InAsVal() {
		return true
	}
	w.sink.ErrorAt(diagnostics.CodePointerOutsideNative, n.GetToken(),
		"pointer value of type '%s' must be consumed by 'as val' or stay inside a native function", t.String())
	return false
}
