package analyzer

import (
	"github.com/sindarin-lang/sindarin/internal/config"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// arrayMethodType returns the built-in function type for a member name on
// an array(elem) receiver (spec.md §4.7.1's fixed method set
// `{length, push, pop, clear, concat, indexOf, contains, clone, join,
// reverse, insert, remove}`), matched as a closed Go switch the same way
// the teacher's larger builtin set dispatches in
// funxy/internal/analyzer/builtins.go.
func arrayMethodType(elem types.Type, name string) (types.Function, bool) {
	arr := types.Array{Elem: elem}
	switch name {
	case config.MethodLength:
		return types.Function{Return: types.Int}, true
	case config.MethodPush:
		return types.Function{Return: types.Void, Params: []types.Type{elem}}, true
	case config.MethodPop:
		return types.Function{Return: elem}, true
	case config.MethodClear:
		return types.Function{Return: types.Void}, true
	case config.MethodConcat:
		return types.Function{Return: arr, Params: []types.Type{arr}}, true
	case config.MethodIndexOf:
		return types.Function{Return: types.Int, Params: []types.Type{elem}}, true
	case config.MethodContains:
		return types.Function{Return: types.Bool, Params: []types.Type{elem}}, true
	case config.MethodClone:
		return types.Function{Return: arr}, true
	case config.MethodJoin:
		return types.Function{Return: types.String, Params: []types.Type{types.String}}, true
	case config.MethodReverse:
		return types.Function{Return: arr}, true
	case config.MethodInsert:
		return types.Function{Return: types.Void, Params: []types.Type{types.Int, elem}}, true
	case config.MethodRemove:
		return types.Function{Return: elem, Params: []types.Type{types.Int}}, true
	default:
		return types.Function{}, false
	}
}

// arrayMethodNames lists the fixed method alphabet, used to build a
// spelling-suggestion candidate list on CodeNoSuchMember (§8 property 8's
// sibling rule for member names rather than variable names).
var arrayMethodNames = []string{
	config.MethodLength, config.MethodPush, config.MethodPop, config.MethodClear,
	config.MethodConcat, config.MethodIndexOf, config.MethodContains, config.MethodClone,
	config.MethodJoin, config.MethodReverse, config.MethodInsert, config.MethodRemove,
}

// builtinCallType returns the built-in function type for a free-standing
// builtin call name (spec.md §4.7.1's "if callee is a built-in (len, pop,
// rev, push, rem, ins) it is routed to a dedicated rule"). elem is the
// element type of the array passed as the first argument.
func builtinCallType(elem types.Type, name string) (types.Function, bool) {
	arr := types.Array{Elem: elem}
	switch name {
	case config.BuiltinLen:
		return types.Function{Return: types.Int, Params: []types.Type{arr}}, true
	case config.BuiltinPop:
		return types.Function{Return: elem, Params: []types.Type{arr}}, true
	case config.BuiltinRev:
		return types.Function{Return: arr, Params: []types.Type{arr}}, true
	case config.BuiltinPush:
		return types.Function{Return: types.Void, Params: []types.Type{arr, elem}}, true
	case config.BuiltinRem:
		return types.Function{Return: elem, Params: []types.Type{arr, types.Int}}, true
	case config.BuiltinIns:
		return types.Function{Return: types.Void, Params: []types.Type{arr, types.Int, elem}}, true
	default:
		return types.Function{}, false
	}
}

// isBuiltinCallName reports whether name is one of the free-standing
// builtin call names, so VisitCallExpr can route to builtinCallType before
// falling back to ordinary symbol-table lookup.
func isBuiltinCallName(name string) bool {
	switch name {
	case config.BuiltinLen, config.BuiltinPop, config.BuiltinRev,
		config.BuiltinPush, config.BuiltinRem, config.BuiltinIns:
		return true
	default:
		return false
	}
}
