// Package modules implements Sindarin's import resolver and runtime-ABI
// prelude (spec.md §4.8, §6.2, C8). Grounded on the teacher's
// internal/modules package (funxy/internal/modules/loader.go): the same
// "resolve a path to a parsed, checked module and memoize it" shape,
// stripped of the teacher's package-group/bundle/trait-default machinery
// Sindarin's single-module-per-file import model has no use for.
package modules

import (
	"github.com/sindarin-lang/sindarin/internal/symbols"
	"github.com/sindarin-lang/sindarin/internal/types"
)

func nativeFn(ret types.Type, params ...types.Type) types.Function {
	return types.Function{Return: ret, Params: params, IsNative: true}
}

func define(t *symbols.Table, name string, fn types.Function) {
	t.Define(symbols.Symbol{Name: name, Type: fn, Kind: symbols.FuncSymbol})
}

// uuidPtr is *UUID — UUID has no dedicated handle Kind in internal/types
// (unlike file/net/process/date/time/random, §3.2), so it is represented
// as a pointer to an opaque named type the way any other native handle
// without a pre-declared Kind would be.
var uuidPtr = types.Pointer{Base: types.Opaque{Name: "UUID"}}

// Prelude builds the table of pre-registered `native fn` symbols backing
// the runtime ABI a code generator would consume (§6.2): array ops,
// random, UUID v4/v5/v7, SHA-1, and file/TCP/UDP/process handles. It never
// executes anything — there is no runtime here to call — it only seeds
// the symbol table the way a standard-library header seeds a C compiler's
// initial scope, giving the analyzer's pointer-discipline and
// C-compatibility rules (§4.7.7-§4.7.9) concrete native declarations to
// exercise against.
func Prelude() *symbols.Table {
	t := symbols.NewTable(nil)

	// Array ops: the fixed-length contiguous buffer operations a
	// generated array(T) representation would lower to underneath the
	// closed-switch builtins the analyzer already type-checks
	// (internal/analyzer/builtins.go) — these are the runtime entry
	// points those builtins would call, not separate surface syntax.
	define(t, "array_alloc", nativeFn(types.Pointer{Base: types.Byte}, types.Int))
	define(t, "array_free", nativeFn(types.Void, types.Pointer{Base: types.Byte}))
	define(t, "array_copy", nativeFn(types.Void, types.Pointer{Base: types.Byte}, types.Pointer{Base: types.Byte}, types.Int))

	// Random (§6.2's RandomHandle).
	define(t, "random_new", nativeFn(types.Pointer{Base: types.RandomHandle}, types.Long))
	define(t, "random_int", nativeFn(types.Int, types.Pointer{Base: types.RandomHandle}, types.Int, types.Int))
	define(t, "random_double", nativeFn(types.Double, types.Pointer{Base: types.RandomHandle}))
	define(t, "random_weighted", nativeFn(types.Int, types.Pointer{Base: types.RandomHandle}, types.Array{Elem: types.Double}))

	// UUID v4/v5/v7.
	define(t, "uuid_v4", nativeFn(uuidPtr))
	define(t, "uuid_v5", nativeFn(uuidPtr, uuidPtr, types.String))
	define(t, "uuid_v7", nativeFn(uuidPtr))
	define(t, "uuid_to_string", nativeFn(types.String, uuidPtr))
	define(t, "uuid_parse", nativeFn(uuidPtr, types.String))

	// SHA-1.
	define(t, "sha1", nativeFn(types.Array{Elem: types.Byte}, types.Array{Elem: types.Byte}))

	// File handles (§6.2's FileHandle).
	filePtr := types.Pointer{Base: types.FileHandle}
	define(t, "file_open", nativeFn(filePtr, types.String, types.String))
	define(t, "file_read", nativeFn(types.Array{Elem: types.Byte}, filePtr, types.Int))
	define(t, "file_write", nativeFn(types.Int, filePtr, types.Array{Elem: types.Byte}))
	define(t, "file_close", nativeFn(types.Void, filePtr))

	// TCP/UDP handles (§6.2's NetHandle).
	netPtr := types.Pointer{Base: types.NetHandle}
	define(t, "tcp_listen", nativeFn(netPtr, types.String))
	define(t, "tcp_accept", nativeFn(netPtr, netPtr))
	define(t, "tcp_connect", nativeFn(netPtr, types.String))
	define(t, "tcp_read", nativeFn(types.Array{Elem: types.Byte}, netPtr, types.Int))
	define(t, "tcp_write", nativeFn(types.Int, netPtr, types.Array{Elem: types.Byte}))
	define(t, "tcp_close", nativeFn(types.Void, netPtr))
	define(t, "udp_bind", nativeFn(netPtr, types.String))
	define(t, "udp_send", nativeFn(types.Int, netPtr, types.String, types.Array{Elem: types.Byte}))
	define(t, "udp_recv", nativeFn(types.Array{Elem: types.Byte}, netPtr, types.Int))

	// Process handles (§6.2's ProcessHandle).
	procPtr := types.Pointer{Base: types.ProcessHandle}
	define(t, "process_spawn", nativeFn(procPtr, types.String, types.Array{Elem: types.String}))
	define(t, "process_wait", nativeFn(types.Int, procPtr))
	define(t, "process_kill", nativeFn(types.Void, procPtr))

	return t
}
