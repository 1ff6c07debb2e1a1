package types

// Equals implements `type_equals(a, b)` (spec.md §4.5): structural for
// arrays and function types (element type recursively compared; function
// equality requires same arity, each parameter equal, and return type
// equal), reference equality (i.e. same Kind) for primitives.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case Primitive:
		return true // same Kind already checked
	case Array:
		bt := b.(Array)
		if at.IsEmptyLiteralType() || bt.IsEmptyLiteralType() {
			// array(nil) unifies with any concrete array(T) (§3.2 invariant).
			return true
		}
		return Equals(at.Elem, bt.Elem)
	case Function:
		bt := b.(Function)
		if len(at.Params) != len(bt.Params) {
			return false
		}
		if at.IsVariadic != bt.IsVariadic {
			return false
		}
		for i := range at.Params {
			if !Equals(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equals(at.Return, bt.Return)
	case Pointer:
		bt := b.(Pointer)
		return Equals(at.Base, bt.Base)
	case Opaque:
		bt := b.(Opaque)
		return at.Name == bt.Name
	default:
		return false
	}
}

// IsPrimitive reports whether t is a value-kind type with no arena
// affinity (§4.7.4: "primitives are copied by value and have no arena
// affinity"). This is exactly `can_escape_private` (§4.7.4).
func IsPrimitive(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KInt, KLong, KDouble, KFloat, KChar, KBool, KByte, KVoid, KNil,
		KInt32, KUint, KUint32:
		return true
	default:
		return false
	}
}

// IsReference reports whether t is a reference-kind type that lives in an
// arena: string, array, function, or a runtime handle kind (§3.8, §4.7.4).
func IsReference(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KString, KArray, KFunction, KFileHandle, KNetHandle, KProcessHandle,
		KDateHandle, KTimeHandle, KRandomHandle:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether t supports arithmetic (§4.7.1 unary/binary rules).
func IsNumeric(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KInt, KLong, KDouble, KFloat, KByte, KInt32, KUint, KUint32:
		return true
	default:
		return false
	}
}

// IsPrintable reports whether t is accepted inside interpolated strings and
// as an `any` argument to built-ins (glossary: "Printable type"):
// int, long, double, char, string, bool, byte, array.
func IsPrintable(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KInt, KLong, KDouble, KChar, KString, KBool, KByte, KArray:
		return true
	default:
		return false
	}
}

// CanEscapePrivate reports whether a value of type t may cross out of a
// private region (§4.7.4's private escape rule): only primitives can.
func CanEscapePrivate(t Type) bool {
	return IsPrimitive(t)
}

// IsCCompatible reports whether t is legal as a native callback's return
// type or parameter type (§4.7.9): primitive scalar, interop scalar, void,
// pointer(T) for any T, or an opaque type. Arrays, strings, function
// types, and Sindarin reference-handle types are rejected.
func IsCCompatible(t Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KInt, KLong, KDouble, KFloat, KChar, KBool, KByte, KVoid,
		KInt32, KUint, KUint32, KPointer, KOpaque:
		return true
	default:
		return false
	}
}
