// Package types implements Sindarin's type model (spec.md §3.2): a closed,
// monomorphic tagged union. Unlike the teacher's Hindley-Milner type
// system (unification, type variables, type classes), Sindarin has no
// generics (an explicit Non-goal, spec.md §1), so Type here is a finite set
// of struct kinds switched over directly — no Subst, no Unify.
package types

// Kind tags a Type's variant for fast dispatch and diagnostics.
type Kind int

const (
	KInt Kind = iota
	KLong
	KDouble
	KFloat
	KChar
	KBool
	KByte
	KString
	KVoid
	KNil
	KAny
	KInt32
	KUint
	KUint32
	KArray
	KFunction
	KPointer
	KOpaque
	// Runtime-ABI handle kinds (spec.md §3.2, §6.2). Opaque to Sindarin
	// code; only ever referenced through a Pointer to one of these.
	KFileHandle
	KNetHandle
	KProcessHandle
	KDateHandle
	KTimeHandle
	KRandomHandle
)

var kindNames = map[Kind]string{
	KInt: "int", KLong: "long", KDouble: "double", KFloat: "float",
	KChar: "char", KBool: "bool", KByte: "byte", KString: "string",
	KVoid: "void", KNil: "nil", KAny: "any", KInt32: "int32",
	KUint: "uint", KUint32: "uint32", KArray: "array", KFunction: "function",
	KPointer: "pointer", KOpaque: "opaque",
	KFileHandle: "FileHandle", KNetHandle: "NetHandle",
	KProcessHandle: "ProcessHandle", KDateHandle: "DateHandle",
	KTimeHandle: "TimeHandle", KRandomHandle: "RandomHandle",
}

// Type is the interface every type variant implements.
type Type interface {
	Kind() Kind
	String() string
}

// Primitive is every scalar kind that carries no nested Type and compares
// by value (spec.md §4.5's "reference equality permissible for primitives
// (value-kind comparison)" — for a value type, comparing the Kind tag IS
// reference/value equality, there is no separate identity).
type Primitive struct{ K Kind }

func (p Primitive) Kind() Kind     { return p.K }
func (p Primitive) String() string { return kindNames[p.K] }

var (
	Int    = Primitive{KInt}
	Long   = Primitive{KLong}
	Double = Primitive{KDouble}
	Float  = Primitive{KFloat}
	Char   = Primitive{KChar}
	Bool   = Primitive{KBool}
	Byte   = Primitive{KByte}
	String = Primitive{KString}
	Void   = Primitive{KVoid}
	Nil    = Primitive{KNil}
	Any    = Primitive{KAny}
	Int32  = Primitive{KInt32}
	Uint   = Primitive{KUint}
	Uint32 = Primitive{KUint32}

	FileHandle    = Primitive{KFileHandle}
	NetHandle     = Primitive{KNetHandle}
	ProcessHandle = Primitive{KProcessHandle}
	DateHandle    = Primitive{KDateHandle}
	TimeHandle    = Primitive{KTimeHandle}
	RandomHandle  = Primitive{KRandomHandle}
)

// Array is `array(element: Type)` (spec.md §3.2). An Array whose Elem is
// nil denotes the special "empty-literal" type that unifies with any
// concrete array(T) on first assignment (§3.2 invariant).
type Array struct{ Elem Type }

func (a Array) Kind() Kind { return KArray }
func (a Array) String() string {
	if a.Elem == nil {
		return "array(nil)"
	}
	return a.Elem.String() + "[]"
}

// IsEmptyLiteralType reports whether a is the `array(nil)` sentinel.
func (a Array) IsEmptyLiteralType() bool { return a.Elem == nil }

// MemQual is a parameter/declaration memory qualifier (§3.2's
// function(..., param_mem_quals: [MemQual]?), §4.7.4).
type MemQual int

const (
	MemNone MemQual = iota
	MemAsVal
	MemAsRef
)

func (m MemQual) String() string {
	switch m {
	case MemAsVal:
		return "as val"
	case MemAsRef:
		return "as ref"
	default:
		return ""
	}
}

// Function is `function(return, params, param_mem_quals?, is_native, is_variadic)`.
type Function struct {
	Return        Type
	Params        []Type
	ParamMemQuals []MemQual // nil, or len(ParamMemQuals) == len(Params)
	IsNative      bool
	IsVariadic    bool
}

func (f Function) Kind() Kind { return KFunction }
func (f Function) String() string {
	s := "fn("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	if f.IsVariadic {
		s += "..."
	}
	s += "): "
	if f.Return != nil {
		s += f.Return.String()
	} else {
		s += "?"
	}
	return s
}

// MemQualAt returns the memory qualifier declared for parameter i, or
// MemNone if none was declared.
func (f Function) MemQualAt(i int) MemQual {
	if i < 0 || i >= len(f.ParamMemQuals) {
		return MemNone
	}
	return f.ParamMemQuals[i]
}

// Pointer is `pointer(base: Type)` (§3.2). Representable only inside
// native functions or inline argument expressions to native calls, or
// inside the operand of `as val` (§4.7.7) — a restriction the analyzer
// enforces, not this package.
type Pointer struct{ Base Type }

func (p Pointer) Kind() Kind     { return KPointer }
func (p Pointer) String() string { return "*" + p.Base.String() }

// Opaque is a named type with no visible structure (§3.2, glossary):
// usable only through pointers, never dereferenced by Sindarin code.
type Opaque struct{ Name string }

func (o Opaque) Kind() Kind     { return KOpaque }
func (o Opaque) String() string { return o.Name }

// StringOf is a package-level helper mirroring fmt.Stringer for nil-safety
// at call sites that may hold an unresolved (nil) Type.
func StringOf(t Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}
