package ast

import "github.com/sindarin-lang/sindarin/internal/token"

// --- Literals (spec.md §3.2's scalar kinds, §3.3 "literal: carries its own type") ---

type IntLiteral struct {
	ExprBase
	Value int64
}

func (l *IntLiteral) Accept(v Visitor) { v.VisitIntLiteral(l) }

type LongLiteral struct {
	ExprBase
	Value int64
}

func (l *LongLiteral) Accept(v Visitor) { v.VisitLongLiteral(l) }

type DoubleLiteral struct {
	ExprBase
	Value float64
}

func (l *DoubleLiteral) Accept(v Visitor) { v.VisitDoubleLiteral(l) }

type FloatLiteral struct {
	ExprBase
	Value float32
}

func (l *FloatLiteral) Accept(v Visitor) { v.VisitFloatLiteral(l) }

type CharLiteral struct {
	ExprBase
	Value rune
}

func (l *CharLiteral) Accept(v Visitor) { v.VisitCharLiteral(l) }

type BoolLiteral struct {
	ExprBase
	Value bool
}

func (l *BoolLiteral) Accept(v Visitor) { v.VisitBoolLiteral(l) }

type ByteLiteral struct {
	ExprBase
	Value byte
}

func (l *ByteLiteral) Accept(v Visitor) { v.VisitByteLiteral(l) }

type StringLiteral struct {
	ExprBase
	Value string
}

func (l *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(l) }

type NilLiteral struct {
	ExprBase
}

func (l *NilLiteral) Accept(v Visitor) { v.VisitNilLiteral(l) }

// Identifier is a variable reference (§3.3 "variable").
type Identifier struct {
	ExprBase
	Name string
}

func (i *Identifier) Accept(v Visitor) { v.VisitIdentifier(i) }

// BinaryExpr is a binary operator application (§3.3 "binary").
type BinaryExpr struct {
	ExprBase
	Left, Right Expression
	Op          token.TokenType
}

func (b *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(b) }

// UnaryExpr is `-x` or `!x` (§3.3 "unary").
type UnaryExpr struct {
	ExprBase
	Operand Expression
	Op      token.TokenType
}

func (u *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(u) }

// AssignExpr is `target = value` or a compound form (`+=`, `-=`, ...)
// (§3.3 "assign"). Op is token.ASSIGN for plain assignment.
type AssignExpr struct {
	ExprBase
	Target Expression
	Value  Expression
	Op     token.TokenType
}

func (a *AssignExpr) Accept(v Visitor) { v.VisitAssignExpr(a) }

// CallExpr is `callee(args...)` (§3.3 "call").
type CallExpr struct {
	ExprBase
	Callee Expression
	Args   []Expression
}

func (c *CallExpr) Accept(v Visitor) { v.VisitCallExpr(c) }

// StaticCallExpr is `Type.method(args...)` (§3.3 "static-call").
type StaticCallExpr struct {
	ExprBase
	TypeName string
	Method   string
	Args     []Expression
}

func (s *StaticCallExpr) Accept(v Visitor) { v.VisitStaticCallExpr(s) }

// MemberExpr is `object.property` (§3.3 "member access").
type MemberExpr struct {
	ExprBase
	Object   Expression
	Property string
}

func (m *MemberExpr) Accept(v Visitor) { v.VisitMemberExpr(m) }

// ArrayLiteralExpr is `{e1, e2, ...}` (§3.3 "array literal").
type ArrayLiteralExpr struct {
	ExprBase
	Elements []Expression
}

func (a *ArrayLiteralExpr) Accept(v Visitor) { v.VisitArrayLiteralExpr(a) }

// IndexExpr is `object[index]` (§3.3 "array index").
type IndexExpr struct {
	ExprBase
	Object Expression
	Index  Expression
}

func (i *IndexExpr) Accept(v Visitor) { v.VisitIndexExpr(i) }

// SliceExpr is `object[start..end]` or `object[start..end:step]`
// (§3.3 "array slice"). The checker records the slice's pointer-vs-array
// origin here in IsFromPointer (§4.7.5); the enclosing `as val` node
// carries its own IsFromNoop flag.
type SliceExpr struct {
	ExprBase
	Object Expression
	Start  Expression // nil if omitted
	End    Expression // nil if omitted
	Step   Expression // nil if omitted

	// IsFromPointer is set by the checker when Object's type is pointer(T)
	// rather than array(T) (§4.7.5).
	IsFromPointer bool
}

func (s *SliceExpr) Accept(v Visitor) { v.VisitSliceExpr(s) }

// IncDecExpr is `x++`/`x--`/`++x`/`--x` (§3.3 "increment/decrement").
type IncDecExpr struct {
	ExprBase
	Operand Expression
	Op      token.TokenType // INCR or DECR
	Prefix  bool
}

func (i *IncDecExpr) Accept(v Visitor) { v.VisitIncDecExpr(i) }

// InterpStringExpr is an interpolated string: an ordered sequence of
// sub-expressions, string-literal segments interleaved with arbitrary
// expressions (§3.3 "interpolated string").
type InterpStringExpr struct {
	ExprBase
	Parts []Expression
}

func (i *InterpStringExpr) Accept(v Visitor) { v.VisitInterpStringExpr(i) }

// Param is one lambda/function parameter (§3.4, §4.4).
type Param struct {
	Name     string
	TypeExpr TypeExpr // nil if omitted; not inferred, the checker reports it as an error
	MemQual  MemQual
	Token    token.Token
}

// LambdaExpr is `fn(params): RET => BODY`, body either a single expression
// or a statement block (§3.3 "lambda").
type LambdaExpr struct {
	ExprBase
	Params     []Param
	ReturnType TypeExpr // nil if omitted; not inferred, the checker treats it as void
	ExprBody   Expression
	BlockBody  []Statement // nil when ExprBody is set
	IsNative   bool        // set by the checker when assigned to a native callback type (§4.7.8)
}

func (l *LambdaExpr) Accept(v Visitor) { v.VisitLambdaExpr(l) }

// AsValExpr is `e as val` (§3.3, §4.7.5): the only bridge consuming a
// pointer(T) outside a native function.
type AsValExpr struct {
	ExprBase
	Operand Expression

	// Flags set by the checker (§4.7.5):
	IsCStrToStr bool // pointer(char) -> string via null-terminated conversion
	IsFromNoop  bool // operand was already array(T): no-op pass-through
}

func (a *AsValExpr) Accept(v Visitor) { v.VisitAsValExpr(a) }

// AsRefExpr is `e as ref` (§3.3, §4.7.6): takes a reference to a primitive
// location for passage into a native `as ref` parameter.
type AsRefExpr struct {
	ExprBase
	Operand Expression
}

func (a *AsRefExpr) Accept(v Visitor) { v.VisitAsRefExpr(a) }
