package ast

import "github.com/sindarin-lang/sindarin/internal/token"

// TypeExpr is the parser's surface syntax for a type (spec.md §4.4's
// "Types:" grammar bullet). The checker resolves a TypeExpr into a
// types.Type; TypeExpr itself never carries a resolved types.Type, because
// the same syntactic type expression can resolve differently depending on
// context (e.g. a named type resolves to whichever type declaration is
// visible in the scope where it appears).
type TypeExpr interface {
	Node
	typeExprNode()
}

type TypeExprBase struct {
	Token token.Token
}

func (t *TypeExprBase) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TypeExprBase) GetToken() token.Token { return t.Token }
func (t *TypeExprBase) typeExprNode()         {}

// PrimitiveTypeExpr names one of the primitive/interop scalar keywords:
// int, long, double, float, char, bool, byte, string, void, any, int32,
// uint, uint32, nil.
type PrimitiveTypeExpr struct {
	TypeExprBase
	Name string
}

func (p *PrimitiveTypeExpr) Accept(v Visitor) { v.VisitPrimitiveTypeExpr(p) }

// ArrayTypeExpr is `T[]`.
type ArrayTypeExpr struct {
	TypeExprBase
	Elem TypeExpr
}

func (a *ArrayTypeExpr) Accept(v Visitor) { v.VisitArrayTypeExpr(a) }

// FunctionTypeExpr is `fn(T1, T2): R`, or `native fn(T1, T2): R` when
// IsNative is set — the latter marks a native callback type (§4.7.7-§4.7.9):
// a lambda assigned to a variable of this type becomes a native lambda,
// and the type itself must pass the C-compatibility check.
type FunctionTypeExpr struct {
	TypeExprBase
	Params     []TypeExpr
	Return     TypeExpr
	IsVariadic bool
	IsNative   bool
}

func (f *FunctionTypeExpr) Accept(v Visitor) { v.VisitFunctionTypeExpr(f) }

// PointerTypeExpr is `*T`.
type PointerTypeExpr struct {
	TypeExprBase
	Base TypeExpr
}

func (p *PointerTypeExpr) Accept(v Visitor) { v.VisitPointerTypeExpr(p) }

// NamedTypeExpr references a user-declared type (including opaque types).
type NamedTypeExpr struct {
	TypeExprBase
	Name string
}

func (n *NamedTypeExpr) Accept(v Visitor) { v.VisitNamedTypeExpr(n) }
