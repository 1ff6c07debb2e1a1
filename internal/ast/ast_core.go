// Package ast defines Sindarin's tagged-variant AST (spec.md §3.3–§3.5,
// C5). Every node carries its originating token.Token for diagnostics;
// expressions additionally carry a memoized resolved type set exactly once
// by the type checker (§3.3's memoization invariant). Nodes themselves stay
// on the regular Go heap, since they hold Expression/Statement interface
// fields and strings the garbage collector must trace; what internal/arena
// actually owns per §3.8 is the *byte accounting* for every node, scope, and
// symbol this compilation produces, via arena.Track — see
// internal/parser's trackAlloc and internal/analyzer's scope-push sites.
package ast

import (
	"github.com/sindarin-lang/sindarin/internal/config"
	"github.com/sindarin-lang/sindarin/internal/token"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that stands on its own inside a block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that yields a value and caches its resolved type.
type Expression interface {
	Node
	expressionNode()
	ResolvedType() types.Type
	SetResolvedType(t types.Type)
}

// ExprBase is embedded by every Expression variant to provide the
// originating token and the memoized resolved-type slot (§3.3 invariant:
// "once the type checker resolves an expression's type it is memoized; a
// second visit returns the cached type without re-evaluation").
type ExprBase struct {
	Token token.Token
	typ   types.Type
}

func (e *ExprBase) expressionNode()              {}
func (e *ExprBase) TokenLiteral() string         { return e.Token.Lexeme }
func (e *ExprBase) GetToken() token.Token        { return e.Token }
func (e *ExprBase) ResolvedType() types.Type     { return e.typ }
func (e *ExprBase) SetResolvedType(t types.Type) { e.typ = t }

// StmtBase is embedded by every Statement variant.
type StmtBase struct {
	Token token.Token
}

func (s *StmtBase) statementNode()        {}
func (s *StmtBase) TokenLiteral() string  { return s.Token.Lexeme }
func (s *StmtBase) GetToken() token.Token { return s.Token }

// Module is the root node produced for one source file (spec.md §3.5).
type Module struct {
	Filename   string
	Statements []Statement
}

func (m *Module) TokenLiteral() string {
	if len(m.Statements) > 0 {
		return m.Statements[0].TokenLiteral()
	}
	return ""
}
func (m *Module) GetToken() token.Token {
	if len(m.Statements) > 0 {
		return m.Statements[0].GetToken()
	}
	return token.Token{File: m.Filename, Line: 1}
}
func (m *Module) Accept(v Visitor) { v.VisitModule(m) }

// FunctionModifier re-exports config.Modifier under the AST's vocabulary
// (spec.md §3.4: "function modifier ∈ {default, private, shared}").
type FunctionModifier = config.Modifier

const (
	ModDefault = config.ModDefault
	ModPrivate = config.ModPrivate
	ModShared  = config.ModShared
)

// MemQual re-exports types.MemQual for declarations/parameters
// (`as val` / `as ref`, spec.md §3.4, §4.4).
type MemQual = types.MemQual

const (
	MemNone  = types.MemNone
	MemAsVal = types.MemAsVal
	MemAsRef = types.MemAsRef
)
