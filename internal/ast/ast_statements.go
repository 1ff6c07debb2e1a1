package ast

// ExpressionStatement wraps an expression used for its side effect
// (spec.md §3.4).
type ExpressionStatement struct {
	StmtBase
	Expr Expression
}

func (e *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(e) }

// VarDeclStatement is `var name[: Type] = value [as val|as ref]` (spec.md
// §3.4, §4.4). TypeExpr is nil when the declared type is inferred from
// Value. MemQual is the declaration's own trailing memory qualifier
// (§4.7.4 "as val on declarations") — a distinct construct from an `as
// val`/`as ref` appearing as a genuine pointer-unwrap sub-expression
// within Value (§4.7.5/§4.7.6), which stays an *AsValExpr/*AsRefExpr node.
// When a trailing `as val`'s operand turns out to be a pointer or a pointer
// slice, the checker moves it back into Value as an *AsValExpr and clears
// MemQual.
type VarDeclStatement struct {
	StmtBase
	Name     string
	TypeExpr TypeExpr
	Value    Expression
	MemQual  MemQual
}

func (d *VarDeclStatement) Accept(v Visitor) { v.VisitVarDeclStatement(d) }

// FunctionStatement is a top-level or nested function declaration,
// including `native fn` declarations with no body (spec.md §3.4, §4.4).
// Like LambdaExpr, the body is either a single expression (ExprBody, the
// function's implicit return value) or a statement block (Body); exactly
// one is set, unless IsNative, where neither is.
type FunctionStatement struct {
	StmtBase
	Name       string
	Modifier   FunctionModifier
	Params     []Param
	ReturnType TypeExpr // nil means void
	ExprBody   Expression
	Body       []Statement // nil when ExprBody is set
	IsNative   bool
	IsVariadic bool
}

func (f *FunctionStatement) Accept(v Visitor) { v.VisitFunctionStatement(f) }

// ReturnStatement is `return [value]` (spec.md §3.4). Value is nil for a
// bare return in a void function.
type ReturnStatement struct {
	StmtBase
	Value Expression
}

func (r *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(r) }

// BlockStatement is `{ ... }`, or a region block `private => BODY` /
// `shared => BODY` (spec.md §3.4, §3.7); a private block pushes a
// private-region arena-context entry.
type BlockStatement struct {
	StmtBase
	Modifier   FunctionModifier
	Statements []Statement
}

func (b *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(b) }

// IfStatement is `if cond => then [else => else_]` (spec.md §3.4). An
// `else if` chain is represented as Else containing a single *IfStatement.
type IfStatement struct {
	StmtBase
	Cond Expression
	Then []Statement
	Else []Statement
}

func (i *IfStatement) Accept(v Visitor) { v.VisitIfStatement(i) }

// WhileStatement is `[shared] while cond => body` (spec.md §3.4). IsShared
// suppresses the per-iteration arena region §4.7.4 otherwise opens around
// Body on every iteration.
type WhileStatement struct {
	StmtBase
	Cond     Expression
	Body     []Statement
	IsShared bool
}

func (w *WhileStatement) Accept(v Visitor) { v.VisitWhileStatement(w) }

// ForStatement is the C-style `[shared] for var i = init; cond; post => body`
// (spec.md §3.4); the parser requires all three clauses. IsShared
// suppresses the per-iteration arena region §4.7.4 otherwise opens around
// Body on every iteration.
type ForStatement struct {
	StmtBase
	Init     Statement
	Cond     Expression
	Post     Statement
	Body     []Statement
	IsShared bool
}

func (f *ForStatement) Accept(v Visitor) { v.VisitForStatement(f) }

// ForEachStatement is `[shared] for var name in iterable => body` (spec.md
// §3.4, §4.7.4: introduces a fresh per-iteration region, see glossary "loop
// region"). IsShared suppresses that per-iteration region.
type ForEachStatement struct {
	StmtBase
	VarName  string
	Iterable Expression
	Body     []Statement
	IsShared bool
}

func (f *ForEachStatement) Accept(v Visitor) { v.VisitForEachStatement(f) }

// BreakStatement is `break` (spec.md §3.4; §9 resolves the open question
// of break/continue outside a loop as a checker error, CodeBreakOutsideLoop).
type BreakStatement struct {
	StmtBase
}

func (b *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(b) }

// ContinueStatement is `continue` (spec.md §3.4; see BreakStatement).
type ContinueStatement struct {
	StmtBase
}

func (c *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(c) }

// ImportStatement is `import "path" [as alias]` (spec.md §3.4, C8).
type ImportStatement struct {
	StmtBase
	Path  string
	Alias string // "" if no alias given
}

func (i *ImportStatement) Accept(v Visitor) { v.VisitImportStatement(i) }

// TypeDeclStatement declares a named type: either a transparent alias
// (`type Name = Underlying`) or an opaque handle type introduced for FFI
// (`type Name = opaque`) (spec.md §3.4, §4.4).
type TypeDeclStatement struct {
	StmtBase
	Name       string
	IsOpaque   bool
	Underlying TypeExpr // nil when IsOpaque
}

func (t *TypeDeclStatement) Accept(v Visitor) { v.VisitTypeDeclStatement(t) }
