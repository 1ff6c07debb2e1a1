package ast

// Visitor is implemented by every tree walker over the AST (the checker in
// internal/analyzer, and any future pretty-printer): one method per
// concrete node variant, matching the tagged-variant design of spec.md
// §3.3 (no inheritance: dispatch is by explicit type, not virtual call).
type Visitor interface {
	VisitModule(m *Module)

	// Type expressions
	VisitPrimitiveTypeExpr(p *PrimitiveTypeExpr)
	VisitArrayTypeExpr(a *ArrayTypeExpr)
	VisitFunctionTypeExpr(f *FunctionTypeExpr)
	VisitPointerTypeExpr(p *PointerTypeExpr)
	VisitNamedTypeExpr(n *NamedTypeExpr)

	// Expressions
	VisitIntLiteral(l *IntLiteral)
	VisitLongLiteral(l *LongLiteral)
	VisitDoubleLiteral(l *DoubleLiteral)
	VisitFloatLiteral(l *FloatLiteral)
	VisitCharLiteral(l *CharLiteral)
	VisitBoolLiteral(l *BoolLiteral)
	VisitByteLiteral(l *ByteLiteral)
	VisitStringLiteral(l *StringLiteral)
	VisitNilLiteral(l *NilLiteral)
	VisitIdentifier(i *Identifier)
	VisitBinaryExpr(b *BinaryExpr)
	VisitUnaryExpr(u *UnaryExpr)
	VisitAssignExpr(a *AssignExpr)
	VisitCallExpr(c *CallExpr)
	VisitStaticCallExpr(s *StaticCallExpr)
	VisitMemberExpr(m *MemberExpr)
	VisitArrayLiteralExpr(a *ArrayLiteralExpr)
	VisitIndexExpr(i *IndexExpr)
	VisitSliceExpr(s *SliceExpr)
	VisitIncDecExpr(i *IncDecExpr)
	VisitInterpStringExpr(i *InterpStringExpr)
	VisitLambdaExpr(l *LambdaExpr)
	VisitAsValExpr(a *AsValExpr)
	VisitAsRefExpr(a *AsRefExpr)

	// Statements
	VisitExpressionStatement(e *ExpressionStatement)
	VisitVarDeclStatement(d *VarDeclStatement)
	VisitFunctionStatement(f *FunctionStatement)
	VisitReturnStatement(r *ReturnStatement)
	VisitBlockStatement(b *BlockStatement)
	VisitIfStatement(i *IfStatement)
	VisitWhileStatement(w *WhileStatement)
	VisitForStatement(f *ForStatement)
	VisitForEachStatement(f *ForEachStatement)
	VisitBreakStatement(b *BreakStatement)
	VisitContinueStatement(c *ContinueStatement)
	VisitImportStatement(i *ImportStatement)
	VisitTypeDeclStatement(t *TypeDeclStatement)
}

// BaseVisitor provides no-op implementations of every Visitor method so
// that callers needing only a handful of hooks (e.g. a module-level
// import collector) can embed it and override selectively, the way the
// teacher's walker packages do.
type BaseVisitor struct{}

func (BaseVisitor) VisitModule(*Module) {}

func (BaseVisitor) VisitPrimitiveTypeExpr(*PrimitiveTypeExpr) {}
func (BaseVisitor) VisitArrayTypeExpr(*ArrayTypeExpr)         {}
func (BaseVisitor) VisitFunctionTypeExpr(*FunctionTypeExpr)   {}
func (BaseVisitor) VisitPointerTypeExpr(*PointerTypeExpr)     {}
func (BaseVisitor) VisitNamedTypeExpr(*NamedTypeExpr)         {}

func (BaseVisitor) VisitIntLiteral(*IntLiteral)             {}
func (BaseVisitor) VisitLongLiteral(*LongLiteral)           {}
func (BaseVisitor) VisitDoubleLiteral(*DoubleLiteral)       {}
func (BaseVisitor) VisitFloatLiteral(*FloatLiteral)         {}
func (BaseVisitor) VisitCharLiteral(*CharLiteral)           {}
func (BaseVisitor) VisitBoolLiteral(*BoolLiteral)           {}
func (BaseVisitor) VisitByteLiteral(*ByteLiteral)           {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)       {}
func (BaseVisitor) VisitNilLiteral(*NilLiteral)             {}
func (BaseVisitor) VisitIdentifier(*Identifier)             {}
func (BaseVisitor) VisitBinaryExpr(*BinaryExpr)             {}
func (BaseVisitor) VisitUnaryExpr(*UnaryExpr)               {}
func (BaseVisitor) VisitAssignExpr(*AssignExpr)             {}
func (BaseVisitor) VisitCallExpr(*CallExpr)                 {}
func (BaseVisitor) VisitStaticCallExpr(*StaticCallExpr)     {}
func (BaseVisitor) VisitMemberExpr(*MemberExpr)             {}
func (BaseVisitor) VisitArrayLiteralExpr(*ArrayLiteralExpr) {}
func (BaseVisitor) VisitIndexExpr(*IndexExpr)               {}
func (BaseVisitor) VisitSliceExpr(*SliceExpr)               {}
func (BaseVisitor) VisitIncDecExpr(*IncDecExpr)             {}
func (BaseVisitor) VisitInterpStringExpr(*InterpStringExpr) {}
func (BaseVisitor) VisitLambdaExpr(*LambdaExpr)             {}
func (BaseVisitor) VisitAsValExpr(*AsValExpr)               {}
func (BaseVisitor) VisitAsRefExpr(*AsRefExpr)               {}

func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) {}
func (BaseVisitor) VisitVarDeclStatement(*VarDeclStatement)       {}
func (BaseVisitor) VisitFunctionStatement(*FunctionStatement)     {}
func (BaseVisitor) VisitReturnStatement(*ReturnStatement)         {}
func (BaseVisitor) VisitBlockStatement(*BlockStatement)           {}
func (BaseVisitor) VisitIfStatement(*IfStatement)                 {}
func (BaseVisitor) VisitWhileStatement(*WhileStatement)           {}
func (BaseVisitor) VisitForStatement(*ForStatement)               {}
func (BaseVisitor) VisitForEachStatement(*ForEachStatement)       {}
func (BaseVisitor) VisitBreakStatement(*BreakStatement)           {}
func (BaseVisitor) VisitContinueStatement(*ContinueStatement)     {}
func (BaseVisitor) VisitImportStatement(*ImportStatement)         {}
func (BaseVisitor) VisitTypeDeclStatement(*TypeDeclStatement)     {}
