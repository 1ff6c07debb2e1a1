package parser

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/token"
)

// parseStatement dispatches on curToken's type to the matching statement
// parser (spec.md §4.4's grammar bullets). It returns nil on a parse
// failure, which the caller recovers from via skipToStatementBoundary.
func (p *Parser) parseStatement() ast.Statement {
	trackAlloc[ast.StmtBase](p)
	switch p.curToken.Type {
	case token.VAR:
		return p.parseVarDeclStatement()
	case token.FN, token.NATIVE, token.PRIVATE:
		return p.parseFunctionOrRegionBlock()
	case token.SHARED:
		if p.peekTokenIs(token.WHILE) {
			p.nextToken()
			return p.parseWhileStatement(true)
		}
		if p.peekTokenIs(token.FOR) {
			p.nextToken()
			return p.parseForStatement(true)
		}
		return p.parseFunctionOrRegionBlock()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LBRACE:
		return p.parsePlainBlockStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement(false)
	case token.FOR:
		return p.parseForStatement(false)
	case token.BREAK:
		return &ast.BreakStatement{StmtBase: ast.StmtBase{Token: p.curToken}}
	case token.CONTINUE:
		return &ast.ContinueStatement{StmtBase: ast.StmtBase{Token: p.curToken}}
	case token.IMPORT:
		return p.parseImportStatement()
	case token.TYPE:
		return p.parseTypeDeclStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseSingleStatementOrBlock parses the body that follows a `=>` in a
// function, if, while, for, or region-block header: either a `{ ... }`
// block or exactly one statement (spec.md §4.4: "BODY is either an
// expression (single-line) or an indented statement block (multi-line)" —
// this front end uses explicit `{ }` in place of indentation for the
// multi-statement case, since the lexer does not track indentation).
// curToken on entry is the body's first token.
func (p *Parser) parseSingleStatementOrBlock() []ast.Statement {
	if p.curTokenIs(token.LBRACE) {
		return p.parseBlockStatements()
	}
	stmt := p.parseStatement()
	if stmt == nil {
		return nil
	}
	return []ast.Statement{stmt}
}

// parseBlockStatements parses `{ stmt... }`; curToken on entry is '{' and
// on return is the matching '}'.
func (p *Parser) parseBlockStatements() []ast.Statement {
	var stmts []ast.Statement
	p.nextToken() // consume '{'
	p.skipStatementSeparators()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
			p.nextToken() // step past the statement's last token
		} else {
			p.skipToStatementBoundary()
		}
		p.skipStatementSeparators()
	}
	return stmts
}

func (p *Parser) parsePlainBlockStatement() ast.Statement {
	tok := p.curToken
	stmts := p.parseBlockStatements()
	return &ast.BlockStatement{StmtBase: ast.StmtBase{Token: tok}, Modifier: ast.ModDefault, Statements: stmts}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	return &ast.ExpressionStatement{StmtBase: ast.StmtBase{Token: tok}, Expr: expr}
}

// parseVarDeclStatement parses `var NAME [: TYPE] [= EXPR [as val|as ref]]`
// (spec.md §3.4, §4.4). The trailing memory qualifier is the
// declaration's own (§4.7.4), unwrapped out of the initializer expression
// by unwrapDeclMemQual rather than left as a nested pointer-unwrap
// expression node.
func (p *Parser) parseVarDeclStatement() ast.Statement {
	tok := p.curToken // VAR
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := &ast.VarDeclStatement{StmtBase: ast.StmtBase{Token: tok}, Name: p.curToken.Lexeme}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		te := p.parseTypeExpr()
		if te == nil {
			return nil
		}
		decl.TypeExpr = te
	}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		val := p.parseExpression(ASSIGN_PREC)
		if val == nil {
			return nil
		}
		decl.Value, decl.MemQual = unwrapDeclMemQual(val)
	}
	return decl
}

// unwrapDeclMemQual recognizes a declaration initializer's own trailing
// `as val`/`as ref` qualifier (spec.md §3.4, §4.4's "var NAME [: TYPE]
// [= EXPR] [as val|as ref]"): `as` binds tighter than every binary
// operator (AS_PREC), so a bare trailing `EXPR as val`/`EXPR as ref`
// always parses to an *ast.AsValExpr/*ast.AsRefExpr wrapping the whole
// initializer at the top level. Unwrapping it here into the
// declaration's own MemQual keeps it out of the pointer-only expression
// form §4.7.5/§4.7.6 analysis applies to `x as val` used as a genuine
// sub-expression (e.g. a native call argument) elsewhere; an `as val`/
// `as ref` nested inside a larger initializer (`a + b as val`) is not a
// top-level node here and is left untouched. The checker undoes the
// unwrap when the operand is a pointer or a pointer slice
// (analyzer.VisitVarDeclStatement).
func unwrapDeclMemQual(val ast.Expression) (ast.Expression, ast.MemQual) {
	switch e := val.(type) {
	case *ast.AsValExpr:
		return e.Operand, ast.MemAsVal
	case *ast.AsRefExpr:
		return e.Operand, ast.MemAsRef
	default:
		return val, ast.MemNone
	}
}

// parseReturnStatement parses `return [EXPR]`; a bare return has no value.
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	ret := &ast.ReturnStatement{StmtBase: ast.StmtBase{Token: tok}}
	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMICOLON) ||
		p.peekTokenIs(token.RBRACE) || p.peekTokenIs(token.EOF) {
		return ret
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	ret.Value = val
	return ret
}

// parseFunctionOrRegionBlock handles every statement that can start with
// `fn`, `native`, `private`, or `shared`: a function declaration
// (`[private|shared] [native] fn NAME(...): RET => BODY`) or a region block
// (`private =>` / `shared =>`, spec.md §4.4 "Regions").
func (p *Parser) parseFunctionOrRegionBlock() ast.Statement {
	startTok := p.curToken
	mod := ast.ModDefault
	if p.curTokenIs(token.PRIVATE) {
		mod = ast.ModPrivate
		p.nextToken()
	} else if p.curTokenIs(token.SHARED) {
		mod = ast.ModShared
		p.nextToken()
	}

	if mod != ast.ModDefault && !p.curTokenIs(token.FN) && !p.curTokenIs(token.NATIVE) {
		if !p.curTokenIs(token.ARROW) {
			p.errorf(p.curToken, "expected '=>' after region modifier, got %s", p.curToken.Type)
			return nil
		}
		p.nextToken()
		stmts := p.parseSingleStatementOrBlock()
		return &ast.BlockStatement{StmtBase: ast.StmtBase{Token: startTok}, Modifier: mod, Statements: stmts}
	}

	isNative := false
	if p.curTokenIs(token.NATIVE) {
		isNative = true
		p.nextToken()
	}
	if !p.curTokenIs(token.FN) {
		p.errorf(p.curToken, "expected 'fn', got %s", p.curToken.Type)
		return nil
	}
	return p.parseFunctionStatement(startTok, mod, isNative)
}

func (p *Parser) parseFunctionStatement(startTok token.Token, mod ast.FunctionModifier, isNative bool) ast.Statement {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()

	fnStmt := &ast.FunctionStatement{
		StmtBase: ast.StmtBase{Token: startTok},
		Name:     name,
		Modifier: mod,
		Params:   params,
		IsNative: isNative,
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		rt := p.parseTypeExpr()
		if rt == nil {
			return nil
		}
		fnStmt.ReturnType = rt
	}

	if isNative {
		return fnStmt
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()

	if p.curTokenIs(token.LBRACE) {
		fnStmt.Body = p.parseBlockStatements()
		return fnStmt
	}
	if isStatementLeadToken(p.curToken.Type) {
		fnStmt.Body = p.parseSingleStatementOrBlock()
		return fnStmt
	}
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	fnStmt.ExprBody = expr
	return fnStmt
}

// isStatementLeadToken reports whether tt can only begin a statement (never
// a bare expression), so a function/lambda's single-line `=> ...` body can
// tell `a + b` (an implicit-return expression) apart from `if cond => ...`
// or `return x` (a statement whose value, if any, is explicit).
func isStatementLeadToken(tt token.TokenType) bool {
	switch tt {
	case token.VAR, token.FN, token.NATIVE, token.PRIVATE, token.SHARED,
		token.RETURN, token.IF, token.WHILE, token.FOR, token.BREAK,
		token.CONTINUE, token.IMPORT, token.TYPE:
		return true
	default:
		return false
	}
}

// parseIfStatement parses `if COND => THEN [else [if COND =>] ELSE]`
// (spec.md §4.4, §6.1 example: `if x < 0 => return 0 - x`).
func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken // IF
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	thenBody := p.parseSingleStatementOrBlock()
	ifStmt := &ast.IfStatement{StmtBase: ast.StmtBase{Token: tok}, Cond: cond, Then: thenBody}

	for p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	if !p.peekTokenIs(token.ELSE) {
		return ifStmt
	}
	p.nextToken() // curToken = ELSE

	if p.peekTokenIs(token.IF) {
		p.nextToken() // curToken = IF
		elseIf := p.parseIfStatement()
		if elseIf == nil {
			return nil
		}
		ifStmt.Else = []ast.Statement{elseIf}
		return ifStmt
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	ifStmt.Else = p.parseSingleStatementOrBlock()
	return ifStmt
}

// parseWhileStatement parses `[shared] while COND => BODY`; curToken on
// entry is WHILE (the optional leading `shared` was already consumed by
// parseStatement, which passes isShared through).
func (p *Parser) parseWhileStatement(isShared bool) ast.Statement {
	tok := p.curToken // WHILE
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	body := p.parseSingleStatementOrBlock()
	return &ast.WhileStatement{StmtBase: ast.StmtBase{Token: tok}, Cond: cond, Body: body, IsShared: isShared}
}

// parseForStatement parses both the C-style form
// (`for var i: int = 0; i < 10; i++ => BODY`) and the for-each form
// (`for var x in iterable => BODY`), each optionally prefixed with
// `shared` (already consumed by parseStatement, which passes isShared
// through). curToken on entry is FOR.
func (p *Parser) parseForStatement(isShared bool) ast.Statement {
	tok := p.curToken // FOR
	if !p.expectPeek(token.VAR) {
		return nil
	}
	varTok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	if p.peekTokenIs(token.IN) {
		p.nextToken() // consume IN
		p.nextToken()
		iterable := p.parseExpression(LOWEST)
		if iterable == nil {
			return nil
		}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		p.nextToken()
		body := p.parseSingleStatementOrBlock()
		return &ast.ForEachStatement{StmtBase: ast.StmtBase{Token: tok}, VarName: name, Iterable: iterable, Body: body, IsShared: isShared}
	}

	initDecl := &ast.VarDeclStatement{StmtBase: ast.StmtBase{Token: varTok}, Name: name}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		te := p.parseTypeExpr()
		if te == nil {
			return nil
		}
		initDecl.TypeExpr = te
	}
	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		val := p.parseExpression(ASSIGN_PREC)
		if val == nil {
			return nil
		}
		initDecl.Value, initDecl.MemQual = unwrapDeclMemQual(val)
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	p.nextToken()
	post := p.parseExpressionStatement()
	if post == nil {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	body := p.parseSingleStatementOrBlock()
	return &ast.ForStatement{StmtBase: ast.StmtBase{Token: tok}, Init: initDecl, Cond: cond, Post: post, Body: body, IsShared: isShared}
}

// parseImportStatement parses `import "path" [as alias]` (spec.md C8).
func (p *Parser) parseImportStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.STRING) {
		return nil
	}
	imp := &ast.ImportStatement{StmtBase: ast.StmtBase{Token: tok}, Path: p.curToken.Literal}

	if p.peekTokenIs(token.AS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		imp.Alias = p.curToken.Lexeme
	}
	return imp
}

// parseTypeDeclStatement parses `type NAME = opaque` or `type NAME = TYPE`
// (spec.md §4.4, §6.1: `type FILE = opaque`, `type Comparator = native
// fn(a: *void, b: *void): int`).
func (p *Parser) parseTypeDeclStatement() ast.Statement {
	tok := p.curToken // TYPE
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	if p.peekTokenIs(token.OPAQUE) {
		p.nextToken()
		return &ast.TypeDeclStatement{StmtBase: ast.StmtBase{Token: tok}, Name: name, IsOpaque: true}
	}

	p.nextToken()
	te := p.parseTypeExpr()
	if te == nil {
		return nil
	}
	return &ast.TypeDeclStatement{StmtBase: ast.StmtBase{Token: tok}, Name: name, Underlying: te}
}
