package parser

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/token"
)

// parseArrayLiteral parses `{e1, e2, ...}` (spec.md §3.3 "array literal").
// Elements may span multiple lines; the leading '{' bumps parenDepth so the
// lexer's newline tokens are swallowed by rawNext until the matching '}'.
func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	lit := &ast.ArrayLiteralExpr{ExprBase: ast.ExprBase{Token: tok}}
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return lit
	}

	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	lit.Elements = append(lit.Elements, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume ','
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		lit.Elements = append(lit.Elements, el)
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return lit
}

// parseCallExpression parses `callee(args...)` (spec.md §3.3 "call"). left
// is the already-parsed callee; the curToken on entry is '('.
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	call := &ast.CallExpr{ExprBase: ast.ExprBase{Token: tok}, Callee: left}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return call
	}

	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	call.Args = append(call.Args, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return call
}

// parseIndexOrSliceExpression parses `object[index]` and the slice forms
// `object[start..end]` / `object[start..end:step]` (spec.md §3.3 "array
// index", "array slice"). Any clause of a slice may be omitted (e.g.
// `a[..5]`, `a[2..]`, `a[..]`).
func (p *Parser) parseIndexOrSliceExpression(left ast.Expression) ast.Expression {
	tok := p.curToken // '['
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	if p.peekTokenIs(token.DOT_DOT) {
		p.nextToken() // consume '..', curToken is now '..'
		return p.finishSliceExpression(tok, left, nil)
	}

	p.nextToken()
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}

	if p.peekTokenIs(token.DOT_DOT) {
		p.nextToken() // curToken is now '..'
		return p.finishSliceExpression(tok, left, first)
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpr{ExprBase: ast.ExprBase{Token: tok}, Object: left, Index: first}
}

// finishSliceExpression is called with curToken == DOT_DOT and start already
// parsed (or nil, for `[..end]`).
func (p *Parser) finishSliceExpression(tok token.Token, object, start ast.Expression) ast.Expression {
	sl := &ast.SliceExpr{ExprBase: ast.ExprBase{Token: tok}, Object: object, Start: start}

	if !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		end := p.parseExpression(LOWEST)
		if end == nil {
			return nil
		}
		sl.End = end
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume ':'
		p.nextToken()
		step := p.parseExpression(LOWEST)
		if step == nil {
			return nil
		}
		sl.Step = step
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return sl
}

// parseMemberOrStaticCall parses `object.property` (spec.md §3.3 "member
// access"). The surface syntax for a static call on a named type
// (`Type.method(args)`) is identical to an instance member-call
// (`value.method(args)`); the parser always produces a MemberExpr wrapped
// in a CallExpr and leaves the static-vs-instance distinction to the
// checker, which has the type information to tell a type name from a
// value (spec.md §4.7.1's "static-call" typing rule).
func (p *Parser) parseMemberOrStaticCall(left ast.Expression) ast.Expression {
	tok := p.curToken // '.'
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.MemberExpr{ExprBase: ast.ExprBase{Token: tok}, Object: left, Property: p.curToken.Lexeme}
}
