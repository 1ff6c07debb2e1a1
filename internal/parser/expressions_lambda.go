package parser

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/token"
)

// parseLambda parses `fn(params): RET => BODY` with either an expression
// body or a statement body: a `{ ... }` block, or a single statement such as
// `=> return x` (spec.md §3.3 "lambda", §3.4). The parser accepts a lambda
// with parameter types or the return type left out; the checker reports an
// omitted parameter type as an error and treats an omitted return type as
// void (see analyzer.VisitLambdaExpr).
func (p *Parser) parseLambda() ast.Expression {
	tok := p.curToken // FN

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	if params == nil && !p.peekTokenIs(token.COLON) && !p.peekTokenIs(token.ARROW) {
		return nil
	}

	lam := &ast.LambdaExpr{ExprBase: ast.ExprBase{Token: tok}, Params: params}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume ':'
		p.nextToken()
		rt := p.parseTypeExpr()
		if rt == nil {
			return nil
		}
		lam.ReturnType = rt
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume '=>'
		p.nextToken()
		if p.curTokenIs(token.LBRACE) || isStatementLeadToken(p.curToken.Type) {
			lam.BlockBody = p.parseSingleStatementOrBlock()
			return lam
		}
		body := p.parseExpression(LOWEST)
		if body == nil {
			return nil
		}
		lam.ExprBody = body
		return lam
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lam.BlockBody = p.parseBlockStatements()
	return lam
}

// parseParamList parses the comma-separated parameter list of a lambda or
// function declaration; curToken on entry is '(' and on return is ')'.
// Each parameter is `name[: Type][as val|as ref]` (spec.md §3.4, §4.4);
// type and memory qualifier are both optional at parse time. Nothing fills
// in an omitted type later: the checker rejects a parameter without one.
func (p *Parser) parseParamList() []ast.Param {
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	var params []ast.Param
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	first, ok := p.parseOneParam()
	if !ok {
		return nil
	}
	params = append(params, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		next, ok := p.parseOneParam()
		if !ok {
			return nil
		}
		params = append(params, next)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseOneParam() (ast.Param, bool) {
	if !p.curTokenIs(token.IDENT) {
		p.errorf(p.curToken, "expected parameter name, got %s", p.curToken.Type)
		return ast.Param{}, false
	}
	param := ast.Param{Name: p.curToken.Lexeme, Token: p.curToken}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume ':'
		p.nextToken()
		te := p.parseTypeExpr()
		if te == nil {
			return ast.Param{}, false
		}
		param.TypeExpr = te
	}

	if p.peekTokenIs(token.AS) {
		p.nextToken() // consume 'as'
		if p.peekTokenIs(token.VAL) {
			p.nextToken()
			param.MemQual = ast.MemAsVal
		} else if p.peekTokenIs(token.REF) {
			p.nextToken()
			param.MemQual = ast.MemAsRef
		} else {
			p.errorf(p.peekToken, "expected 'val' or 'ref' after 'as'")
			return ast.Param{}, false
		}
	}

	return param, true
}

// parseInterpolatedString builds an InterpStringExpr out of the lexer's
// INTERP_STRING_START/MID/END token stream (internal/lexer/lexer_strings.go):
// curToken on entry is INTERP_STRING_START. Each segment's text becomes a
// StringLiteral part (omitted when empty, so `"${a}${b}"` doesn't carry
// spurious empty segments), interleaved with the embedded expression parsed
// at LOWEST precedence.
func (p *Parser) parseInterpolatedString() ast.Expression {
	tok := p.curToken
	result := &ast.InterpStringExpr{ExprBase: ast.ExprBase{Token: tok}}

	for {
		seg := p.curToken
		if seg.Literal != "" {
			result.Parts = append(result.Parts, &ast.StringLiteral{ExprBase: ast.ExprBase{Token: seg}, Value: seg.Literal})
		}

		if seg.Type == token.INTERP_STRING_END {
			return result
		}

		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		result.Parts = append(result.Parts, expr)

		p.nextToken() // advance onto the MID/END token the lexer emitted after '}'
		if !p.curTokenIs(token.INTERP_STRING_MID) && !p.curTokenIs(token.INTERP_STRING_END) {
			p.errorf(p.curToken, "expected continuation of interpolated string, got %s", p.curToken.Type)
			return nil
		}
	}
}
