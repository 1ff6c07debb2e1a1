package parser

import (
	"strconv"

	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/token"
)

func (p *Parser) registerExpressionFns() {
	p.prefixParseFns[token.INT] = p.parseIntLiteral
	p.prefixParseFns[token.LONG] = p.parseLongLiteral
	p.prefixParseFns[token.FLOAT] = p.parseFloatLikeLiteral
	p.prefixParseFns[token.CHAR] = p.parseCharLiteral
	p.prefixParseFns[token.STRING] = p.parseStringLiteral
	p.prefixParseFns[token.TRUE] = p.parseBoolLiteral
	p.prefixParseFns[token.FALSE] = p.parseBoolLiteral
	p.prefixParseFns[token.NIL] = p.parseNilLiteral
	p.prefixParseFns[token.IDENT] = p.parseIdentifier
	p.prefixParseFns[token.LPAREN] = p.parseGroupedExpression
	p.prefixParseFns[token.LBRACE] = p.parseArrayLiteral
	p.prefixParseFns[token.MINUS] = p.parseUnaryExpression
	p.prefixParseFns[token.BANG] = p.parseUnaryExpression
	p.prefixParseFns[token.INCR] = p.parsePrefixIncDec
	p.prefixParseFns[token.DECR] = p.parsePrefixIncDec
	p.prefixParseFns[token.FN] = p.parseLambda
	p.prefixParseFns[token.INTERP_STRING_START] = p.parseInterpolatedString

	p.infixParseFns[token.PLUS] = p.parseBinaryExpression
	p.infixParseFns[token.MINUS] = p.parseBinaryExpression
	p.infixParseFns[token.ASTERISK] = p.parseBinaryExpression
	p.infixParseFns[token.SLASH] = p.parseBinaryExpression
	p.infixParseFns[token.PERCENT] = p.parseBinaryExpression
	p.infixParseFns[token.EQ] = p.parseBinaryExpression
	p.infixParseFns[token.NOT_EQ] = p.parseBinaryExpression
	p.infixParseFns[token.LT] = p.parseBinaryExpression
	p.infixParseFns[token.GT] = p.parseBinaryExpression
	p.infixParseFns[token.LTE] = p.parseBinaryExpression
	p.infixParseFns[token.GTE] = p.parseBinaryExpression
	p.infixParseFns[token.AND] = p.parseBinaryExpression
	p.infixParseFns[token.OR] = p.parseBinaryExpression
	p.infixParseFns[token.ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.PLUS_ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.MINUS_ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.ASTERISK_ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.SLASH_ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.PERCENT_ASSIGN] = p.parseAssignExpression
	p.infixParseFns[token.LPAREN] = p.parseCallExpression
	p.infixParseFns[token.LBRACKET] = p.parseIndexOrSliceExpression
	p.infixParseFns[token.DOT] = p.parseMemberOrStaticCall
	p.infixParseFns[token.INCR] = p.parsePostfixIncDec
	p.infixParseFns[token.DECR] = p.parsePostfixIncDec
	p.infixParseFns[token.AS] = p.parseAsExpression
}

// parseExpression is the Pratt-parser driver (spec.md §4.4). It bounds
// recursion (MaxRecursionDepth) so a pathological nesting fails with a
// diagnostic instead of a stack overflow.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	trackAlloc[ast.ExprBase](p)
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		if !p.inRecursionRecovery {
			p.errorf(p.curToken, "expression too complex: recursion depth limit exceeded")
			p.inRecursionRecovery = true
		}
		p.skipToStatementBoundary()
		p.inRecursionRecovery = false
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 0, 64)
	if err != nil {
		p.errorf(tok, "invalid integer literal %q", tok.Lexeme)
		return nil
	}
	return &ast.IntLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: v}
}

func (p *Parser) parseLongLiteral() ast.Expression {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 0, 64)
	if err != nil {
		p.errorf(tok, "invalid long literal %q", tok.Lexeme)
		return nil
	}
	return &ast.LongLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: v}
}

// parseFloatLikeLiteral handles both `double` (default) and `float`
// (explicit `f` suffix) literals; the lexer already tells them apart by
// whether the trailing suffix was consumed, which only shows up in
// Lexeme, so re-derive it here.
func (p *Parser) parseFloatLikeLiteral() ast.Expression {
	tok := p.curToken
	if len(tok.Lexeme) > 0 {
		last := tok.Lexeme[len(tok.Lexeme)-1]
		if last == 'f' || last == 'F' {
			v, err := strconv.ParseFloat(tok.Literal, 32)
			if err != nil {
				p.errorf(tok, "invalid float literal %q", tok.Lexeme)
				return nil
			}
			return &ast.FloatLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: float32(v)}
		}
	}
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok, "invalid double literal %q", tok.Lexeme)
		return nil
	}
	return &ast.DoubleLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: v}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	tok := p.curToken
	r := []rune(tok.Literal)
	if len(r) != 1 {
		p.errorf(tok, "invalid character literal %q", tok.Lexeme)
		return nil
	}
	return &ast.CharLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: r[0]}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	return &ast.StringLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: tok.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.curToken
	return &ast.BoolLiteral{ExprBase: ast.ExprBase{Token: tok}, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	tok := p.curToken
	return &ast.NilLiteral{ExprBase: ast.ExprBase{Token: tok}}
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.curToken
	return &ast.Identifier{ExprBase: ast.ExprBase{Token: tok}, Name: tok.Lexeme}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	p.nextToken() // consume '('
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.curToken
	op := tok.Type
	p.nextToken()
	operand := p.parseExpression(PREFIX_PREC)
	if operand == nil {
		return nil
	}
	return &ast.UnaryExpr{ExprBase: ast.ExprBase{Token: tok}, Op: op, Operand: operand}
}

func (p *Parser) parsePrefixIncDec() ast.Expression {
	tok := p.curToken
	op := tok.Type
	p.nextToken()
	operand := p.parseExpression(PREFIX_PREC)
	if operand == nil {
		return nil
	}
	return &ast.IncDecExpr{ExprBase: ast.ExprBase{Token: tok}, Op: op, Operand: operand, Prefix: true}
}

func (p *Parser) parsePostfixIncDec(left ast.Expression) ast.Expression {
	tok := p.curToken
	return &ast.IncDecExpr{ExprBase: ast.ExprBase{Token: tok}, Op: tok.Type, Operand: left, Prefix: false}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Type
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpr{ExprBase: ast.ExprBase{Token: tok}, Op: op, Left: left, Right: right}
}

func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Type
	// Right-associative: `a = b = c` parses as `a = (b = c)`.
	p.nextToken()
	value := p.parseExpression(ASSIGN_PREC - 1)
	if value == nil {
		return nil
	}
	return &ast.AssignExpr{ExprBase: ast.ExprBase{Token: tok}, Op: op, Target: left, Value: value}
}

func (p *Parser) parseAsExpression(left ast.Expression) ast.Expression {
	tok := p.curToken // AS
	if p.peekTokenIs(token.VAL) {
		p.nextToken()
		return &ast.AsValExpr{ExprBase: ast.ExprBase{Token: tok}, Operand: left}
	}
	if p.peekTokenIs(token.REF) {
		p.nextToken()
		return &ast.AsRefExpr{ExprBase: ast.ExprBase{Token: tok}, Operand: left}
	}
	p.errorf(p.peekToken, "expected 'val' or 'ref' after 'as'")
	return nil
}
