package parser

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/token"
)

var primitiveTypeTokens = map[token.TokenType]string{
	token.INT_T:    "int",
	token.LONG_T:   "long",
	token.DOUBLE_T: "double",
	token.FLOAT_T:  "float",
	token.CHAR_T:   "char",
	token.BOOL_T:   "bool",
	token.BYTE_T:   "byte",
	token.STRING_T: "string",
	token.VOID_T:   "void",
	token.ANY_T:    "any",
	token.INT32_T:  "int32",
	token.UINT_T:   "uint",
	token.UINT32_T: "uint32",
	token.NIL:      "nil",
}

// parseTypeExpr parses a type (spec.md §4.4: "Types: primitives, T[],
// fn(T1, T2): R, *T, type identifiers, plus the interop set"). curToken on
// entry is the first token of the type; on return curToken is the last
// token consumed. Postfix `[]` (possibly repeated, e.g. `int[][]`) and a
// leading `*` are both handled here so nested forms like `*int[]` parse
// without a separate grammar rule.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	var base ast.TypeExpr

	switch {
	case p.curTokenIs(token.ASTERISK):
		tok := p.curToken
		p.nextToken()
		inner := p.parseTypeExpr()
		if inner == nil {
			return nil
		}
		return &ast.PointerTypeExpr{TypeExprBase: ast.TypeExprBase{Token: tok}, Base: inner}

	case p.curTokenIs(token.NATIVE):
		p.nextToken() // consume 'native'
		if !p.curTokenIs(token.FN) {
			p.errorf(p.curToken, "expected 'fn' after 'native', got %s", p.curToken.Type)
			return nil
		}
		base = p.parseFunctionTypeExpr()
		if ft, ok := base.(*ast.FunctionTypeExpr); ok {
			ft.IsNative = true
		}

	case p.curTokenIs(token.FN):
		base = p.parseFunctionTypeExpr()

	case p.curTokenIs(token.IDENT):
		tok := p.curToken
		base = &ast.NamedTypeExpr{TypeExprBase: ast.TypeExprBase{Token: tok}, Name: tok.Lexeme}

	default:
		if name, ok := primitiveTypeTokens[p.curToken.Type]; ok {
			tok := p.curToken
			base = &ast.PrimitiveTypeExpr{TypeExprBase: ast.TypeExprBase{Token: tok}, Name: name}
		} else {
			p.errorf(p.curToken, "expected a type, got %s", p.curToken.Type)
			return nil
		}
	}

	if base == nil {
		return nil
	}

	for p.peekTokenIs(token.LBRACKET) {
		lb := p.peekToken
		p.nextToken() // consume '['
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		base = &ast.ArrayTypeExpr{TypeExprBase: ast.TypeExprBase{Token: lb}, Elem: base}
	}
	return base
}

// parseFunctionTypeExpr parses `fn(T1, T2): R`; curToken on entry is FN.
// A parameter may also be written with a name, `fn(a: T1, b: T2): R`; the
// name is skipped and only the type is kept.
func (p *Parser) parseFunctionTypeExpr() ast.TypeExpr {
	tok := p.curToken
	ft := &ast.FunctionTypeExpr{TypeExprBase: ast.TypeExprBase{Token: tok}}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	skipParamName := func() {
		if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
			p.nextToken() // consume the name
			p.nextToken() // consume ':'
		}
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		skipParamName()
		first := p.parseTypeExpr()
		if first == nil {
			return nil
		}
		ft.Params = append(ft.Params, first)

		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			skipParamName()
			pt := p.parseTypeExpr()
			if pt == nil {
				return nil
			}
			ft.Params = append(ft.Params, pt)
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		rt := p.parseTypeExpr()
		if rt == nil {
			return nil
		}
		ft.Return = rt
	}
	return ft
}
