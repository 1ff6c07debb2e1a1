// Package parser implements Sindarin's recursive-descent, Pratt-style
// expression parser (spec.md §4.4, C4). It mirrors the teacher's parser
// package shape: a prefix/infix function table keyed by token type, curToken/
// peekToken look-ahead, and parser code split by concern across
// expressions_*.go, statements.go and types.go.
package parser

import (
	"github.com/sindarin-lang/sindarin/internal/arena"
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/lexer"
	"github.com/sindarin-lang/sindarin/internal/token"
)

// MaxRecursionDepth bounds parseExpression's recursion so that a
// pathological or adversarial input fails with a diagnostic instead of
// overflowing the Go call stack.
const MaxRecursionDepth = 250

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser consumes a token stream from a Lexer and produces an *ast.Module.
type Parser struct {
	lex  *lexer.Lexer
	sink *diagnostics.Sink
	file string

	curToken  token.Token
	peekToken token.Token

	// parenDepth tracks nesting inside (), [], {} used as an expression
	// delimiter (not a statement block): newlines are insignificant
	// while it is > 0, matching spec.md §4.4's note that a slice/call/
	// array literal may freely span lines.
	parenDepth int

	depth                int
	inRecursionRecovery  bool
	prefixParseFns       map[token.TokenType]prefixParseFn
	infixParseFns        map[token.TokenType]infixParseFn

	// arena accounts every statement/expression node this Parser builds
	// against the compilation's byte ceiling (spec.md §3.8, C1). It
	// defaults to an unlimited Arena; SetArena swaps in a caller-owned one
	// so parsing shares one ceiling with the rest of the pipeline.
	arena *arena.Arena
}

// New creates a Parser over lex, reporting diagnostics to sink.
func New(lex *lexer.Lexer, sink *diagnostics.Sink, file string) *Parser {
	p := &Parser{lex: lex, sink: sink, file: file, arena: arena.New()}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerExpressionFns()

	// Prime curToken/peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// SetArena swaps in a caller-owned Arena (spec.md §3.8, C1), so this
// Parser's node accounting shares the caller's allocation ceiling instead
// of the unlimited one New sets up by default.
func (p *Parser) SetArena(a *arena.Arena) { p.arena = a }

// trackAlloc charges one AST node's construction against p.arena, raising
// CodeAllocationExhausted once the configured ceiling (Arena.MaxBytes) is
// exceeded. T sizes the accounting entry; the node itself is never stored
// in arena memory (see arena.Track).
func trackAlloc[T any](p *Parser) {
	if err := arena.Track[T](p.arena); err != nil {
		p.sink.ErrorAt(diagnostics.CodeAllocationExhausted, p.curToken,
			"compilation exceeded its configured arena allocation ceiling")
	}
}

func (p *Parser) rawNext() token.Token {
	for {
		tok := p.lex.NextToken()
		if p.parenDepth > 0 && tok.Type == token.NEWLINE {
			continue
		}
		return tok
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.rawNext()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.TokenType) bool { return p.peekToken.Type == tt }

// expectPeek advances past peekToken if it has type tt, else reports a
// parse error and leaves the cursor in place.
func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken, "expected %s, got %s", tt, p.peekToken.Type)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	p.sink.ErrorAt(diagnostics.CodeParseError, tok, format, args...)
}

func (p *Parser) noPrefixParseFnError(tt token.TokenType) {
	p.errorf(p.curToken, "unexpected token %s", tt)
}

// skipToStatementBoundary implements spec.md §4.4's error recovery: "the
// next statement boundary (newline at current indent or closing
// delimiter)".
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.NEWLINE) &&
		!p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// skipStatementSeparators consumes any run of NEWLINE/SEMICOLON tokens
// between statements.
func (p *Parser) skipStatementSeparators() {
	for p.curTokenIs(token.NEWLINE) || p.curTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// ParseProgram is the parser's public entry point (spec.md §4.4: "The
// public entry returns a Module").
func (p *Parser) ParseProgram() *ast.Module {
	mod := &ast.Module{Filename: p.file}

	p.skipStatementSeparators()
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			mod.Statements = append(mod.Statements, stmt)
			p.nextToken() // step past the statement's last token
		} else {
			p.skipToStatementBoundary()
		}
		p.skipStatementSeparators()
	}
	return mod
}
