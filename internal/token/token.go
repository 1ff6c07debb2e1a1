// Package token defines the lexical token kinds produced by the Sindarin
// lexer and consumed by the parser.
package token

// TokenType classifies a Token. It is a small closed enum, not a string,
// so switches over it compile to jump tables.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	NEWLINE

	// Identifiers and literals.
	IDENT
	INT
	LONG
	FLOAT
	CHAR
	STRING
	INTERP_STRING_START
	INTERP_STRING_MID
	INTERP_STRING_END
	TRUE
	FALSE
	NIL

	// Keywords.
	VAR
	FN
	NATIVE
	PRIVATE
	SHARED
	AS
	VAL
	REF
	IF
	ELSE
	WHILE
	FOR
	IN
	BREAK
	CONTINUE
	RETURN
	IMPORT
	TYPE
	OPAQUE

	// Type keywords (interop scalars + primitives double as identifiers
	// in type position; these are the ones the lexer recognizes directly).
	INT_T
	LONG_T
	DOUBLE_T
	FLOAT_T
	CHAR_T
	BOOL_T
	BYTE_T
	STRING_T
	VOID_T
	ANY_T
	INT32_T
	UINT_T
	UINT32_T

	// Operators and punctuation.
	ASSIGN
	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	PLUS_ASSIGN
	MINUS_ASSIGN
	ASTERISK_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	INCR
	DECR
	EQ
	NOT_EQ
	LT
	GT
	LTE
	GTE
	AND
	OR
	BANG
	ARROW    // =>
	DOT_DOT  // ..
	COLON
	COMMA
	DOT
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMICOLON
)

var keywords = map[string]TokenType{
	"var":      VAR,
	"fn":       FN,
	"native":   NATIVE,
	"private":  PRIVATE,
	"shared":   SHARED,
	"as":       AS,
	"val":      VAL,
	"ref":      REF,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"import":   IMPORT,
	"type":     TYPE,
	"opaque":   OPAQUE,
	"true":     TRUE,
	"false":    FALSE,
	"nil":      NIL,

	"int":    INT_T,
	"long":   LONG_T,
	"double": DOUBLE_T,
	"float":  FLOAT_T,
	"char":   CHAR_T,
	"bool":   BOOL_T,
	"byte":   BYTE_T,
	"string": STRING_T,
	"void":   VOID_T,
	"any":    ANY_T,
	"int32":  INT32_T,
	"uint":   UINT_T,
	"uint32": UINT32_T,
}

// LookupIdent classifies a scanned identifier as a keyword or a plain IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Token is a single lexical unit. Lexeme and Literal are byte-range views
// into the arena-owned source buffer; the lexer never copies source text
// except where escape processing forces it (e.g. string literal content).
type Token struct {
	Type    TokenType
	Lexeme  string // exact source text
	Literal string // processed value (escapes resolved, quotes stripped)
	File    string
	Line    int
	Column  int
}

// String renders a token for diagnostics and tests.
func (t Token) String() string {
	return t.Lexeme
}
