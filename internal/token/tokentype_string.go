package token

var typeNames = map[TokenType]string{
	ILLEGAL:             "ILLEGAL",
	EOF:                 "EOF",
	NEWLINE:             "NEWLINE",
	IDENT:               "IDENT",
	INT:                 "INT",
	LONG:                "LONG",
	FLOAT:               "FLOAT",
	CHAR:                "CHAR",
	STRING:              "STRING",
	INTERP_STRING_START: "INTERP_STRING_START",
	INTERP_STRING_MID:   "INTERP_STRING_MID",
	INTERP_STRING_END:   "INTERP_STRING_END",
	TRUE:                "true",
	FALSE:               "false",
	NIL:                 "nil",
	VAR:                 "var",
	FN:                  "fn",
	NATIVE:              "native",
	PRIVATE:             "private",
	SHARED:              "shared",
	AS:                  "as",
	VAL:                 "val",
	REF:                 "ref",
	IF:                  "if",
	ELSE:                "else",
	WHILE:               "while",
	FOR:                 "for",
	IN:                  "in",
	BREAK:               "break",
	CONTINUE:            "continue",
	RETURN:              "return",
	IMPORT:              "import",
	TYPE:                "type",
	OPAQUE:              "opaque",
	INT_T:               "int",
	LONG_T:              "long",
	DOUBLE_T:            "double",
	FLOAT_T:             "float",
	CHAR_T:              "char",
	BOOL_T:              "bool",
	BYTE_T:              "byte",
	STRING_T:            "string",
	VOID_T:              "void",
	ANY_T:               "any",
	INT32_T:             "int32",
	UINT_T:              "uint",
	UINT32_T:            "uint32",
	ASSIGN:              "=",
	PLUS:                "+",
	MINUS:               "-",
	ASTERISK:            "*",
	SLASH:               "/",
	PERCENT:             "%",
	PLUS_ASSIGN:         "+=",
	MINUS_ASSIGN:        "-=",
	ASTERISK_ASSIGN:     "*=",
	SLASH_ASSIGN:        "/=",
	PERCENT_ASSIGN:      "%=",
	INCR:                "++",
	DECR:                "--",
	EQ:                  "==",
	NOT_EQ:              "!=",
	LT:                  "<",
	GT:                  ">",
	LTE:                 "<=",
	GTE:                 ">=",
	AND:                 "&&",
	OR:                  "||",
	BANG:                "!",
	ARROW:               "=>",
	DOT_DOT:             "..",
	COLON:               ":",
	COMMA:               ",",
	DOT:                 ".",
	LPAREN:              "(",
	RPAREN:              ")",
	LBRACE:              "{",
	RBRACE:              "}",
	LBRACKET:            "[",
	RBRACKET:            "]",
	SEMICOLON:           ";",
}

// String renders a TokenType for diagnostics ("expected ')', got '+'").
func (tt TokenType) String() string {
	if name, ok := typeNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTypeKeyword reports whether tt can start a primitive type expression.
func IsTypeKeyword(tt TokenType) bool {
	switch tt {
	case INT_T, LONG_T, DOUBLE_T, FLOAT_T, CHAR_T, BOOL_T, BYTE_T, STRING_T,
		VOID_T, ANY_T, INT32_T, UINT_T, UINT32_T:
		return true
	default:
		return false
	}
}
