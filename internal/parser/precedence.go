package parser

import "github.com/sindarin-lang/sindarin/internal/token"

// Precedence levels for the Pratt expression parser (spec.md §4.4:
// "Recursive-descent with operator precedence for binary expressions"),
// organized the way the teacher's parser orders its own table from LOWEST
// to CALL.
const (
	LOWEST int = iota
	ASSIGN_PREC
	OR_PREC
	AND_PREC
	EQUALITY_PREC
	COMPARISON_PREC
	SUM_PREC
	PRODUCT_PREC
	PREFIX_PREC
	AS_PREC
	CALL_PREC
)

var precedences = map[token.TokenType]int{
	token.ASSIGN:          ASSIGN_PREC,
	token.PLUS_ASSIGN:     ASSIGN_PREC,
	token.MINUS_ASSIGN:    ASSIGN_PREC,
	token.ASTERISK_ASSIGN: ASSIGN_PREC,
	token.SLASH_ASSIGN:    ASSIGN_PREC,
	token.PERCENT_ASSIGN:  ASSIGN_PREC,

	token.OR:  OR_PREC,
	token.AND: AND_PREC,

	token.EQ:     EQUALITY_PREC,
	token.NOT_EQ: EQUALITY_PREC,

	token.LT:  COMPARISON_PREC,
	token.GT:  COMPARISON_PREC,
	token.LTE: COMPARISON_PREC,
	token.GTE: COMPARISON_PREC,

	token.PLUS:  SUM_PREC,
	token.MINUS: SUM_PREC,

	token.ASTERISK: PRODUCT_PREC,
	token.SLASH:    PRODUCT_PREC,
	token.PERCENT:  PRODUCT_PREC,

	token.AS: AS_PREC,

	token.LPAREN:   CALL_PREC,
	token.LBRACKET: CALL_PREC,
	token.DOT:      CALL_PREC,
	token.INCR:     CALL_PREC,
	token.DECR:     CALL_PREC,
}
