package lexer

import (
	"unicode/utf8"

	"github.com/sindarin-lang/sindarin/internal/token"
)

// Sindarin strings interpolate with `${expr}`. The lexer never builds one
// combined literal the way a simpler scanner might: it emits a sequence of
// tokens — INTERP_STRING_START, the tokens of the embedded expression,
// INTERP_STRING_MID (if another `${` follows), more expression tokens,
// ..., INTERP_STRING_END — so the parser can Pratt-parse each embedded
// expression exactly like any other (spec.md §3.1, §3.3 "interpolated
// string"). A string with no interpolation at all degenerates to a single
// plain STRING token. This generalizes the teacher's
// readStringWithInterpolation, which instead returns one combined literal
// with `${...}` markers left in place for a later re-lexing pass; emitting
// the sub-token stream directly removes the need for that second pass.

// readStringToken is called with l.ch == '"' (the opening quote).
func (l *Lexer) readStringToken() token.Token {
	line, col := l.line, l.column
	l.readChar() // consume opening quote
	text, hitInterp, ok := l.readStringSegment()
	if !ok {
		return token.Token{Type: token.ILLEGAL, Lexeme: text, Literal: "unterminated string literal", File: l.file, Line: line, Column: col}
	}
	if !hitInterp {
		return token.Token{Type: token.STRING, Lexeme: text, Literal: text, File: l.file, Line: line, Column: col}
	}
	l.interpStack = append(l.interpStack, 0)
	return token.Token{Type: token.INTERP_STRING_START, Lexeme: text, Literal: text, File: l.file, Line: line, Column: col}
}

// continueInterpolatedString is called right after the `}` closing an
// embedded expression has been consumed and popped off interpStack.
func (l *Lexer) continueInterpolatedString() token.Token {
	line, col := l.line, l.column
	text, hitInterp, ok := l.readStringSegment()
	if !ok {
		return token.Token{Type: token.ILLEGAL, Lexeme: text, Literal: "unterminated string literal", File: l.file, Line: line, Column: col}
	}
	if hitInterp {
		l.interpStack = append(l.interpStack, 0)
		return token.Token{Type: token.INTERP_STRING_MID, Lexeme: text, Literal: text, File: l.file, Line: line, Column: col}
	}
	return token.Token{Type: token.INTERP_STRING_END, Lexeme: text, Literal: text, File: l.file, Line: line, Column: col}
}

// readStringSegment scans text up to (and consuming) either the closing
// `"` or an unconsumed `${` boundary. It is called with l.ch positioned at
// the first character of the segment (just past the opening `"` or the
// interpolation-closing `}`). Escapes are resolved into the returned text.
// ok is false on EOF before a terminator (CodeUnterminatedStr, spec.md §7).
func (l *Lexer) readStringSegment() (text string, hitInterp bool, ok bool) {
	var result []byte
	buf := make([]byte, 4)

	for {
		if l.ch == 0 {
			return string(result), false, false
		}
		if l.ch == '"' {
			l.readChar() // consume closing quote
			return string(result), false, true
		}
		if l.ch == '$' && l.peekChar() == '{' {
			l.readChar() // $
			l.readChar() // {
			return string(result), true, true
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return string(result), false, false
			}
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '0':
				result = append(result, 0)
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			case '$':
				result = append(result, '$')
			case 'u':
				if val, ok := l.readHexEscape(4); ok {
					n := utf8.EncodeRune(buf, rune(val))
					result = append(result, buf[:n]...)
				} else {
					result = append(result, '\\', 'u')
				}
			default:
				result = append(result, '\\')
				n := utf8.EncodeRune(buf, l.ch)
				result = append(result, buf[:n]...)
			}
			l.readChar()
			continue
		}
		n := utf8.EncodeRune(buf, l.ch)
		result = append(result, buf[:n]...)
		l.readChar()
	}
}

// readHexEscape scans n hex digits after `\u`/`\U` and decodes them as a
// single code point (spec.md §7's CodeInvalidEscape covers malformed
// input; returning ok=false here lets the caller fall back to emitting
// the escape literally rather than failing the whole token).
func (l *Lexer) readHexEscape(n int) (int64, bool) {
	var val int64
	for i := 0; i < n; i++ {
		l.readChar()
		d, ok := hexDigitValue(l.ch)
		if !ok {
			return 0, false
		}
		val = val*16 + int64(d)
	}
	return val, true
}

func hexDigitValue(ch rune) (int64, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int64(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int64(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int64(ch-'A') + 10, true
	default:
		return 0, false
	}
}
