// Package symbols implements Sindarin's scope chain and arena-context
// tracking (spec.md C6, §3.7). Scopes are modeled the same way the teacher
// models them: not as a separate Scope type layered over a table, but as a
// Table that points at its own lexical parent via an `outer` field.
package symbols

import (
	"github.com/sindarin-lang/sindarin/internal/config"
	"github.com/sindarin-lang/sindarin/internal/token"
	"github.com/sindarin-lang/sindarin/internal/types"
)

// Kind classifies what a Symbol denotes.
type Kind int

const (
	VarSymbol Kind = iota
	ParamSymbol
	FuncSymbol
	TypeSymbol
)

func (k Kind) String() string {
	switch k {
	case VarSymbol:
		return "variable"
	case ParamSymbol:
		return "parameter"
	case FuncSymbol:
		return "function"
	case TypeSymbol:
		return "type"
	default:
		return "symbol"
	}
}

// Symbol is one binding in a Table.
type Symbol struct {
	Name     string
	Type     types.Type
	Kind     Kind
	Modifier config.Modifier // private/shared, meaningful for FuncSymbol (§4.7.4)
	MemQual  types.MemQual   // as val / as ref, meaningful for ParamSymbol (§4.7.5-6)
	Token    token.Token
}
