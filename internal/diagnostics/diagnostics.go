package diagnostics

import (
	"fmt"
	"io"
	"sort"

	"github.com/sindarin-lang/sindarin/internal/token"
	"github.com/sindarin-lang/sindarin/internal/utils"
)

// Diagnostic is one recorded error or warning (spec.md §4.2, §7).
type Diagnostic struct {
	Code       Code
	Kind       Kind
	File       string
	Line       int
	Message    string
	Suggestion string // optional "did you mean '<name>'?" payload
}

// String renders a diagnostic as "file:line: kind: message [did you mean '<name>'?]".
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Kind, d.Message)
	if d.Suggestion != "" {
		s += fmt.Sprintf(" [did you mean '%s'?]", d.Suggestion)
	}
	return s
}

// Sink accumulates diagnostics for one compilation phase and tracks a
// phase-local had-error flag (spec.md §4.2). A fresh Sink should be created
// per phase if the implementation wants per-phase had-error flags; the
// pipeline (internal/pipeline) instead keeps one Sink for the whole
// compilation and runs every stage regardless of earlier errors.
type Sink struct {
	diags    []Diagnostic
	hadError bool
	store    *SessionStore // optional, see store.go
}

// NewSink constructs an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// WithStore attaches an optional SessionStore that every emitted diagnostic
// is also appended to (SPEC_FULL.md §4.2 ambient addition). Returns the
// Sink for chaining.
func (s *Sink) WithStore(store *SessionStore) *Sink {
	s.store = store
	return s
}

// ErrorAt records an error-kind diagnostic at tok's location.
func (s *Sink) ErrorAt(code Code, tok token.Token, format string, args ...interface{}) {
	s.record(Diagnostic{
		Code:    code,
		Kind:    KindError,
		File:    tok.File,
		Line:    tok.Line,
		Message: fmt.Sprintf(format, args...),
	})
}

// ErrorWithSuggestion records an error-kind diagnostic carrying a spelling
// suggestion, e.g. UndefinedSymbol's "did you mean '<name>'?" (spec.md §4.2).
func (s *Sink) ErrorWithSuggestion(code Code, tok token.Token, suggestion string, format string, args ...interface{}) {
	s.record(Diagnostic{
		Code:       code,
		Kind:       KindError,
		File:       tok.File,
		Line:       tok.Line,
		Message:    fmt.Sprintf(format, args...),
		Suggestion: suggestion,
	})
}

// WarnAt records a warning-kind diagnostic; warnings never set hadError and
// never affect the §6.3 exit code.
func (s *Sink) WarnAt(code Code, tok token.Token, format string, args ...interface{}) {
	s.record(Diagnostic{
		Code:    code,
		Kind:    KindWarning,
		File:    tok.File,
		Line:    tok.Line,
		Message: fmt.Sprintf(format, args...),
	})
}

func (s *Sink) record(d Diagnostic) {
	s.diags = append(s.diags, d)
	if d.Kind == KindError {
		s.hadError = true
	}
	if s.store != nil {
		s.store.Append(d)
	}
}

// HadError reports whether any error-kind diagnostic has been recorded.
func (s *Sink) HadError() bool { return s.hadError }

// ResetHadError clears the had-error flag without discarding recorded
// diagnostics — used at phase boundaries per spec.md §4.2's "phase-local"
// wording when callers want independent per-phase flags from one Sink.
func (s *Sink) ResetHadError() { s.hadError = false }

// Diagnostics returns all recorded diagnostics in emission order.
func (s *Sink) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)
	return out
}

// Render writes every diagnostic, one per line, to w. When color is true,
// the kind label is ANSI-colorized (red for error, yellow for warning) —
// cmd/sindarinc gates color on isatty.IsTerminal(os.Stderr.Fd()), the
// stream it renders to.
func (s *Sink) Render(w io.Writer, color bool) {
	for _, d := range s.diags {
		if color {
			fmt.Fprintln(w, colorize(d))
		} else {
			fmt.Fprintln(w, d.String())
		}
	}
}

func colorize(d Diagnostic) string {
	const (
		red    = "\x1b[31m"
		yellow = "\x1b[33m"
		reset  = "\x1b[0m"
	)
	color := red
	if d.Kind == KindWarning {
		color = yellow
	}
	kind := color + d.Kind.String() + reset
	s := fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, kind, d.Message)
	if d.Suggestion != "" {
		s += fmt.Sprintf(" [did you mean '%s'?]", d.Suggestion)
	}
	return s
}

// SuggestionFor picks the closest in-scope name to target (Levenshtein
// distance <= 2, spec.md §9), or "" if none qualifies. names need not be
// sorted; the closest candidate by distance is returned, ties broken by
// lexical order for determinism.
func SuggestionFor(target string, names []string) string {
	sortedNames := append([]string(nil), names...)
	sort.Strings(sortedNames)
	candidates := utils.FindSimilarNames(target, sortedNames, 2)
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}
