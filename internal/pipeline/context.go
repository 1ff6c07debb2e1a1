package pipeline

import (
	"github.com/sindarin-lang/sindarin/internal/arena"
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/symbols"
)

// PipelineContext is threaded through every Processor (lex/parse are fused
// into one streaming pass here, then check, §4's C1-C9): it starts out
// holding only source text and accumulates the artifacts each stage
// produces, the same "one context object gains fields as it moves through
// the pipeline" shape as the teacher's compiler front end.
type PipelineContext struct {
	SourceCode string
	Filename   string

	Sink *diagnostics.Sink

	AstRoot *ast.Module

	// Globals starts out holding the prelude plus any resolved imports'
	// public signatures, seeded by the import resolver (C8) before the
	// analyzer (C7) runs; the analyzer then overwrites it with the checked
	// module's own top-level scope (which still chains to everything it
	// held on entry), so a module importing this one sees both
	// (spec.md §4.7.10).
	Globals *symbols.Table

	// Arena is the single Arena every stage's node/scope accounting is
	// charged against (spec.md §3.8, C1): ParserProcessor hands it to its
	// Parser and AnalyzerProcessor hands it to its Walker, so one
	// Arena.MaxBytes ceiling spans the whole compilation rather than each
	// stage getting its own. Zero value (no MaxBytes set) is unlimited.
	Arena *arena.Arena
}

// NewPipelineContext constructs a context over source text, ready for a
// Processor chain. Filename defaults to "<input>" when empty, matching
// diagnostics rendered for in-memory snippets (tests, for example) that
// have no backing file.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Filename:   "<input>",
		Sink:       diagnostics.NewSink(),
		Arena:      arena.New(),
	}
}

// Processor is one stage of the pipeline: it consumes and returns a
// *PipelineContext, so a stage can replace the context outright (rare) or,
// far more commonly, mutate it in place and return it unchanged.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
