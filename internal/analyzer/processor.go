package analyzer

import (
	"github.com/sindarin-lang/sindarin/internal/pipeline"
)

// AnalyzerProcessor wires the Walker into the pipeline as C7 (spec.md
// §4.7): it runs after parsing and after the import resolver (C8), which
// seeds ctx.Globals with the prelude and any resolved imports' public
// signatures before this stage ever sees the module. This stage then
// overwrites ctx.Globals with the checked module's own top-level scope
// (which still contains everything ctx.Globals held on entry, since that
// table becomes this scope's outer), so a module that imports this one in
// turn sees both.
type AnalyzerProcessor struct{}

func (ap *AnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	w := NewWalker(ctx.Sink, ctx.Globals)
	if ctx.Arena != nil {
		w.SetArena(ctx.Arena)
	}
	w.Check(ctx.AstRoot)
	ctx.Globals = w.Globals()
	return ctx
}
