package parser

import (
	"github.com/sindarin-lang/sindarin/internal/lexer"
	"github.com/sindarin-lang/sindarin/internal/pipeline"
)

// ParserProcessor is the pipeline stage that turns source text into an
// *ast.Module (spec.md C3+C4 fused into one streaming pass: this package's
// Parser pulls tokens from the Lexer on demand rather than materializing a
// separate token-stream artifact between stages, unlike the teacher's
// discrete lexer.NewTokenStream step — the grammar here has no lookahead
// need beyond the one token this Parser already buffers).
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	lex := lexer.New(ctx.SourceCode, ctx.Filename)
	p := New(lex, ctx.Sink, ctx.Filename)
	if ctx.Arena != nil {
		p.SetArena(ctx.Arena)
	}
	ctx.AstRoot = p.ParseProgram()
	return ctx
}
