package modules

import (
	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/pipeline"
	"github.com/sindarin-lang/sindarin/internal/symbols"
)

// ImportResolverProcessor is the pipeline stage implementing C8 (spec.md
// §4.7.10, §4.8): it runs after parsing and before the analyzer, resolving
// every top-level import statement to its exported function signatures and
// layering them (plus the runtime-ABI prelude already sitting in
// ctx.Globals, see Prelude) into a new outer scope the analyzer's Walker
// will nest its own module scope inside.
type ImportResolverProcessor struct {
	Resolver *Resolver
	// Dir is the importing file's directory, used to resolve a relative
	// import path. Empty for an in-memory snippet with no backing file —
	// a relative import then only resolves against configured search
	// roots.
	Dir string
}

func (ip *ImportResolverProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	imported := symbols.NewTable(ctx.Globals)
	for _, stmt := range ctx.AstRoot.Statements {
		imp, ok := stmt.(*ast.ImportStatement)
		if !ok {
			continue
		}
		resolved, err := ip.Resolver.Resolve(imp.Path, ip.Dir)
		if err != nil {
			ctx.Sink.ErrorAt(diagnostics.CodeImportNotFound, imp.GetToken(), "%s", err.Error())
			continue
		}
		for _, name := range resolved.Exports.AllVisibleNames() {
			sym, _ := resolved.Exports.LookupLocal(name)
			if _, redeclared := imported.Define(sym); redeclared {
				ctx.Sink.ErrorAt(diagnostics.CodeRedeclaredSymbol, imp.GetToken(),
					"'%s' is imported from more than one module", name)
			}
		}
	}
	ctx.Globals = imported
	return ctx
}
