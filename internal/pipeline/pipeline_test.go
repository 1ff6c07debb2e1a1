package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sindarin-lang/sindarin/internal/analyzer"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/modules"
	"github.com/sindarin-lang/sindarin/internal/parser"
	"github.com/sindarin-lang/sindarin/internal/pipeline"
)

// TestFullPipelineAcceptsValidProgram exercises the complete C3/C4 + C8 +
// C7 chain (spec.md §4) end to end: parse, resolve an import, check —
// against a program with no errors.
func TestFullPipelineAcceptsValidProgram(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "math.sn"), []byte(
		`fn square(x: int): int => return x * x`), 0o644); err != nil {
		t.Fatalf("writing math.sn: %v", err)
	}

	resolver := modules.NewResolver(nil, (&analyzer.AnalyzerProcessor{}).Process)
	ctx := pipeline.NewPipelineContext(`
import "math.sn"

fn main(): int => return square(4)
`)
	ctx.Filename = "main.sn"
	ctx.Globals = modules.Prelude()

	p := pipeline.New(
		&parser.ParserProcessor{},
		&modules.ImportResolverProcessor{Resolver: resolver, Dir: dir},
		&analyzer.AnalyzerProcessor{},
	)
	ctx = p.Run(ctx)

	if ctx.Sink.HadError() {
		for _, d := range ctx.Sink.Diagnostics() {
			t.Logf("diagnostic: %s", d.String())
		}
		t.Fatalf("expected no errors")
	}
}

// TestFullPipelineReportsUndefinedImport confirms an unresolved import
// path surfaces CodeImportNotFound rather than a silent pass-through.
func TestFullPipelineReportsUndefinedImport(t *testing.T) {
	resolver := modules.NewResolver(nil, (&analyzer.AnalyzerProcessor{}).Process)
	ctx := pipeline.NewPipelineContext(`import "does_not_exist.sn"`)
	ctx.Filename = "main.sn"
	ctx.Globals = modules.Prelude()

	p := pipeline.New(
		&parser.ParserProcessor{},
		&modules.ImportResolverProcessor{Resolver: resolver, Dir: t.TempDir()},
		&analyzer.AnalyzerProcessor{},
	)
	ctx = p.Run(ctx)

	if !ctx.Sink.HadError() {
		t.Fatalf("expected an error for an unresolved import")
	}
	found := false
	for _, d := range ctx.Sink.Diagnostics() {
		if d.Code == diagnostics.CodeImportNotFound {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a %s diagnostic", diagnostics.CodeImportNotFound)
	}
}
