package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sindarin-lang/sindarin/internal/ast"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/parser"
	"github.com/sindarin-lang/sindarin/internal/pipeline"
	"github.com/sindarin-lang/sindarin/internal/symbols"
)

// Resolved is one imported module's outcome: the symbols it exports
// (its top-level, non-private function signatures, §4.7.10) and the
// diagnostics produced while parsing and checking it.
type Resolved struct {
	AbsPath string
	Exports *symbols.Table
	Sink    *diagnostics.Sink
}

// Resolver resolves import paths to parsed, checked modules, memoizing by
// absolute path so a diamond import (two modules importing the same third
// module) parses and checks it once (§4.8). This is request-scoped
// de-duplication within a single compilation, not cross-invocation
// incremental recompilation (spec.md's Non-goals exclude the latter).
//
// Grounded on the teacher's internal/modules.Loader (funxy/internal/modules/loader.go),
// generalized from its package-group/bundle resolution to Sindarin's
// simpler one-file-per-module import model.
type Resolver struct {
	roots []string // additional search roots from sindarin.yaml (§4.8, C10)
	memo  map[string]*Resolved

	// analyze checks each resolved module. The caller passes it to
	// NewResolver (cmd/sindarinc and the tests pass
	// analyzer.(*AnalyzerProcessor).Process) rather than this package
	// importing internal/analyzer.
	analyze func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext
}

// NewResolver creates a Resolver that searches roots (in addition to each
// importing file's own directory) for a literal import path that doesn't
// resolve relative to the importing file, and checks each resolved module
// by calling analyze (typically analyzer.(*AnalyzerProcessor).Process).
func NewResolver(roots []string, analyze func(ctx *pipeline.PipelineContext) *pipeline.PipelineContext) *Resolver {
	return &Resolver{roots: roots, memo: make(map[string]*Resolved), analyze: analyze}
}

// Resolve parses and checks the module at importPath (relative to
// fromDir, or one of r.roots), memoizing the result, and returns its
// exported (non-private) function symbols (§4.8, §4.7.10).
func (r *Resolver) Resolve(importPath, fromDir string) (*Resolved, error) {
	abs, err := r.locate(importPath, fromDir)
	if err != nil {
		return nil, err
	}
	if cached, ok := r.memo[abs]; ok {
		return cached, nil
	}

	// Placeholder entry breaks an import cycle (A imports B imports A)
	// with an empty-but-present export set rather than infinite
	// recursion; the cycle itself is not flagged as an error here (not a
	// rule named in spec.md §4.7.10/§4.8).
	placeholder := &Resolved{AbsPath: abs, Exports: symbols.NewTable(nil), Sink: diagnostics.NewSink()}
	r.memo[abs] = placeholder

	src, err := os.ReadFile(abs)
	if err != nil {
		delete(r.memo, abs)
		return nil, fmt.Errorf("reading imported module %q: %w", abs, err)
	}

	ctx := pipeline.NewPipelineContext(string(src))
	ctx.Filename = abs
	ctx.Globals = Prelude()
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	ctx = (&ImportResolverProcessor{Resolver: r, Dir: filepath.Dir(abs)}).Process(ctx)
	ctx = r.analyze(ctx)

	resolved := &Resolved{AbsPath: abs, Exports: publicExports(ctx.AstRoot, ctx.Globals), Sink: ctx.Sink}
	r.memo[abs] = resolved
	return resolved, nil
}

// locate resolves importPath to an absolute file path: relative to
// fromDir first (the importing file's own directory), then each
// configured search root in order.
func (r *Resolver) locate(importPath, fromDir string) (string, error) {
	candidate := importPath
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(fromDir, importPath)
	}
	if fileExists(candidate) {
		return filepath.Abs(candidate)
	}
	for _, root := range r.roots {
		c := filepath.Join(root, importPath)
		if fileExists(c) {
			return filepath.Abs(c)
		}
	}
	return "", fmt.Errorf("cannot resolve import %q (looked relative to %q and %d configured root(s))", importPath, fromDir, len(r.roots))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// publicExports walks mod's top-level function statements and pulls their
// checked signatures back out of globals, keeping only the ones whose
// effective modifier is not private (§4.7.10: "extract every top-level
// function's signature ... register symbols"; a private function is never
// part of a module's public surface, §4.7.4).
func publicExports(mod *ast.Module, globals *symbols.Table) *symbols.Table {
	exports := symbols.NewTable(nil)
	if mod == nil || globals == nil {
		return exports
	}
	for _, stmt := range mod.Statements {
		fs, ok := stmt.(*ast.FunctionStatement)
		if !ok {
			continue
		}
		sym, ok := globals.LookupLocal(fs.Name)
		if !ok || sym.Modifier == ast.ModPrivate {
			continue
		}
		exports.Define(sym)
	}
	return exports
}
