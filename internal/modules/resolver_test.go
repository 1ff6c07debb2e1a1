package modules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sindarin-lang/sindarin/internal/analyzer"
	"github.com/sindarin-lang/sindarin/internal/parser"
	"github.com/sindarin-lang/sindarin/internal/pipeline"
)

func newTestResolver(roots []string) *Resolver {
	return NewResolver(roots, (&analyzer.AnalyzerProcessor{}).Process)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// TestResolverExtractsPublicSignature is §4.8/§4.7.10: resolving a module
// surfaces its non-private top-level function signatures.
func TestResolverExtractsPublicSignature(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "leaf.sn", `
fn add(a: int, b: int): int => return a + b
private fn helper(): int => return 1
`)
	r := newTestResolver(nil)
	resolved, err := r.Resolve("leaf.sn", dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := resolved.Exports.LookupLocal("add"); !ok {
		t.Fatalf("expected 'add' to be exported")
	}
	if _, ok := resolved.Exports.LookupLocal("helper"); ok {
		t.Fatalf("expected private 'helper' not to be exported")
	}
}

// TestResolverMemoizesDiamondImport is §4.8: two modules importing the
// same third module parse and check it once.
func TestResolverMemoizesDiamondImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "leaf.sn", `fn add(a: int, b: int): int => return a + b`)

	r := newTestResolver(nil)
	first, err := r.Resolve("leaf.sn", dir)
	if err != nil {
		t.Fatalf("Resolve (first): %v", err)
	}
	second, err := r.Resolve("leaf.sn", dir)
	if err != nil {
		t.Fatalf("Resolve (second): %v", err)
	}
	if first != second {
		t.Fatalf("expected the same memoized *Resolved on a repeated import of the same path")
	}
}

// TestImportResolverProcessorSeedsImportedSymbols is §4.7.10: a module
// importing another sees its exported function names resolve during
// analysis.
func TestImportResolverProcessorSeedsImportedSymbols(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "leaf.sn", `fn add(a: int, b: int): int => return a + b`)
	mainPath := writeFile(t, dir, "main.sn", `
import "leaf.sn"
fn run(): int => return add(1, 2)
`)

	r := newTestResolver(nil)
	src, err := os.ReadFile(mainPath)
	if err != nil {
		t.Fatalf("reading main.sn: %v", err)
	}
	ctx := pipeline.NewPipelineContext(string(src))
	ctx.Filename = mainPath
	ctx.Globals = Prelude()

	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	ctx = (&ImportResolverProcessor{Resolver: r, Dir: dir}).Process(ctx)
	ctx = (&analyzer.AnalyzerProcessor{}).Process(ctx)

	if ctx.Sink.HadError() {
		for _, d := range ctx.Sink.Diagnostics() {
			t.Logf("diagnostic: %s", d.String())
		}
		t.Fatalf("expected no errors checking main.sn against its import")
	}
}

// TestManifestRootsRelative confirms sindarin.yaml's roots resolve
// relative to the manifest's own directory.
func TestManifestRootsRelative(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sindarin.yaml", "name: demo\nroots:\n  - vendor/sindarin\n  - /abs/root\n")

	m, err := LoadManifest(filepath.Join(dir, "sindarin.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	roots := m.ResolveRoots(dir)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0] != filepath.Join(dir, "vendor/sindarin") {
		t.Fatalf("expected the relative root to join with the manifest dir, got %q", roots[0])
	}
	if roots[1] != "/abs/root" {
		t.Fatalf("expected the absolute root to pass through unchanged, got %q", roots[1])
	}
}

// TestManifestMissingFileIsNotError confirms a project with no
// sindarin.yaml simply has no extra search roots.
func TestManifestMissingFileIsNotError(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), "sindarin.yaml"))
	if err != nil {
		t.Fatalf("LoadManifest on a missing file: %v", err)
	}
	if len(m.Roots) != 0 {
		t.Fatalf("expected no roots, got %v", m.Roots)
	}
}
