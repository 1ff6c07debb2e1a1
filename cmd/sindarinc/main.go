// Command sindarinc is the front end's thin driver: read one .sn file (taking
// extra import search roots from the nearest sindarin.yaml above it), run the
// lex/parse/import/check pipeline, print diagnostics, and set the process
// exit code (spec.md
// §6.3). Grounded on funxy/cmd/funxy/main.go's role of wiring the library
// packages together, stripped to this front end's scope (no backend, no
// evaluator, no REPL).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/sindarin-lang/sindarin/internal/analyzer"
	"github.com/sindarin-lang/sindarin/internal/diagnostics"
	"github.com/sindarin-lang/sindarin/internal/modules"
	"github.com/sindarin-lang/sindarin/internal/parser"
	"github.com/sindarin-lang/sindarin/internal/pipeline"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sindarinc <file.sn>")
		os.Exit(1)
	}
	path := os.Args[1]

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sindarinc: %s\n", err)
		os.Exit(1)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	dir := filepath.Dir(absPath)

	manifest, err := modules.LoadManifest(findManifest(dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sindarinc: reading sindarin.yaml: %s\n", err)
		os.Exit(1)
	}

	resolver := modules.NewResolver(manifest.ResolveRoots(dir), (&analyzer.AnalyzerProcessor{}).Process)

	ctx := pipeline.NewPipelineContext(string(src))
	ctx.Filename = path
	ctx.Globals = modules.Prelude()

	// SINDARINC_MAX_ARENA_BYTES caps the §3.8 arena ceiling this
	// compilation's node/scope accounting is charged against; unset (the
	// common case) leaves it unlimited.
	if raw := os.Getenv("SINDARINC_MAX_ARENA_BYTES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ctx.Arena.MaxBytes = n
		}
	}

	if dbPath := os.Getenv("SINDARINC_SESSION_LOG"); dbPath != "" {
		store, err := diagnostics.OpenSessionStore(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sindarinc: %s\n", err)
			os.Exit(1)
		}
		defer store.Close()
		ctx.Sink = ctx.Sink.WithStore(store)
	}

	p := pipeline.New(
		&parser.ParserProcessor{},
		&modules.ImportResolverProcessor{Resolver: resolver, Dir: dir},
		&analyzer.AnalyzerProcessor{},
	)
	ctx = p.Run(ctx)

	color := isatty.IsTerminal(os.Stderr.Fd())
	ctx.Sink.Render(os.Stderr, color)

	if ctx.Sink.HadError() {
		os.Exit(1)
	}
}

// findManifest walks up from dir looking for a sindarin.yaml, stopping at
// the first filesystem root it reaches without finding one (a project with
// no manifest simply has no extra import search roots, modules.LoadManifest
// treats a missing file as empty rather than an error).
func findManifest(dir string) string {
	for {
		candidate := filepath.Join(dir, "sindarin.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return candidate
		}
		dir = parent
	}
}
