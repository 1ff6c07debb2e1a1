package diagnostics

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ShouldColorize reports whether f (for example os.Stderr) is a real
// terminal or a Cygwin terminal, the same "is this interactive" check the teacher corpus uses
// before emitting ANSI escapes for CLI-ish output.
func ShouldColorize(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
