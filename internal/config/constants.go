// Package config holds cross-cutting constants: version, recognized source
// file extensions, built-in names, and runtime mode flags consulted by
// several packages (lexer, parser, analyzer, diagnostics).
package config

// Version is the current compiler version.
var Version = "0.1.0"

// SourceFileExt is the canonical Sindarin source extension.
const SourceFileExt = ".sn"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".sn"}

// ManifestFileName is the optional project manifest consulted by the
// import resolver (SPEC_FULL.md C10) for extra search roots.
const ManifestFileName = "sindarin.yaml"

// TrimSourceExt removes a recognized source extension from a filename.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode is set by test harnesses to normalize output (e.g. diagnostic
// rendering that would otherwise depend on terminal detection).
var IsTestMode = false

// Built-in array method names (§4.7.1 member access rule).
const (
	MethodLength   = "length"
	MethodPush     = "push"
	MethodPop      = "pop"
	MethodClear    = "clear"
	MethodConcat   = "concat"
	MethodIndexOf  = "indexOf"
	MethodContains = "contains"
	MethodClone    = "clone"
	MethodJoin     = "join"
	MethodReverse  = "reverse"
	MethodInsert   = "insert"
	MethodRemove   = "remove"
)

// Built-in call names routed to a dedicated typing rule (§4.7.1).
const (
	BuiltinLen  = "len"
	BuiltinPop  = "pop"
	BuiltinRev  = "rev"
	BuiltinPush = "push"
	BuiltinRem  = "rem"
	BuiltinIns  = "ins"
)

// Modifier is the function/block region modifier (§3.4).
type Modifier int

const (
	ModDefault Modifier = iota
	ModPrivate
	ModShared
)

func (m Modifier) String() string {
	switch m {
	case ModPrivate:
		return "private"
	case ModShared:
		return "shared"
	default:
		return "default"
	}
}
