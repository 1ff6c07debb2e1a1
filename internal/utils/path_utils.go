package utils

import (
	"path/filepath"

	"github.com/sindarin-lang/sindarin/internal/config"
)

// ResolveImportPath resolves an import path relative to a base directory if
// it starts with a dot. Otherwise returns the import path unchanged so the
// caller can try the project manifest's extra search roots (SPEC_FULL.md C10).
func ResolveImportPath(baseDir, importPath string) string {
	if len(importPath) > 0 && importPath[0] == '.' {
		if baseDir != "." && baseDir != "" {
			return filepath.Join(baseDir, importPath)
		}
	}
	return importPath
}

// ExtractModuleName derives a module name from a file path: the base
// filename with any recognized source extension removed.
func ExtractModuleName(path string) string {
	name := filepath.Base(path)
	return config.TrimSourceExt(name)
}

// GetModuleDir returns the directory context for a module path. If the path
// points to a source file, returns the file's directory; if it already
// names a directory, returns it unchanged.
func GetModuleDir(path string) string {
	if config.HasSourceExt(path) {
		return filepath.Dir(path)
	}
	return path
}
