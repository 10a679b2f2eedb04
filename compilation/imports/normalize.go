// Package imports provides source unit naming and import resolution for the compiler engine. Source files supplied
// on the command line are keyed by a canonical, platform-independent name, and import paths requested by the engine
// are resolved against an optional base path.
package imports

import (
	"os"
	"path/filepath"
	"strings"
)

// NormalizeSourcePath derives the canonical source unit name for a candidate source file relative to a base path.
// Both paths are resolved to absolute, lexically-cleaned form; symbolic links are not followed, so a path within a
// linked working directory keeps its spelling. If the candidate lies under the base path, the relative form is
// returned; a relative form that would have to escape the base directory is ambiguous, so the absolute form is used
// instead. The result always uses forward slashes, since the engine's import graph treats them as part of its
// canonical identifier format. This function is pure and total; resolution failures fall back to the cleaned input.
func NormalizeSourcePath(sourcePath string, basePath string) string {
	if basePath == "" {
		basePath = "."
	}

	absoluteBasePath, err := filepath.Abs(basePath)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(sourcePath))
	}
	absoluteSourcePath, err := filepath.Abs(sourcePath)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(sourcePath))
	}

	// Prefer the relative form, unless it would begin with a parent-directory segment.
	relativeSourcePath, err := filepath.Rel(absoluteBasePath, absoluteSourcePath)
	if err == nil && !escapesBase(relativeSourcePath) {
		return filepath.ToSlash(relativeSourcePath)
	}
	return filepath.ToSlash(absoluteSourcePath)
}

// escapesBase returns a boolean indicating whether a relative path steps outside the directory it is relative to.
func escapesBase(relativePath string) bool {
	return relativePath == ".." || strings.HasPrefix(relativePath, ".."+string(os.PathSeparator))
}
