package imports

import (
	"os"
)

// ImportResult describes the outcome of resolving a single import path: either the file contents, or a descriptive
// error for the engine to turn into a compile diagnostic. Resolution never raises; every failure is carried in the
// Error field.
type ImportResult struct {
	// Contents holds the resolved file contents when resolution succeeded.
	Contents string `json:"contents,omitempty"`

	// Error holds a descriptive message when resolution failed.
	Error string `json:"error,omitempty"`
}

// Resolver resolves import paths requested by the compiler engine against an optional base path. It holds no mutable
// state beyond the configured base path, so concurrent resolution calls are independent.
type Resolver struct {
	// basePath is the configured directory root import paths are resolved against. May be empty.
	basePath string
}

// NewResolver returns a Resolver which resolves import paths against the given base path. An empty base path
// resolves imports as-is against the working directory.
func NewResolver(basePath string) *Resolver {
	return &Resolver{basePath: basePath}
}

// Resolve looks up the file behind an import path and returns its contents, or a structured error if the file does
// not exist or could not be read. The base path, when configured, is prefixed with a separating slash rather than
// path-joined; the engine's import paths already use forward slashes, so no normalization is wanted here. Results
// are never cached, as the engine may probe the same path multiple times across compilation phases.
func (r *Resolver) Resolve(importPath string) ImportResult {
	lookupPath := importPath
	if r.basePath != "" {
		lookupPath = r.basePath + "/" + importPath
	}

	info, err := os.Stat(lookupPath)
	if err != nil || info.IsDir() {
		return ImportResult{Error: "File not found at " + lookupPath}
	}

	contents, err := os.ReadFile(lookupPath)
	if err != nil {
		return ImportResult{Error: err.Error()}
	}
	return ImportResult{Contents: string(contents)}
}
