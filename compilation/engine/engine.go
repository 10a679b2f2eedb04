// Package engine abstracts the embedded Solidity compiler. The production implementation shells out to a solc
// binary speaking the standard-JSON protocol; tests substitute in-process fakes.
package engine

import (
	"github.com/Masterminds/semver/v3"
	"github.com/crytic/gsolc/compilation/imports"
)

// ImportHook resolves an import path requested during compilation into source contents or a structured error. A nil
// hook disables import resolution entirely, forcing the caller to supply all sources inline.
type ImportHook func(importPath string) imports.ImportResult

// Engine describes the compiler engine interface. The engine accepts a raw standard-JSON request and returns the raw
// standard-JSON response. Compile is a single blocking call; this layer imposes no timeout on it.
type Engine interface {
	// Compile runs one compilation pass over the given standard-JSON input, consulting the import hook (if any) for
	// source units the request does not carry inline. Returns the raw standard-JSON output, or an error if the
	// engine produced no output at all.
	Compile(input []byte, importHook ImportHook) ([]byte, error)

	// Version returns the engine's semantic version, or an error if it could not be determined.
	Version() (*semver.Version, error)
}
