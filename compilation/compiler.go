// Package compilation orchestrates the compiler engine: it builds compilation requests from command-line sources,
// runs the one- or two-pass compile protocols, and classifies the resulting diagnostics.
package compilation

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/crytic/gsolc/compilation/engine"
	"github.com/crytic/gsolc/compilation/imports"
	"github.com/crytic/gsolc/compilation/types"
	"github.com/crytic/gsolc/logging"
	"github.com/pkg/errors"
)

// Config describes the configuration options used to drive a single compiler invocation.
type Config struct {
	// Optimize indicates whether the engine's bytecode optimizer is enabled.
	Optimize bool

	// BasePath is the directory root import paths are resolved against and source keys are normalized relative to.
	// May be empty.
	BasePath string

	// OutputDirectory is the directory artifact files are written into in direct mode.
	OutputDirectory string

	// EmitBytecode indicates whether .bin artifacts are written in direct mode.
	EmitBytecode bool

	// EmitABI indicates whether .abi artifacts are written in direct mode.
	EmitABI bool

	// StandardJSON indicates whether the machine-readable mode is active, exchanging one standard-JSON document
	// over stdin/stdout.
	StandardJSON bool
}

// Orchestrator coordinates source gathering, engine invocation and the verification query round trip for one
// compiler invocation.
type Orchestrator struct {
	// config describes the configuration the Orchestrator was created with.
	config Config

	// engine is the compiler engine invoked to perform compilation passes.
	engine engine.Engine

	// solver answers verification queries during the round trip. May be nil when no solver is available.
	solver engine.Solver

	// logger describes the Orchestrator's log object
	logger *logging.Logger
}

// NewOrchestrator returns an Orchestrator driving the given engine and solver per the given configuration.
func NewOrchestrator(config Config, compilerEngine engine.Engine, solver engine.Solver) *Orchestrator {
	return &Orchestrator{
		config: config,
		engine: compilerEngine,
		solver: solver,
		logger: logging.GlobalLogger.NewSubLogger("module", "compilation"),
	}
}

// importHook returns the import resolution hook to register with the engine. The hook is only installed when a base
// path was configured or the driver is not in machine-readable mode; machine-readable mode with no base path
// disables import resolution entirely, forcing the caller to supply all sources inline.
func (o *Orchestrator) importHook() engine.ImportHook {
	if o.config.StandardJSON && o.config.BasePath == "" {
		return nil
	}
	return imports.NewResolver(o.config.BasePath).Resolve
}

// CompileFiles builds a compilation request from the given source files and runs a single engine pass over it.
// Every source is keyed by its normalized path. Returns the parsed engine output, or an error if a source could not
// be read or the engine produced no output.
func (o *Orchestrator) CompileFiles(sourcePaths []string) (*types.StandardJSONOutput, error) {
	// Build our compilation request, keying each source by its canonical source unit name.
	input := types.NewStandardJSONInput(o.config.Optimize)
	for _, sourcePath := range sourcePaths {
		contents, err := os.ReadFile(sourcePath)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read source file '%s'", sourcePath)
		}
		input.AddSource(imports.NormalizeSourcePath(sourcePath, o.config.BasePath), string(contents))
	}
	encodedInput, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	// Invoke the engine once. Direct mode performs no verification query round trip.
	rawOutput, err := o.engine.Compile(encodedInput, o.importHook())
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(rawOutput)) == 0 {
		return nil, errors.New("the compiler engine produced no output")
	}

	return types.ParseStandardJSONOutput(rawOutput)
}
