package compilation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/crytic/gsolc/compilation/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine is an Engine returning canned output per pass while capturing the inputs and hooks it was invoked with.
type fakeEngine struct {
	// outputs holds the raw output to return for each successive pass; the last entry repeats.
	outputs [][]byte

	// err, if set, is returned by every Compile call.
	err error

	// panicOnPass, if non-zero, makes that pass panic instead of returning.
	panicOnPass int

	// inputs captures the raw input of every pass.
	inputs [][]byte

	// hooks captures the import hook of every pass.
	hooks []engine.ImportHook
}

func (f *fakeEngine) Compile(input []byte, importHook engine.ImportHook) ([]byte, error) {
	f.inputs = append(f.inputs, input)
	f.hooks = append(f.hooks, importHook)
	if f.panicOnPass == len(f.inputs) {
		panic("engine exploded")
	}
	if f.err != nil {
		return nil, f.err
	}
	outputIndex := len(f.inputs) - 1
	if outputIndex >= len(f.outputs) {
		outputIndex = len(f.outputs) - 1
	}
	return f.outputs[outputIndex], nil
}

func (f *fakeEngine) Version() (*semver.Version, error) {
	return semver.NewVersion("0.8.19")
}

// writeTestSource writes a source file into a directory and returns its path.
func writeTestSource(t *testing.T, directory string, name string, contents string) string {
	sourcePath := filepath.Join(directory, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(sourcePath), 0777))
	require.NoError(t, os.WriteFile(sourcePath, []byte(contents), 0644))
	return sourcePath
}

// TestCompileFilesBuildsRequest ensures direct mode builds a request with the fixed settings and
// normalized source keys.
func TestCompileFilesBuildsRequest(t *testing.T) {
	basePath := t.TempDir()
	sourcePath := writeTestSource(t, basePath, filepath.Join("contracts", "A.sol"), "contract A {}")

	compilerEngine := &fakeEngine{outputs: [][]byte{[]byte(`{"contracts": {}}`)}}
	orchestrator := NewOrchestrator(Config{Optimize: true, BasePath: basePath}, compilerEngine, nil)

	_, err := orchestrator.CompileFiles([]string{sourcePath})
	require.NoError(t, err)
	require.Len(t, compilerEngine.inputs, 1)

	// Decode the captured request and verify its shape
	var request struct {
		Language string `json:"language"`
		Sources  map[string]struct {
			Content string `json:"content"`
		} `json:"sources"`
		Settings struct {
			Optimizer struct {
				Enabled bool `json:"enabled"`
			} `json:"optimizer"`
			OutputSelection map[string]map[string][]string `json:"outputSelection"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(compilerEngine.inputs[0], &request))

	assert.Equal(t, "Solidity", request.Language)
	assert.True(t, request.Settings.Optimizer.Enabled)
	assert.Equal(t, []string{"abi", "evm.bytecode"}, request.Settings.OutputSelection["*"]["*"])
	require.Contains(t, request.Sources, "contracts/A.sol")
	assert.Equal(t, "contract A {}", request.Sources["contracts/A.sol"].Content)

	// Direct mode installs the import resolution hook
	assert.NotNil(t, compilerEngine.hooks[0])
}

// TestCompileFilesUnreadableSource ensures a failed source read aborts the compilation with an error.
func TestCompileFilesUnreadableSource(t *testing.T) {
	compilerEngine := &fakeEngine{outputs: [][]byte{[]byte(`{}`)}}
	orchestrator := NewOrchestrator(Config{}, compilerEngine, nil)

	_, err := orchestrator.CompileFiles([]string{filepath.Join(t.TempDir(), "Missing.sol")})
	assert.Error(t, err)
	assert.Empty(t, compilerEngine.inputs, "the engine must not be invoked when the source map cannot be built")
}

// TestCompileFilesAbsentEngineOutput ensures an engine producing no output is a fatal condition.
func TestCompileFilesAbsentEngineOutput(t *testing.T) {
	basePath := t.TempDir()
	sourcePath := writeTestSource(t, basePath, "A.sol", "contract A {}")

	compilerEngine := &fakeEngine{outputs: [][]byte{[]byte("  \n")}}
	orchestrator := NewOrchestrator(Config{BasePath: basePath}, compilerEngine, nil)

	_, err := orchestrator.CompileFiles([]string{sourcePath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "produced no output")
}

// TestCompileFilesParsesDiagnostics ensures engine diagnostics come back typed and ordered.
func TestCompileFilesParsesDiagnostics(t *testing.T) {
	basePath := t.TempDir()
	sourcePath := writeTestSource(t, basePath, "A.sol", "contract A {}")

	compilerEngine := &fakeEngine{outputs: [][]byte{[]byte(`{
		"errors": [{"severity": "error", "component": "general", "message": "boom"}],
		"contracts": {}
	}`)}}
	orchestrator := NewOrchestrator(Config{BasePath: basePath}, compilerEngine, nil)

	output, err := orchestrator.CompileFiles([]string{sourcePath})
	require.NoError(t, err)
	require.Len(t, output.Errors, 1)
	assert.False(t, output.Errors[0].IsWarning())
}

// TestImportHookGating ensures the import resolution hook is only installed when a base path was configured or the
// driver is not in machine-readable mode.
func TestImportHookGating(t *testing.T) {
	assert.NotNil(t, NewOrchestrator(Config{}, &fakeEngine{}, nil).importHook())
	assert.NotNil(t, NewOrchestrator(Config{BasePath: "lib"}, &fakeEngine{}, nil).importHook())
	assert.NotNil(t, NewOrchestrator(Config{StandardJSON: true, BasePath: "lib"}, &fakeEngine{}, nil).importHook())
	assert.Nil(t, NewOrchestrator(Config{StandardJSON: true}, &fakeEngine{}, nil).importHook())
}
