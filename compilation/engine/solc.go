package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/crytic/gsolc/utils"
)

// solcPathEnvVariable is the environment variable which may override the solc binary location.
const solcPathEnvVariable = "SOLC"

// solcVersionPattern extracts the semantic version from `solc --version` output.
var solcVersionPattern = regexp.MustCompile(`\d+\.\d+\.\d+`)

// SolcEngine is an Engine backed by a solc binary invoked with --standard-json. The request document is fed over
// standard input and the response read from standard output, one process per compilation pass.
type SolcEngine struct {
	// solcPath is the path of the solc binary to execute.
	solcPath string
}

// NewSolcEngine returns a SolcEngine which executes the solc binary found on the system path, or the one named by
// the SOLC environment variable if set.
func NewSolcEngine() *SolcEngine {
	solcPath := "solc"
	if envPath := os.Getenv(solcPathEnvVariable); envPath != "" {
		solcPath = envPath
	}
	return &SolcEngine{solcPath: solcPath}
}

// NewSolcEngineWithPath returns a SolcEngine which executes the solc binary at the given path.
func NewSolcEngineWithPath(solcPath string) *SolcEngine {
	return &SolcEngine{solcPath: solcPath}
}

// Version runs `solc --version` to obtain the compiler version and parses it as a semantic version. Returns an error
// if solc could not be executed or its output carried no recognizable version.
func (s *SolcEngine) Version() (*semver.Version, error) {
	// Run solc --version to obtain our compiler version.
	out, err := exec.Command(s.solcPath, "--version").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("error while executing solc:\nOUTPUT:\n%s\nERROR: %s\n", string(out), err.Error())
	}
	return parseSolcVersion(string(out))
}

// parseSolcVersion extracts the semantic version from `solc --version` output.
func parseSolcVersion(output string) (*semver.Version, error) {
	versionStr := solcVersionPattern.FindString(output)
	if versionStr == "" {
		return nil, errors.New("could not parse solc version using 'solc --version'")
	}
	return semver.NewVersion(versionStr)
}

// Compile runs one standard-JSON compilation pass. When an import hook is provided, the request's source map is
// first expanded by resolving import directives through the hook, so the solc process never needs filesystem access
// of its own. Resolution failures are left out of the request for solc to report as missing sources.
func (s *SolcEngine) Compile(input []byte, importHook ImportHook) ([]byte, error) {
	// Resolve imports into the request up front; an unexpandable request is compiled as-is so that the engine
	// reports the underlying problem itself.
	if importHook != nil {
		if expanded, err := ExpandImportedSources(input, importHook); err == nil {
			input = expanded
		}
	}

	// Create our command, feeding the request over stdin.
	cmd := exec.Command(s.solcPath, "--standard-json")
	cmd.Stdin = bytes.NewReader(input)
	cmdStdout, _, cmdCombined, err := utils.RunCommandWithOutputAndError(cmd)
	if err != nil {
		return nil, fmt.Errorf("error while executing solc:\n%s\n\nCommand Output:\n%s\n", err.Error(), string(cmdCombined))
	}
	return cmdStdout, nil
}
