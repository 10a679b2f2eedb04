package engine

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/crytic/gsolc/utils"
)

// Solver answers SMT queries the compiler engine embeds in its first-pass output during formal verification.
// Solving is a single blocking call per query with no timeout at this layer.
type Solver interface {
	// Name returns the solver's identifier, e.g. "z3".
	Name() string

	// Solve runs the solver over a single SMT-LIB2 query and returns its raw output, or an error if the solver
	// could not be executed or produced no verdict.
	Solve(query string) (string, error)
}

// solverVerdicts lists the outputs a solver run must begin with to be considered answered.
var solverVerdicts = []string{"sat", "unsat", "unknown"}

// BinarySolver is a Solver backed by an external solver executable which accepts an SMT-LIB2 file argument and
// prints its verdict on standard output.
type BinarySolver struct {
	// name is the solver's identifier.
	name string

	// command is the solver binary to execute.
	command string

	// params are the fixed arguments passed before the query file.
	params []string
}

// NewZ3Solver returns a BinarySolver invoking the z3 binary found on the system path, with the resource limits
// conventionally applied to compiler-generated verification queries.
func NewZ3Solver() *BinarySolver {
	return &BinarySolver{
		name:    "z3",
		command: "z3",
		params:  []string{"-smt2", "rlimit=20000000"},
	}
}

// NewCVC4Solver returns a BinarySolver invoking the cvc4 binary found on the system path.
func NewCVC4Solver() *BinarySolver {
	return &BinarySolver{
		name:    "cvc4",
		command: "cvc4",
		params:  []string{"--lang=smt2"},
	}
}

// Name returns the solver's identifier.
func (s *BinarySolver) Name() string {
	return s.name
}

// Solve writes the query to a temporary file, runs the solver binary over it, and returns the solver's standard
// output. A non-zero exit status is tolerated as long as the output still begins with a verdict, since solvers
// conventionally exit non-zero on "unknown".
func (s *BinarySolver) Solve(query string) (string, error) {
	// Write the query out to a temporary file for the solver to consume.
	queryFile, err := os.CreateTemp("", "gsolc-query-*.smt2")
	if err != nil {
		return "", err
	}
	defer os.Remove(queryFile.Name())
	if _, err = queryFile.WriteString(query); err != nil {
		queryFile.Close()
		return "", err
	}
	if err = queryFile.Close(); err != nil {
		return "", err
	}

	// Execute the solver over the query file.
	cmd := exec.Command(s.command, append(s.params, queryFile.Name())...)
	cmdStdout, _, cmdCombined, err := utils.RunCommandWithOutputAndError(cmd)

	// Accept the output if it carries a verdict, regardless of exit status.
	solverOutput := string(cmdStdout)
	for _, verdict := range solverVerdicts {
		if strings.HasPrefix(solverOutput, verdict) {
			return solverOutput, nil
		}
	}
	if err != nil {
		return "", fmt.Errorf("failed to solve SMT query:\n%s\n\nCommand Output:\n%s\n", err.Error(), string(cmdCombined))
	}
	return "", fmt.Errorf("solver returned no verdict for SMT query:\n%s\n", solverOutput)
}
