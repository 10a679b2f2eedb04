package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/crytic/gsolc/cmd/exitcodes"
	"github.com/crytic/gsolc/compilation"
	"github.com/crytic/gsolc/compilation/artifacts"
	"github.com/crytic/gsolc/compilation/engine"
	"github.com/crytic/gsolc/logging"
	"github.com/crytic/gsolc/version"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cmdLogger is the logger instance used to output logs from the cmd package
var cmdLogger = logging.NewLogger(zerolog.InfoLevel)

// rootCmd represents the root CLI command: one compiler driver invocation, compiling the positional source files or
// exchanging a standard-JSON document over stdin/stdout.
var rootCmd = &cobra.Command{
	Use:           "gsolc [options] [input_files...]",
	Short:         "A Solidity compiler driver",
	Long:          "gsolc is a command-line driver around a Solidity compiler engine, resolving source imports against a configurable base path and extracting per-contract build artifacts",
	Args:          cobra.ArbitraryArgs,
	RunE:          cmdRunCompile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Support --version on the root command directly
	rootCmd.Version = version.GetInfo().Version

	// Add all the flags allowed for the root command
	addCompileFlags()
}

func Execute() error {
	return rootCmd.Execute()
}

// cmdRunCompile executes the CLI compile command, selecting between the direct and machine-readable modes.
func cmdRunCompile(cmd *cobra.Command, args []string) error {
	// Build the driver configuration from whatever flags were set using the CLI
	config, err := compileConfigFromFlags(cmd)
	if err != nil {
		cmdLogger.Error("Failed to parse the command flags", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Wire the production engine and solver into the orchestrator
	orchestrator := compilation.NewOrchestrator(config, engine.NewSolcEngine(), engine.NewZ3Solver())

	if config.StandardJSON {
		return cmdRunStandardJSON(orchestrator, os.Stdin, os.Stdout)
	}
	return cmdRunDirect(orchestrator, config, args)
}

// cmdRunStandardJSON executes the machine-readable mode: the entire request document is read from standard input
// before compilation begins, and the final output document is printed verbatim to standard output. Round-trip
// failures are embedded in the output as diagnostics, so this mode only fails when the engine produced nothing.
func cmdRunStandardJSON(orchestrator *compilation.Orchestrator, stdin io.Reader, stdout io.Writer) error {
	rawInput, err := io.ReadAll(stdin)
	if err != nil {
		cmdLogger.Error("Failed to read the standard-JSON request from stdin", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	rawOutput, err := orchestrator.CompileStandardJSON(rawInput)
	if err != nil {
		cmdLogger.Error("Failed to run the compiler engine", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	fmt.Fprintln(stdout, string(rawOutput))
	return nil
}

// cmdRunDirect executes the direct mode: compile the positional source files, report diagnostics by severity, and
// persist the selected artifact kinds into the output directory. The exit status reflects whether any non-warning
// diagnostic was produced.
func cmdRunDirect(orchestrator *compilation.Orchestrator, config compilation.Config, sourcePaths []string) error {
	// Validate the requested inputs and outputs before doing any work
	if len(sourcePaths) == 0 {
		err := errors.New("no input files were provided")
		cmdLogger.Error("Failed to validate the compile command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}
	if !config.EmitBytecode && !config.EmitABI {
		err := errors.New("at least one of --bin or --abi must be requested")
		cmdLogger.Error("Failed to validate the compile command", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	output, err := orchestrator.CompileFiles(sourcePaths)
	if err != nil {
		cmdLogger.Error("Failed to compile the provided sources", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeHandledError)
	}

	// Surface the engine's diagnostics: warnings on stdout, everything else on stderr
	reporter := compilation.NewReporter(os.Stdout, os.Stderr)
	reporter.Report(output.Errors)

	// Derive and persist the selected artifact kinds; write failures are reported at end of run and never affect
	// the exit status
	var kinds []artifacts.Kind
	if config.EmitBytecode {
		kinds = append(kinds, artifacts.KindBytecode)
	}
	if config.EmitABI {
		kinds = append(kinds, artifacts.KindABI)
	}
	writer := artifacts.NewWriter(config.OutputDirectory)
	result := writer.Write(artifacts.NewExtractor(kinds...).Extract(&output.Contracts))
	writer.ReportFailures(result)

	if reporter.SawError() {
		return exitcodes.NewErrorWithExitCode(errors.New("compilation produced errors"), exitcodes.ExitCodeHandledError)
	}
	return nil
}
